// Package costmat provides the reduced-cost-matrix engine at the heart of
// the asymmetric-TSP branch-and-bound solver: a Cost type representing
// non-negative extended reals (finite or ∞) without relying on floating
// point infinities, and a dense n×n Matrix with the row/column reduction
// operation that produces an admissible additive lower-bound contribution.
package costmat

import "math"

// Cost is an extended non-negative integer: either a finite value in
// [0, Inf) or the sentinel Inf. Representing infinity as a tagged int64
// value (rather than math.Inf(1)) keeps every arithmetic path explicit and
// exact, per the "do not rely on floating-point +∞ semantics" design note.
type Cost int64

// Inf is the sentinel for "no edge" / "unreachable". It is deliberately far
// from math.MaxInt64 so that Add can detect overflow by comparing against it
// without itself overflowing.
const Inf Cost = math.MaxInt64 / 4

// IsInf reports whether c is the infinity sentinel.
func (c Cost) IsInf() bool { return c >= Inf }

// Add returns a+b with saturating semantics: if either operand is Inf, or
// the sum would reach/exceed Inf, the result is Inf. Never wraps.
func Add(a, b Cost) Cost {
	if a.IsInf() || b.IsInf() {
		return Inf
	}
	sum := a + b
	if sum < 0 || sum >= Inf {
		return Inf
	}
	return sum
}

// Sub returns a-b. Per the reduction contract, ∞−x ≡ ∞ for any finite x;
// b is never itself Inf in the call sites that matter (row/col minima are
// only subtracted from finite entries), but we keep the rule total here.
func Sub(a, b Cost) Cost {
	if a.IsInf() {
		return Inf
	}
	if b.IsInf() {
		// An entry can never be reduced past infinity; treat as unchanged.
		return a
	}
	d := a - b
	if d < 0 {
		d = 0
	}
	return d
}

// Less reports whether a is strictly less than b, with Inf acting as the
// largest possible value.
func Less(a, b Cost) bool { return a < b }

// Min returns the smaller of a and b.
func Min(a, b Cost) Cost {
	if a < b {
		return a
	}
	return b
}
