// RNG utilities backing the auxiliary random-tour search (component C6.2).
//
// Goals:
//   - Determinism: the same Seed always yields the same sequence of
//     candidate permutations.
//   - Encapsulation: a single factory; no time-based source is ever used.
//   - math/rand.Rand is not goroutine-safe; each DefaultRandomTour call
//     creates its own stream.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed stream used when Options.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 maps to
// defaultRNGSeed so a zero-value Options still behaves reproducibly.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPermutation returns a random permutation of every city in 0..n-1
// except root, generated from rng.
func randomPermutation(n, root int, rng *rand.Rand) []int {
	p := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != root {
			p = append(p, i)
		}
	}
	shuffleIntsInPlace(p, rng)
	return p
}
