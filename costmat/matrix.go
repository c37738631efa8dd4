package costmat

import "fmt"

// Matrix is a dense, row-major n×n grid of Cost values. It is the concrete
// realization of component C2 (reduced-matrix engine): every search node in
// package tsp owns one Matrix, and Reduce is the operation that keeps the
// branch-and-bound lower bound admissible.
type Matrix struct {
	n    int
	data []Cost // flat backing storage, length n*n, row-major
}

// matrixErrorf wraps an underlying sentinel with method/position context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// NewMatrix allocates an n×n Matrix with every entry set to Inf.
// Complexity: O(n²) time and memory.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]Cost, n*n)
	for i := range data {
		data[i] = Inf
	}
	return &Matrix{n: n, data: data}, nil
}

// N returns the matrix order (rows == cols == N()).
func (m *Matrix) N() int { return m.n }

func (m *Matrix) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf("At", row, col, ErrOutOfRange)
	}
	return row*m.n + col, nil
}

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) (Cost, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Matrix) Set(row, col int, v Cost) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return matrixErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.n+col] = v
	return nil
}

// InfRow sets every entry in row to Inf — used when branching to forbid a
// city's outgoing edge from being reused.
func (m *Matrix) InfRow(row int) {
	base := row * m.n
	for j := 0; j < m.n; j++ {
		m.data[base+j] = Inf
	}
}

// InfCol sets every entry in col to Inf — forbids reusing a city's incoming
// edge once it has been entered.
func (m *Matrix) InfCol(col int) {
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+col] = Inf
	}
}

// Clone returns an independent deep copy. Every child search node clones its
// parent's matrix before masking rows/columns and reducing; structural
// sharing is a possible future optimization, not required for correctness.
func (m *Matrix) Clone() *Matrix {
	cp := make([]Cost, len(m.data))
	copy(cp, m.data)
	return &Matrix{n: m.n, data: cp}
}

// Reduce performs the row-then-column reduction lemma: subtract each row's minimum (if finite and non-zero) from every finite
// entry of that row, accumulating the subtraction into delta; then repeat
// for columns using the row-reduced matrix. Reduce mutates m in place and
// returns the additive lower-bound contribution delta.
//
// Invariant established on return: every row and every column either
// contains a zero or is entirely Inf.
func (m *Matrix) Reduce() Cost {
	var delta Cost

	n := m.n
	for i := 0; i < n; i++ {
		base := i * n
		rowMin := Inf
		for j := 0; j < n; j++ {
			rowMin = Min(rowMin, m.data[base+j])
		}
		if rowMin == 0 || rowMin.IsInf() {
			continue
		}
		for j := 0; j < n; j++ {
			m.data[base+j] = Sub(m.data[base+j], rowMin)
		}
		delta = Add(delta, rowMin)
	}

	for j := 0; j < n; j++ {
		colMin := Inf
		for i := 0; i < n; i++ {
			colMin = Min(colMin, m.data[i*n+j])
		}
		if colMin == 0 || colMin.IsInf() {
			continue
		}
		for i := 0; i < n; i++ {
			m.data[i*n+j] = Sub(m.data[i*n+j], colMin)
		}
		delta = Add(delta, colMin)
	}

	return delta
}
