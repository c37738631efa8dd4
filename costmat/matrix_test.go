package costmat_test

import (
	"testing"

	"github.com/briarlock/atspbb/costmat"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_FillsInf(t *testing.T) {
	m, err := costmat.NewMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.True(t, v.IsInf())
		}
	}
}

func TestNewMatrix_RejectsNonPositive(t *testing.T) {
	_, err := costmat.NewMatrix(0)
	require.Error(t, err)

	_, err = costmat.NewMatrix(-1)
	require.Error(t, err)
}

func TestMatrix_AtSet_OutOfRange(t *testing.T) {
	m, err := costmat.NewMatrix(2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, costmat.ErrOutOfRange)

	err = m.Set(0, -1, 5)
	require.ErrorIs(t, err, costmat.ErrOutOfRange)
}

func TestMatrix_Clone_IsIndependent(t *testing.T) {
	m, err := costmat.NewMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 10))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 99))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, costmat.Cost(10), v)

	cv, err := cp.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, costmat.Cost(99), cv)
}

func TestMatrix_InfRow_InfCol(t *testing.T) {
	m, err := costmat.NewMatrix(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				require.NoError(t, m.Set(i, j, costmat.Cost(i*10+j)))
			}
		}
	}

	m.InfRow(1)
	for j := 0; j < 3; j++ {
		v, _ := m.At(1, j)
		require.True(t, v.IsInf())
	}

	m.InfCol(2)
	for i := 0; i < 3; i++ {
		v, _ := m.At(i, 2)
		require.True(t, v.IsInf())
	}
	// Row 0 untouched outside column 2.
	v, _ := m.At(0, 1)
	require.Equal(t, costmat.Cost(1), v)
}

// TestMatrix_Reduce_IsAdmissible checks that Reduce's returned delta never
// exceeds the true optimal tour cost of a known feasible instance: the
// reduction lower bound must never overestimate.
func TestMatrix_Reduce_IsAdmissible(t *testing.T) {
	// A 4-city asymmetric instance with a known optimal tour 0-1-2-3-0
	// costing 1+1+1+1 = 4.
	raw := [][]int64{
		{-1, 1, 9, 9},
		{9, -1, 1, 9},
		{9, 9, -1, 1},
		{1, 9, 9, -1},
	}
	m, err := costmat.NewMatrix(4)
	require.NoError(t, err)
	for i, row := range raw {
		for j, v := range row {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, costmat.Cost(v)))
		}
	}

	delta := m.Reduce()
	require.LessOrEqual(t, int64(delta), int64(4))
}

// TestMatrix_Reduce_Idempotent checks that reducing an already-reduced
// matrix a second time always yields a zero additional delta.
func TestMatrix_Reduce_Idempotent(t *testing.T) {
	m, err := costmat.NewMatrix(3)
	require.NoError(t, err)
	vals := [][3]int64{{-1, 2, 5}, {4, -1, 1}, {3, 6, -1}}
	for i, row := range vals {
		for j, v := range row {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, costmat.Cost(v)))
		}
	}

	_ = m.Reduce()
	second := m.Reduce()
	require.Equal(t, costmat.Cost(0), second)
}
