package costmat_test

import (
	"testing"

	"github.com/briarlock/atspbb/costmat"
	"github.com/stretchr/testify/require"
)

func TestCost_IsInf(t *testing.T) {
	require.True(t, costmat.Inf.IsInf())
	require.False(t, costmat.Cost(0).IsInf())
	require.False(t, costmat.Cost(1000).IsInf())
}

func TestAdd_Saturates(t *testing.T) {
	cases := []struct {
		name string
		a, b costmat.Cost
		want costmat.Cost
	}{
		{"finite+finite", 3, 4, 7},
		{"inf+finite", costmat.Inf, 5, costmat.Inf},
		{"finite+inf", 5, costmat.Inf, costmat.Inf},
		{"inf+inf", costmat.Inf, costmat.Inf, costmat.Inf},
		{"near-overflow", costmat.Inf - 1, 10, costmat.Inf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, costmat.Add(tc.a, tc.b))
		})
	}
}

func TestSub_InfMinusFiniteIsInf(t *testing.T) {
	require.Equal(t, costmat.Inf, costmat.Sub(costmat.Inf, 100))
	require.Equal(t, costmat.Inf, costmat.Sub(costmat.Inf, costmat.Inf))
}

func TestSub_FloorsAtZero(t *testing.T) {
	require.Equal(t, costmat.Cost(0), costmat.Sub(3, 5))
	require.Equal(t, costmat.Cost(2), costmat.Sub(5, 3))
}

func TestMin(t *testing.T) {
	require.Equal(t, costmat.Cost(3), costmat.Min(3, 7))
	require.Equal(t, costmat.Cost(3), costmat.Min(7, 3))
	require.Equal(t, costmat.Cost(5), costmat.Min(5, costmat.Inf))
}

func TestLess(t *testing.T) {
	require.True(t, costmat.Less(3, 4))
	require.False(t, costmat.Less(4, 3))
	require.True(t, costmat.Less(100, costmat.Inf))
}
