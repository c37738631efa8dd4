package scenario_test

import (
	"testing"

	"github.com/briarlock/atspbb/costmat"
	"github.com/briarlock/atspbb/scenario"
	"github.com/stretchr/testify/require"
)

func uniformCost(n int, off costmat.Cost) scenario.CostFunc {
	return func(i, j int) costmat.Cost {
		if i == j {
			return costmat.Inf
		}
		return off
	}
}

func TestNew_RejectsTooFewCities(t *testing.T) {
	_, err := scenario.New(1, uniformCost(1, 5), nil)
	require.ErrorIs(t, err, scenario.ErrTooFewCities)
}

func TestNew_RejectsNilCostFunc(t *testing.T) {
	_, err := scenario.New(3, nil, nil)
	require.ErrorIs(t, err, scenario.ErrNilCostFunc)
}

func TestNew_RejectsAttrCountMismatch(t *testing.T) {
	_, err := scenario.New(3, uniformCost(3, 1), []map[string]any{{}, {}})
	require.ErrorIs(t, err, scenario.ErrAttrCountMismatch)
}

func TestNew_RejectsNonInfSelfCost(t *testing.T) {
	bad := func(i, j int) costmat.Cost { return 0 }
	_, err := scenario.New(3, bad, nil)
	require.ErrorIs(t, err, scenario.ErrSelfCost)
}

func TestNew_AcceptsValidScenario(t *testing.T) {
	sc, err := scenario.New(4, uniformCost(4, 7), nil)
	require.NoError(t, err)
	require.Equal(t, 4, sc.N())
	require.Equal(t, costmat.Cost(7), sc.Cost(0, 1))
	require.Equal(t, costmat.Inf, sc.Cost(2, 2))
}

func TestScenario_Matrix_RejectsNegativeCost(t *testing.T) {
	neg := func(i, j int) costmat.Cost {
		if i == j {
			return costmat.Inf
		}
		return -1
	}
	sc, err := scenario.New(3, neg, nil)
	require.NoError(t, err)

	_, err = sc.Matrix()
	require.ErrorIs(t, err, scenario.ErrNegativeCost)
}

func TestScenario_Matrix_MatchesCostFunc(t *testing.T) {
	sc, err := scenario.New(3, uniformCost(3, 4), nil)
	require.NoError(t, err)

	m, err := sc.Matrix()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.True(t, v.IsInf())
			} else {
				require.Equal(t, costmat.Cost(4), v)
			}
		}
	}
}

func TestScenario_City_CarriesAttrs(t *testing.T) {
	attrs := []map[string]any{{"name": "a"}, {"name": "b"}, {"name": "c"}}
	sc, err := scenario.New(3, uniformCost(3, 1), attrs)
	require.NoError(t, err)

	require.Equal(t, "b", sc.City(1).Attrs["name"])
}
