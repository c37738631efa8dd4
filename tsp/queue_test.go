package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontier_PopsLowestBoundFirst(t *testing.T) {
	f := newFrontier()
	f.push(&node{bound: 30, level: 1})
	f.push(&node{bound: 10, level: 1})
	f.push(&node{bound: 20, level: 1})

	require.Equal(t, 10, int(f.popMin().bound))
	require.Equal(t, 20, int(f.popMin().bound))
	require.Equal(t, 30, int(f.popMin().bound))
	require.Nil(t, f.popMin())
}

func TestFrontier_TieBreaksOnDeeperLevel(t *testing.T) {
	f := newFrontier()
	f.push(&node{bound: 5, level: 1})
	f.push(&node{bound: 5, level: 3})
	f.push(&node{bound: 5, level: 2})

	require.Equal(t, 3, f.popMin().level)
	require.Equal(t, 2, f.popMin().level)
	require.Equal(t, 1, f.popMin().level)
}

func TestFrontier_TieBreaksOnInsertionOrder(t *testing.T) {
	f := newFrontier()
	first := &node{bound: 5, level: 1}
	second := &node{bound: 5, level: 1}
	f.push(first)
	f.push(second)

	require.Same(t, first, f.popMin())
	require.Same(t, second, f.popMin())
}

func TestFrontier_Len(t *testing.T) {
	f := newFrontier()
	require.Equal(t, 0, f.Len())
	f.push(&node{bound: 1})
	require.Equal(t, 1, f.Len())
}
