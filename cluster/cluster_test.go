package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/coi-analysis/cluster"
)

// Scenario 5: three submissions, d(1,2)=1, d(1,3)=3, d(2,3)=2 (0-indexed:
// d(0,1)=1, d(0,2)=3, d(1,2)=2).
func scenario5Condensed() []float64 {
	return []float64{1, 3, 2}
}

func TestCompleteLinkageMergeOrderAndHeights(t *testing.T) {
	d := cluster.CompleteLinkage(scenario5Condensed(), 3)
	require.Len(t, d.Steps, 2)

	require.Equal(t, 0, d.Steps[0].A)
	require.Equal(t, 1, d.Steps[0].B)
	require.InDelta(t, 1, d.Steps[0].Height, 1e-9)
	require.Equal(t, 2, d.Steps[0].Size)

	require.InDelta(t, 3, d.Steps[1].Height, 1e-9)
	require.Equal(t, 3, d.Steps[1].Size)

	// heights are monotonically non-decreasing
	for i := 1; i < len(d.Steps); i++ {
		require.GreaterOrEqual(t, d.Steps[i].Height, d.Steps[i-1].Height)
	}
}

func TestCutByHeightScenario5(t *testing.T) {
	d := cluster.CompleteLinkage(scenario5Condensed(), 3)
	labels := cluster.CutByHeight(d, 2)

	require.Equal(t, labels[0], labels[1])
	require.NotEqual(t, labels[0], labels[2])
}

func TestCutByCountScenario5(t *testing.T) {
	d := cluster.CompleteLinkage(scenario5Condensed(), 3)
	labels := cluster.CutByCount(d, 2)

	require.Equal(t, labels[0], labels[1])
	require.NotEqual(t, labels[0], labels[2])
}

func TestClustersFromNumberOneIsSingleCluster(t *testing.T) {
	d := cluster.CompleteLinkage(scenario5Condensed(), 3)
	labels := cluster.CutByCount(d, 1)

	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[1], labels[2])
}

func TestClustersFromNumberNIsAllSingletons(t *testing.T) {
	d := cluster.CompleteLinkage(scenario5Condensed(), 3)
	labels := cluster.CutByCount(d, 3)

	require.NotEqual(t, labels[0], labels[1])
	require.NotEqual(t, labels[1], labels[2])
	require.NotEqual(t, labels[0], labels[2])
}

func TestSingleSubmissionBoundary(t *testing.T) {
	d := cluster.CompleteLinkage(nil, 1)
	require.Empty(t, d.Steps)

	require.Equal(t, []int{0}, cluster.CutByHeight(d, 1))
	require.Equal(t, []int{0}, cluster.CutByCount(d, 1))
}

func TestTwoSubmissionsBoundary(t *testing.T) {
	d := cluster.CompleteLinkage([]float64{5}, 2)
	require.Len(t, d.Steps, 1)
}

func TestCondenseMatchesRowMajorUpperTriangle(t *testing.T) {
	vals := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	got := cluster.Condense(3, func(i, j int) float64 { return vals[i][j] })
	require.Equal(t, []float64{1, 2, 3}, got)
}
