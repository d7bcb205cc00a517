package digraph_test

import (
	"testing"

	"github.com/Rithikakalaimani/PathOps/digraph"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNew_CapacityBounds(t *testing.T) {
	t.Parallel()

	_, err := digraph.New(0)
	require.ErrorIs(t, err, digraph.ErrCapacityRejected)

	_, err = digraph.New(-1)
	require.ErrorIs(t, err, digraph.ErrCapacityRejected)

	_, err = digraph.New(digraph.MaxCapacity + 1)
	require.ErrorIs(t, err, digraph.ErrCapacityRejected)

	g, err := digraph.New(digraph.MaxCapacity)
	require.NoError(t, err)
	require.Equal(t, digraph.MaxCapacity, g.Capacity())

	g, err = digraph.New(1)
	require.NoError(t, err)
	require.Equal(t, 1, g.Capacity())
}

func TestAddEdge_OutOfRange(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(3)
	require.NoError(t, err)

	_, err = g.AddEdge(-1, 0, 1)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)

	_, err = g.AddEdge(0, 3, 1)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(2)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, -0.5)
	require.ErrorIs(t, err, digraph.ErrNegativeWeight)
	require.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(2)
	require.NoError(t, err)

	ok, err := g.AddEdge(0, 1, 5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.AddEdge(0, 1, 7)
	require.NoError(t, err)
	require.False(t, ok, "duplicate insert must be rejected without side effect")

	w, err := g.GetWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, w, "weight must be unchanged by the rejected duplicate insert")
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_MirrorsIncoming(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(3)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, 4)
	require.NoError(t, err)

	out, err := g.IterOut(0)
	require.NoError(t, err)
	if diff := cmp.Diff([]digraph.Edge{{From: 0, To: 1, Weight: 2}}, out); diff != "" {
		t.Errorf("IterOut(0) mismatch (-want +got):\n%s", diff)
	}

	in, err := g.IterIn(1)
	require.NoError(t, err)
	want := []digraph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 2, To: 1, Weight: 4},
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("IterIn(1) mismatch, incoming order must match insertion order (-want +got):\n%s", diff)
	}
}

func TestRemoveEdge(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(3)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	ok, err := g.RemoveEdge(0, 2)
	require.NoError(t, err)
	require.False(t, ok, "removing an absent edge returns false")

	ok, err = g.RemoveEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, g.EdgeCount())

	w, err := g.GetWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, digraph.NoEdge, w)

	in, err := g.IterIn(1)
	require.NoError(t, err)
	require.Empty(t, in, "mirrored incoming record must be removed too")

	_, err = g.RemoveEdge(-1, 0)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)
}

func TestRemoveEdge_PreservesOrderOfSiblings(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(4)
	require.NoError(t, err)

	for _, to := range []int{1, 2, 3} {
		_, err = g.AddEdge(0, to, float64(to))
		require.NoError(t, err)
	}

	ok, err := g.RemoveEdge(0, 2)
	require.NoError(t, err)
	require.True(t, ok)

	out, err := g.IterOut(0)
	require.NoError(t, err)
	want := []digraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 3},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("IterOut(0) mismatch after removal (-want +got):\n%s", diff)
	}
}

func TestSetWeight_ExistingReturnsPrior(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(2)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, 10)
	require.NoError(t, err)

	prior, err := g.SetWeight(0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 10.0, prior)

	w, err := g.GetWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)

	in, err := g.IterIn(1)
	require.NoError(t, err)
	require.Equal(t, 3.0, in[0].Weight, "mirrored incoming weight must update too")
}

func TestSetWeight_AbsentInserts(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(2)
	require.NoError(t, err)

	prior, err := g.SetWeight(0, 1, 6)
	require.NoError(t, err)
	require.Equal(t, digraph.NoEdge, prior)
	require.Equal(t, 1, g.EdgeCount())

	w, err := g.GetWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, w)
}

func TestSetWeight_NegativeRejected(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(2)
	require.NoError(t, err)

	_, err = g.SetWeight(0, 1, -1)
	require.ErrorIs(t, err, digraph.ErrNegativeWeight)
	require.Equal(t, 0, g.EdgeCount())
}

func TestGetWeight_OutOfRange(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(1)
	require.NoError(t, err)

	_, err = g.GetWeight(0, 5)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)
}

func TestIter_OutOfRange(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(1)
	require.NoError(t, err)

	_, err = g.IterOut(7)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)

	_, err = g.IterIn(-1)
	require.ErrorIs(t, err, digraph.ErrOutOfRange)
}

// TestEdgeCount_InvariantAcrossMutations locks in spec §3's invariant:
// edge count equals total outgoing records, which equals total incoming
// records, through a mixed sequence of add/remove/set operations.
func TestEdgeCount_InvariantAcrossMutations(t *testing.T) {
	t.Parallel()

	g, err := digraph.New(5)
	require.NoError(t, err)

	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}}
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	requireConsistent(t, g, 5)

	ok, err := g.RemoveEdge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	requireConsistent(t, g, 4)

	_, err = g.SetWeight(2, 3, 9)
	require.NoError(t, err)
	requireConsistent(t, g, 4)

	_, err = g.SetWeight(4, 0, 2)
	require.NoError(t, err)
	requireConsistent(t, g, 5)
}

// requireConsistent asserts g.EdgeCount() matches both the sum of
// out-degrees and the sum of in-degrees across all N vertices.
func requireConsistent(t *testing.T, g *digraph.Graph, want int) {
	t.Helper()

	require.Equal(t, want, g.EdgeCount())

	var outSum, inSum int
	for v := 0; v < g.Capacity(); v++ {
		out, err := g.IterOut(v)
		require.NoError(t, err)
		outSum += len(out)

		in, err := g.IterIn(v)
		require.NoError(t, err)
		inSum += len(in)
	}
	require.Equal(t, want, outSum)
	require.Equal(t, want, inSum)
}
