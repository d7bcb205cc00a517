// Package spt implements an incremental single-source shortest-path
// engine over a github.com/Rithikakalaimani/PathOps/digraph.Graph.
//
// An Engine pins a source vertex and caches a shortest-path tree (SPT):
// dist[v] (best known distance) and parent[v] (predecessor on the cached
// path). Graph mutations are reported to the Engine through the
// Notify*/Invalidate surface rather than discovered by polling, and are
// classified into two cases:
//
//   - Case A (relaxing): an edge insertion or a weight decrease. These
//     can only shorten distances, so the Engine queues them as pending
//     relaxations and heals the cache by relaxing outward from the
//     changed edges at the next query.
//   - Case B (tightening): an edge removal or a weight increase. These
//     can only lengthen distances, so the Engine marks the affected
//     subtree of the cached SPT dirty and recomputes it from its boundary
//     inward at the next query.
//
// A query is satisfied by whichever of the following is cheapest given
// the outstanding work: the cache as-is, a batched Case A heal, a Case B
// dirty recompute, or — if there is no prior committed state, or an
// explicit Invalidate() has intervened — a full Dijkstra run. All four
// paths share one Dijkstra main loop with lazy priority-queue deletion.
//
// Engine has no synchronization primitives; it assumes a single logical
// caller issuing mutations and queries in a serialized stream, matching
// the cooperative scheduling model of package digraph.
package spt

import (
	"errors"
	"math"
)

// Sentinel errors returned by Engine methods.
var (
	// ErrOutOfRange indicates a vertex identifier outside [0, N).
	ErrOutOfRange = errors.New("spt: vertex out of range")

	// ErrNoSource indicates a query issued before SetSource.
	ErrNoSource = errors.New("spt: no source set")

	// ErrCapacityRejected indicates a requested capacity outside [1, MaxCapacity].
	ErrCapacityRejected = errors.New("spt: capacity rejected")
)

// MaxCapacity mirrors digraph.MaxCapacity; duplicated here so that
// package spt has no compile-time dependency on digraph's exported
// constant name remaining stable, and so callers constructing an Engine
// standalone see the same bound without importing digraph for it.
const MaxCapacity = 100_000

// noParent marks a vertex with no predecessor: unvisited, or the source
// before a recompute sets its parent to itself.
const noParent = -1

// Inf is the returned distance for unreachable vertices.
var Inf = math.Inf(1)

// Result is the outcome of a path query: the distance to the target, the
// full vertex sequence from source to target (empty when unreachable),
// and whether the target was reachable at all.
//
// Reachable source-to-source is Distance 0, Path []int{source},
// Reachable true. Unreachable is Distance +Inf, Path nil, Reachable
// false.
type Result struct {
	Distance  float64
	Path      []int
	Reachable bool
}

// relaxHint is one pending Case A entry: an edge whose weight may have
// improved dist[To].
type relaxHint struct {
	From, To int
	Weight   float64
}

// commitKey identifies the (graph version, threshold) pair a cached SPT
// was last verified fresh against. Gating freshness on the pair rather
// than graph_version alone resolves the threshold/commit Open Question
// in spec.md §9: after a threshold change the cache is no longer fresh,
// and the next query recomputes it with a full run.
type commitKey struct {
	version   int64
	threshold float64
}
