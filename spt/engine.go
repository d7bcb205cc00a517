// File: engine.go
// Role: Engine construction, SetSource/SetThreshold, the Notify*/Invalidate
// mutation surface, and the public distance/path query entry points.
// The actual recompute strategies (full, Case A heal, Case B dirty
// recompute) live in dijkstra.go; the priority order that picks among
// them lives in freshness.go.
package spt

import (
	"math"

	"github.com/Rithikakalaimani/PathOps/digraph"
)

// Engine caches a single-source shortest-path tree over a digraph.Graph
// and answers distance/path queries with work proportional to the region
// affected by mutations since the last commit, rather than a full
// recompute every time.
type Engine struct {
	g *digraph.Graph
	n int

	source int // noParent (-1) if unset

	dist   []float64
	parent []int
	// children is the transpose of parent: children[u] lists every v with
	// parent[v] == u. Maintained incrementally on every relaxation so the
	// Case B dirty-descendant walk never rescans the whole vertex space.
	children [][]int

	graphVersion int64
	// committed is the (version, threshold) pair the cache was last
	// verified fresh against; committed.version == -1 means no run has
	// landed yet. See commitKey's doc comment for why both fields travel
	// together instead of graphVersion alone.
	committed commitKey

	pendingRelax []relaxHint

	dirtyMask []bool
	dirtyList []int
	dirtyAll  bool // next recompute must be a full run; see expandDirty, Invalidate, ensureFresh

	threshold float64
}

// New constructs an Engine bound to g for its entire lifetime. The
// engine's vertex space is g.Capacity(); no source is pinned yet.
func New(g *digraph.Graph) (*Engine, error) {
	if g == nil {
		return nil, ErrOutOfRange
	}
	n := g.Capacity()
	if n < 1 || n > MaxCapacity {
		return nil, ErrCapacityRejected
	}

	e := &Engine{
		g:         g,
		n:         n,
		source:    noParent,
		threshold: math.Inf(1),
	}
	e.resetPerSourceState()

	return e, nil
}

// resetPerSourceState clears dist/parent/children/pending/dirty and
// marks the cache uninitialized. Called by New and by SetSource whenever
// the source actually changes.
func (e *Engine) resetPerSourceState() {
	e.dist = make([]float64, e.n)
	e.parent = make([]int, e.n)
	e.children = make([][]int, e.n)
	for v := 0; v < e.n; v++ {
		e.dist[v] = math.Inf(1)
		e.parent[v] = noParent
	}

	e.graphVersion = 0
	e.committed = commitKey{version: -1, threshold: e.threshold}

	e.pendingRelax = e.pendingRelax[:0]
	e.dirtyMask = make([]bool, e.n)
	e.dirtyList = e.dirtyList[:0]
	e.dirtyAll = false
}

// SetSource pins the source vertex for subsequent queries. If s differs
// from the currently pinned source, all per-source cache state is
// cleared and the next query performs a full recompute.
func (e *Engine) SetSource(s int) error {
	if !e.inRange(s) {
		return ErrOutOfRange
	}
	if e.source == s {
		return nil
	}

	e.source = s
	e.resetPerSourceState()

	return nil
}

// SetThreshold stores a distance cap; expansions with tentative distance
// strictly greater than threshold are suppressed. Negative or non-finite
// (NaN) values normalize to +Inf (no cap). A change takes effect on the
// next query: per spec §9's threshold/commit Open Question, the cache is
// gated on the (graph version, threshold) pair, so changing the
// threshold alone is enough to force a re-verification.
func (e *Engine) SetThreshold(t float64) {
	if t < 0 || math.IsNaN(t) {
		t = math.Inf(1)
	}
	e.threshold = t
}

// NotifyAdded reports an edge insertion: a Case A (relaxing) mutation.
func (e *Engine) NotifyAdded(from, to int, weight float64) error {
	if !e.inRange(from) || !e.inRange(to) {
		return ErrOutOfRange
	}

	e.graphVersion++
	e.pendingRelax = append(e.pendingRelax, relaxHint{From: from, To: to, Weight: weight})

	return nil
}

// NotifyRemoved reports an edge removal: a Case B (tightening) mutation.
func (e *Engine) NotifyRemoved(from, to int) error {
	if !e.inRange(from) || !e.inRange(to) {
		return ErrOutOfRange
	}

	e.graphVersion++
	e.expandDirty(to)

	return nil
}

// NotifyWeightChanged reports a weight update on edge (from, to). A
// strict decrease is Case A; a strict increase is Case B. Equal weights
// are a no-op (resolved per spec §9's second Open Question: routing a
// same-weight update through Case B would be harmless but wasteful).
func (e *Engine) NotifyWeightChanged(from, to int, oldWeight, newWeight float64) error {
	if !e.inRange(from) || !e.inRange(to) {
		return ErrOutOfRange
	}
	if newWeight == oldWeight {
		return nil
	}

	e.graphVersion++
	if newWeight < oldWeight {
		e.pendingRelax = append(e.pendingRelax, relaxHint{From: from, To: to, Weight: newWeight})
	} else {
		e.expandDirty(to)
	}

	return nil
}

// Invalidate forces the next query to perform a full recompute. Use this
// when the caller has reason to doubt cache validity — e.g. a graph
// mutation that happened outside the Notify* surface.
func (e *Engine) Invalidate() {
	e.graphVersion++
	// Recorded pending/dirty work cannot describe an unreported mutation,
	// so the next recompute must not be incremental.
	e.dirtyAll = true
}

// Distance ensures the cache is fresh everywhere, then returns the
// distance from the pinned source to target (+Inf if unreachable).
func (e *Engine) Distance(target int) (float64, error) {
	if e.source == noParent {
		return Inf, ErrNoSource
	}
	if !e.inRange(target) {
		return Inf, ErrOutOfRange
	}

	if err := e.ensureFresh(nil); err != nil {
		return Inf, err
	}

	return e.dist[target], nil
}

// ShortestPath ensures the cache is fresh up to target (with target
// pruning when a recompute is needed), then reconstructs the path or
// reports unreachable.
func (e *Engine) ShortestPath(target int) (Result, error) {
	if e.source == noParent {
		return Result{Distance: Inf}, ErrNoSource
	}
	if !e.inRange(target) {
		return Result{Distance: Inf}, ErrOutOfRange
	}

	if err := e.ensureFresh(&target); err != nil {
		return Result{Distance: Inf}, err
	}

	if e.dist[target] == math.Inf(1) {
		return Result{Distance: Inf}, nil
	}

	return Result{
		Distance:  e.dist[target],
		Path:      e.reconstructPath(target),
		Reachable: true,
	}, nil
}

// reconstructPath walks parent from target back to source and reverses
// it. A defensive check (parent == noParent before reaching source)
// reports a truncated path rather than panicking; this should never
// trigger when dist[target] is finite, since the freshness protocol
// guarantees the cache is valid up to target before this is called.
func (e *Engine) reconstructPath(target int) []int {
	var rev []int
	v := target
	for {
		rev = append(rev, v)
		if v == e.source {
			break
		}
		if e.parent[v] == noParent {
			break
		}
		v = e.parent[v]
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

func (e *Engine) inRange(v int) bool { return v >= 0 && v < e.n }
