// Package bidi implements a stateless bidirectional Dijkstra query: one
// forward search from the source, one backward search from the target
// (over the reversed edge direction), alternating expansion until their
// frontiers meet. Unlike package spt, bidi keeps no cache between calls —
// every invocation is a fresh, self-contained run, suited to one-off
// point-to-point queries where paying for incremental bookkeeping across
// many mutations is not worthwhile.
package bidi

import (
	"errors"
	"math"
)

// Sentinel errors returned by Query.
var (
	// ErrOutOfRange indicates a vertex identifier outside [0, N).
	ErrOutOfRange = errors.New("bidi: vertex out of range")

	// ErrNilGraph indicates a nil *digraph.Graph was passed to Query.
	ErrNilGraph = errors.New("bidi: nil graph")
)

// Result is the outcome of a bidirectional query: the distance from
// source to target, the full vertex sequence (empty when unreachable),
// and whether target was reachable at all. Mirrors spt.Result so callers
// can treat both packages' answers uniformly.
type Result struct {
	Distance  float64
	Path      []int
	Reachable bool
}

// frontier holds one direction's half of the search: tentative
// distances, parent pointers (toward the respective endpoint), and a
// settled marker used for the lazy-deletion priority queue.
type frontier struct {
	dist    []float64
	parent  []int
	settled []bool
}

// options configures a single Query call. Mirrors the functional-options
// shape the teacher's dijkstra package exposes (dijkstra.Options plus
// Option funcs), scaled down to the one knob a stateless query needs.
type options struct {
	threshold float64
}

// Option configures Query. When no Option is passed, Query runs with
// threshold +Inf, i.e. unbounded.
type Option func(*options)

// WithThreshold caps both searches' expansions at the given distance, per
// spec §4.3's "relaxations honor the threshold". Negative or non-finite
// (NaN) values normalize to +Inf (no cap), mirroring spt.Engine.SetThreshold.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if t < 0 || math.IsNaN(t) {
			t = math.Inf(1)
		}
		o.threshold = t
	}
}

func newFrontier(n int) frontier {
	f := frontier{
		dist:    make([]float64, n),
		parent:  make([]int, n),
		settled: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		f.dist[v] = math.Inf(1)
		f.parent[v] = -1
	}

	return f
}
