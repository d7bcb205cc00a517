package bidi

import (
	"container/heap"
	"math"

	"github.com/Rithikakalaimani/PathOps/digraph"
)

// Query runs a one-off bidirectional Dijkstra for the shortest path from
// source to target over g. It holds no state across calls: every
// invocation walks g.IterOut/g.IterIn directly and allocates its own
// working arrays, trading the incremental engine's amortized-cheap
// repeated queries for a single call with no setup beyond having a
// *digraph.Graph in hand.
//
// The forward search runs outward from source over IterOut edges; the
// backward search runs outward from target over IterIn edges (walking
// the graph in reverse). They alternate popping the cheaper frontier's
// next candidate and stop once the sum of both frontiers' next
// candidate distances is no better than the best meeting distance found
// so far — the standard bidirectional-Dijkstra termination rule. A
// meeting is recorded whenever one search settles a vertex the other
// search has already reached.
//
// By default every reachable vertex is explored; pass WithThreshold to
// cap both searches' expansions, mirroring spt.Engine's threshold: a
// target whose distance exceeds the threshold is reported unreachable.
func Query(g *digraph.Graph, source, target int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{Distance: math.Inf(1)}, ErrNilGraph
	}

	n := g.Capacity()
	if source < 0 || source >= n || target < 0 || target >= n {
		return Result{Distance: math.Inf(1)}, ErrOutOfRange
	}
	if source == target {
		return Result{Distance: 0, Path: []int{source}, Reachable: true}, nil
	}

	o := options{threshold: math.Inf(1)}
	for _, opt := range opts {
		opt(&o)
	}

	fwd := newFrontier(n)
	bwd := newFrontier(n)
	fwd.dist[source] = 0
	bwd.dist[target] = 0

	pqF := &pqueue{{vertex: source, dist: 0}}
	pqB := &pqueue{{vertex: target, dist: 0}}

	best := math.Inf(1)
	meet := -1

	for pqF.Len() > 0 || pqB.Len() > 0 {
		fTop, fOk := peekTop(pqF)
		bTop, bOk := peekTop(pqB)

		if meet != -1 {
			if !fOk || !bOk || fTop+bTop >= best {
				break
			}
		}

		if fOk && (!bOk || fTop <= bTop) {
			if u, d, ok := popFresh(pqF, &fwd); ok {
				fwd.settled[u] = true
				if !math.IsInf(bwd.dist[u], 1) {
					if cand := d + bwd.dist[u]; cand < best && cand <= o.threshold {
						best, meet = cand, u
					}
				}
				relax(g.IterOut, u, d, &fwd, pqF, o.threshold)
			}
		} else if bOk {
			if u, d, ok := popFresh(pqB, &bwd); ok {
				bwd.settled[u] = true
				if !math.IsInf(fwd.dist[u], 1) {
					if cand := d + fwd.dist[u]; cand < best && cand <= o.threshold {
						best, meet = cand, u
					}
				}
				relax(g.IterIn, u, d, &bwd, pqB, o.threshold)
			}
		}
	}

	if meet == -1 {
		return Result{Distance: math.Inf(1)}, nil
	}

	return Result{
		Distance:  best,
		Path:      reconstructPath(meet, &fwd, &bwd),
		Reachable: true,
	}, nil
}

// peekTop reports the minimum distance in pq without popping it.
func peekTop(pq *pqueue) (float64, bool) {
	if pq.Len() == 0 {
		return 0, false
	}

	return (*pq)[0].dist, true
}

// popFresh pops entries from pq until it finds one that is neither stale
// (a better distance already settled) nor already settled, or the queue
// drains. Returns ok=false once pq is empty.
func popFresh(pq *pqueue, f *frontier) (int, float64, bool) {
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.dist > f.dist[item.vertex] {
			continue
		}
		if f.settled[item.vertex] {
			continue
		}

		return item.vertex, item.dist, true
	}

	return 0, 0, false
}

// edgeIter is the shape shared by digraph.Graph's IterOut/IterIn: the
// two directions relax identically modulo which one supplies edges.
type edgeIter func(int) ([]digraph.Edge, error)

// relax extends frontier f outward from u (already settled at distance
// d) along the edges iter(u) returns. For the forward frontier iter is
// g.IterOut and edges point away from u; for the backward frontier iter
// is g.IterIn and the edge's From endpoint is the neighbor being
// relaxed, since walking incoming edges backward is how the backward
// search simulates traversing the graph in reverse. Candidates beyond
// threshold are suppressed, per spec §4.3.
func relax(iter edgeIter, u int, d float64, f *frontier, pq *pqueue, threshold float64) {
	edges, err := iter(u)
	if err != nil {
		return
	}

	for _, e := range edges {
		neighbor, nd := neighborAndDistance(e, u, d)
		if nd > threshold {
			continue
		}
		if f.settled[neighbor] {
			continue
		}
		if nd >= f.dist[neighbor] {
			continue
		}
		f.dist[neighbor] = nd
		f.parent[neighbor] = u
		heap.Push(pq, pqItem{vertex: neighbor, dist: nd})
	}
}

// neighborAndDistance picks the edge endpoint that is NOT u (the vertex
// just settled) and computes the candidate distance through it. Forward
// edges (from IterOut) have e.From == u, so the neighbor is e.To.
// Backward edges (from IterIn) have e.To == u, so the neighbor is e.From.
func neighborAndDistance(e digraph.Edge, u int, d float64) (int, float64) {
	if e.From == u {
		return e.To, d + e.Weight
	}

	return e.From, d + e.Weight
}

// reconstructPath walks fwd.parent from meet back to source, then
// bwd.parent from meet forward to target, and concatenates the two
// halves into one source-to-target vertex sequence.
func reconstructPath(meet int, fwd, bwd *frontier) []int {
	var front []int
	v := meet
	for {
		front = append(front, v)
		if fwd.parent[v] == -1 {
			break
		}
		v = fwd.parent[v]
	}
	for i, j := 0, len(front)-1; i < j; i, j = i+1, j-1 {
		front[i], front[j] = front[j], front[i]
	}

	var back []int
	v = bwd.parent[meet]
	for v != -1 {
		back = append(back, v)
		v = bwd.parent[v]
	}

	return append(front, back...)
}
