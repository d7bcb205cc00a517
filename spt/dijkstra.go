// File: dijkstra.go
// Role: the three ways an Engine brings its cache up to date — full
// recompute, Case A batched heal, Case B dirty recompute — all sharing
// one Dijkstra main loop with lazy priority-queue deletion and optional
// target pruning. freshness.go decides which of these to call.
package spt

import (
	"container/heap"
	"math"
)

// mainLoop drains pq, relaxing outgoing edges in order of increasing
// tentative distance. It returns true if the loop terminated early
// because targetPrune was popped (dist[*targetPrune] is then final, but
// vertices not yet settled may still hold stale dist); it returns false
// if the queue drained naturally, meaning every reachable-within-threshold
// vertex's distance is now final.
func (e *Engine) mainLoop(pq *pqueue, targetPrune *int) bool {
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u, d := item.vertex, item.dist

		if d > e.dist[u] {
			continue // stale entry: a better distance already settled u
		}
		if d > e.threshold {
			continue // entry is beyond the distance cap
		}
		if targetPrune != nil && u == *targetPrune {
			return true
		}

		outEdges, err := e.g.IterOut(u)
		if err != nil {
			continue
		}
		for _, edge := range outEdges {
			nd := d + edge.Weight
			if nd > e.threshold {
				continue
			}
			if nd >= e.dist[edge.To] {
				continue // non-strict improvement suppressed
			}
			e.dist[edge.To] = nd
			e.setParent(edge.To, u)
			heap.Push(pq, pqItem{vertex: edge.To, dist: nd})
		}
	}

	return false
}

// runFull resets the entire cache and runs Dijkstra from source,
// optionally pruned at targetPrune.
func (e *Engine) runFull(targetPrune *int) bool {
	for v := 0; v < e.n; v++ {
		e.dist[v] = math.Inf(1)
		e.clearParent(v)
	}

	e.dist[e.source] = 0
	e.parent[e.source] = e.source // self-loop sentinel: root of the SPT

	pq := &pqueue{}
	heap.Push(pq, pqItem{vertex: e.source, dist: 0})

	return e.mainLoop(pq, targetPrune)
}

// runCaseA flushes pendingRelax: each hint that strictly improves
// dist[To] is applied and pushed, then the shared main loop continues
// with whatever remains in the queue. Pending entries whose source is
// still unreached, or that do not strictly improve, are skipped — spec
// §4.2.2.
func (e *Engine) runCaseA(targetPrune *int) bool {
	pq := &pqueue{}

	for _, h := range e.pendingRelax {
		if math.IsInf(e.dist[h.From], 1) {
			continue
		}
		cand := e.dist[h.From] + h.Weight
		if cand > e.threshold {
			continue
		}
		if cand >= e.dist[h.To] {
			continue
		}
		e.dist[h.To] = cand
		e.setParent(h.To, h.From)
		heap.Push(pq, pqItem{vertex: h.To, dist: cand})
	}

	return e.mainLoop(pq, targetPrune)
}

// runCaseB recomputes the dirty subtree from its boundary inward: every
// dirty vertex is reset to +Inf, source is reseeded, and every non-dirty
// vertex with an edge into a dirty vertex is pushed at its already-final
// distance so its may relax a dirty neighbor — spec §4.2.3. If a prior
// notify call could not safely compute the precise descendant set,
// dirtyAll is set and this degrades to a full recompute instead.
//
// A Case A pending relaxation can land in the same batch as this Case B
// mutation — dirty is processed first per spec §4.2.1, but that does not
// mean pendingRelax may simply be dropped. Any surviving hint is seeded
// here exactly as runCaseA seeds it, guarding on the same
// not-yet-reached/strict-improvement conditions. A hint whose tail lies
// inside the dirty subtree needs no extra handling beyond that: the edge
// already lives in the live graph, so g.IterOut picks it up naturally
// once the main loop settles that tail vertex.
func (e *Engine) runCaseB(targetPrune *int) bool {
	if e.dirtyAll {
		return e.runFull(targetPrune)
	}

	pq := &pqueue{}

	for _, v := range e.dirtyList {
		e.dist[v] = math.Inf(1)
		e.clearParent(v)
	}

	e.dist[e.source] = 0
	e.parent[e.source] = e.source
	heap.Push(pq, pqItem{vertex: e.source, dist: 0})

	for _, d := range e.dirtyList {
		inEdges, err := e.g.IterIn(d)
		if err != nil {
			continue
		}
		for _, edge := range inEdges {
			v := edge.From
			if e.dirtyMask[v] {
				continue
			}
			if math.IsInf(e.dist[v], 1) || e.dist[v] > e.threshold {
				continue
			}
			heap.Push(pq, pqItem{vertex: v, dist: e.dist[v]})
		}
	}

	for _, h := range e.pendingRelax {
		if math.IsInf(e.dist[h.From], 1) {
			continue
		}
		cand := e.dist[h.From] + h.Weight
		if cand > e.threshold {
			continue
		}
		if cand >= e.dist[h.To] {
			continue
		}
		e.dist[h.To] = cand
		e.setParent(h.To, h.From)
		heap.Push(pq, pqItem{vertex: h.To, dist: cand})
	}

	return e.mainLoop(pq, targetPrune)
}
