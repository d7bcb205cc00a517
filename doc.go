// Package pathops is an in-memory engine for maintaining shortest-path
// answers over a directed, non-negatively weighted graph that changes
// continuously through edge insertions, deletions, and weight updates.
//
// A client pins a source vertex once and then repeatedly asks for the
// distance (and optionally the path) to arbitrary targets, issuing any
// mix of graph mutations between queries. The engine caches a
// single-source shortest-path tree and reuses it across queries instead
// of recomputing Dijkstra from scratch every time:
//
//   - Edge insertions and weight decreases (Case A) only ever shorten
//     distances, so the cache heals by relaxing outward from the changed
//     edges.
//   - Edge removals and weight increases (Case B) can only lengthen
//     distances, so the affected subtree of the cached tree is marked
//     dirty and recomputed from its boundary inward.
//
// Three packages make up the core:
//
//	digraph/ — the mutable weighted digraph: fixed [0,N) vertex space,
//	           at most one edge per ordered pair, outgoing/incoming
//	           adjacency kept in sync on every mutation.
//	spt/     — the incremental engine: caches dist/parent from a pinned
//	           source, classifies every mutation as relaxing or
//	           tightening, and answers distance/path queries with work
//	           proportional to the affected region rather than the whole
//	           graph.
//	bidi/    — a stateless forward+backward Dijkstra for one-off
//	           source-target queries that never touches engine state.
//
// Quick example:
//
//	g, _ := digraph.New(4)
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(2, 3, 1)
//
//	e, _ := spt.New(g)
//	e.SetSource(0)
//	res, _ := e.ShortestPath(3) // {Distance: 4, Path: [0 1 2 3], Reachable: true}
//
//	g.AddEdge(0, 3, 1) // Case A: add_edge is a relaxing mutation
//	e.NotifyAdded(0, 3, 1)
//	res, _ = e.ShortestPath(3) // {Distance: 1, Path: [0 3], Reachable: true}
//
// This package is single-threaded and cooperative: neither Engine nor
// Graph contains a mutex, a channel, or a goroutine. Callers who need
// concurrent access must serialize externally — one engine per goroutine,
// or an external lock around the engine.
//
// Out of scope, by design: REST/RPC surfaces, visualization, metrics
// dashboards, persistence across restarts, and concurrent mutation from
// multiple writers. Those are the responsibility of whatever embeds this
// package.
package pathops
