// File: graph.go
// Role: Graph construction and the add/remove/set-weight/get-weight
// mutation surface (spec §4.1).
//
// Representation: one outgoing slice and one incoming slice per vertex,
// scanned linearly on mutation. This is acceptable given typical sparse
// degree, and it is what keeps iteration order equal to insertion order
// without a side index.
package digraph

// Graph is a mutable, weighted directed graph over [0, N).
//
// At most one edge exists per ordered pair (from, to). Every add/remove/
// set-weight operation updates both the outgoing record at from and its
// mirror incoming record at to so that edgeCount always equals both the
// sum of out-degrees and the sum of in-degrees.
type Graph struct {
	capacity  int
	out       [][]Edge
	in        [][]Edge
	edgeCount int
}

// New constructs a Graph with the given vertex capacity n, 1 <= n <=
// MaxCapacity. Vertices are implicit: no per-vertex allocation happens
// beyond the two adjacency slices.
func New(n int) (*Graph, error) {
	if n < 1 || n > MaxCapacity {
		return nil, ErrCapacityRejected
	}

	return &Graph{
		capacity: n,
		out:      make([][]Edge, n),
		in:       make([][]Edge, n),
	}, nil
}

// Capacity returns N, the fixed vertex-space size passed to New.
func (g *Graph) Capacity() int { return g.capacity }

// EdgeCount returns the number of distinct (from, to) edges currently
// present in the graph.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// inRange reports whether v is a valid vertex identifier for this graph.
func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.capacity }

// AddEdge inserts an edge (from, to, weight). Returns (false, nil) without
// side effect if the edge already exists; returns (true, nil) after
// inserting the outgoing record at from and the mirrored incoming record
// at to.
func (g *Graph) AddEdge(from, to int, weight float64) (bool, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return false, ErrOutOfRange
	}
	if weight < 0 {
		return false, ErrNegativeWeight
	}

	if idx := indexOf(g.out[from], to); idx >= 0 {
		return false, nil
	}

	g.out[from] = append(g.out[from], Edge{From: from, To: to, Weight: weight})
	g.in[to] = append(g.in[to], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return true, nil
}

// RemoveEdge deletes the edge (from, to) if present, removing both the
// outgoing record and its mirrored incoming record. Returns false if no
// such edge exists.
func (g *Graph) RemoveEdge(from, to int) (bool, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return false, ErrOutOfRange
	}

	oi := indexOf(g.out[from], to)
	if oi < 0 {
		return false, nil
	}
	ii := indexOfFrom(g.in[to], from)

	g.out[from] = removeAt(g.out[from], oi)
	if ii >= 0 {
		g.in[to] = removeAt(g.in[to], ii)
	}
	g.edgeCount--

	return true, nil
}

// SetWeight replaces the weight of edge (from, to), returning the prior
// weight. If the edge is absent, SetWeight inserts it as a new edge (both
// sides) and returns NoEdge.
func (g *Graph) SetWeight(from, to int, weight float64) (float64, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return NoEdge, ErrOutOfRange
	}
	if weight < 0 {
		return NoEdge, ErrNegativeWeight
	}

	oi := indexOf(g.out[from], to)
	if oi < 0 {
		if _, err := g.AddEdge(from, to, weight); err != nil {
			return NoEdge, err
		}
		return NoEdge, nil
	}

	prior := g.out[from][oi].Weight
	g.out[from][oi].Weight = weight
	if ii := indexOfFrom(g.in[to], from); ii >= 0 {
		g.in[to][ii].Weight = weight
	}

	return prior, nil
}

// GetWeight returns the current weight of edge (from, to), or NoEdge if
// absent.
func (g *Graph) GetWeight(from, to int) (float64, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return NoEdge, ErrOutOfRange
	}

	if idx := indexOf(g.out[from], to); idx >= 0 {
		return g.out[from][idx].Weight, nil
	}

	return NoEdge, nil
}

// IterOut returns the outgoing edges of v in insertion order. The
// returned slice is a read-only view valid only until the next mutation
// of the graph; callers must not retain it across mutations.
func (g *Graph) IterOut(v int) ([]Edge, error) {
	if !g.inRange(v) {
		return nil, ErrOutOfRange
	}

	return g.out[v], nil
}

// IterIn returns the incoming edges of v in insertion order. The returned
// slice is a read-only view valid only until the next mutation of the
// graph; callers must not retain it across mutations.
func (g *Graph) IterIn(v int) ([]Edge, error) {
	if !g.inRange(v) {
		return nil, ErrOutOfRange
	}

	return g.in[v], nil
}

// indexOf returns the index of the record targeting `to` within an
// outgoing slice, or -1 if absent.
func indexOf(edges []Edge, to int) int {
	for i := range edges {
		if edges[i].To == to {
			return i
		}
	}

	return -1
}

// indexOfFrom returns the index of the record sourced from `from` within
// an incoming slice, or -1 if absent.
func indexOfFrom(edges []Edge, from int) int {
	for i := range edges {
		if edges[i].From == from {
			return i
		}
	}

	return -1
}

// removeAt deletes the element at index i while preserving the relative
// order of the remaining elements.
func removeAt(edges []Edge, i int) []Edge {
	copy(edges[i:], edges[i+1:])

	return edges[:len(edges)-1]
}
