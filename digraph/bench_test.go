package digraph_test

import (
	"testing"

	"github.com/Rithikakalaimani/PathOps/digraph"
)

// Benchmark sinks prevent accidental dead-code elimination in
// microbenchmarks. They must remain package-level to defeat escape
// analysis assumptions.
var (
	benchSinkBool   bool
	benchSinkWeight float64
	benchSinkEdges  []digraph.Edge
)

// BenchmarkAddEdge measures AddEdge throughput on a star topology rooted
// at vertex 0, excluding setup cost from the timed region.
func BenchmarkAddEdge(b *testing.B) {
	g, err := digraph.New(digraph.MaxCapacity)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkBool, _ = g.AddEdge(0, 1+(i%(digraph.MaxCapacity-1)), float64(i))
	}
}

// BenchmarkRemoveEdge measures RemoveEdge on a pre-populated star,
// re-adding each edge after removal so the benchmark runs steady-state.
func BenchmarkRemoveEdge(b *testing.B) {
	const n = 2000
	g, err := digraph.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if _, err = g.AddEdge(0, i, float64(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		to := 1 + (i % (n - 1))
		benchSinkBool, _ = g.RemoveEdge(0, to)
		_, _ = g.AddEdge(0, to, float64(i))
	}
}

// BenchmarkIterOut measures the cost of reading back a 1999-edge out
// adjacency list, which is O(1) since IterOut returns the backing slice
// directly.
func BenchmarkIterOut(b *testing.B) {
	const n = 2000
	g, err := digraph.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if _, err = g.AddEdge(0, i, float64(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkEdges, _ = g.IterOut(0)
	}
}

// BenchmarkGetWeight measures GetWeight's linear scan cost against the
// last edge in a 1999-entry adjacency list (worst case for a hit).
func BenchmarkGetWeight(b *testing.B) {
	const n = 2000
	g, err := digraph.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if _, err = g.AddEdge(0, i, float64(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkWeight, _ = g.GetWeight(0, n-1)
	}
}
