package spt

// pqItem is a (vertex, tentative distance) pair stored in the priority
// queue, ordered by dist ascending.
type pqItem struct {
	vertex int
	dist   float64
}

// pqueue is a min-heap of pqItem ordered by dist. It uses the
// lazy-decrease-key pattern: a strictly shorter distance to a vertex
// already in the heap is pushed as a new entry rather than updating the
// existing one in place; stale entries are discarded on pop by comparing
// against the current best distance (see mainLoop in dijkstra.go).
// No heap data structure needs to support decrease-key.
type pqueue []pqItem

func (pq pqueue) Len() int            { return len(pq) }
func (pq pqueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq pqueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pqueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *pqueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
