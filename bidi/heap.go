package bidi

// pqItem is a (vertex, tentative distance) pair ordered by dist
// ascending, mirroring package spt's lazy-decrease-key priority queue.
type pqItem struct {
	vertex int
	dist   float64
}

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
