package mcmf

// nodeItem is one entry in the Dijkstra-phase priority queue: a node and
// its current reduced-cost distance from Source.
type nodeItem struct {
	node int
	dist int64
}

// nodePQ is a container/heap.Interface min-heap of nodeItem, ordered by
// dist ascending. This follows dijkstra.go's lazy-decrease-key idiom:
// when dijkstraRound finds a shorter distance to a node already in the
// heap, it pushes a new entry rather than mutating the old one; the
// stale entry is discarded when it eventually surfaces, via the
// visited-set check at pop time.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
