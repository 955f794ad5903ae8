package align

import "container/heap"

// ShortestPath finds the minimum-cost coordinate path from start to
// end in the alignment grid using Dijkstra's algorithm.
//
// The priority key is accumulated cost; among equal costs the entry
// pushed earliest wins, so the returned path is identical across runs.
// Relaxation is strict (newDist < dist), which keeps the first
// predecessor discovered for a given cost.
//
// Returns ErrNoPath when end cannot be reached — impossible for
// graphs produced by MatrixToGraph, whose grids are fully connected
// by insertion/deletion edges.
//
// Complexity: O(N·log N) time with N = Rows·Cols, O(N) memory.
func ShortestPath(g *Graph, start, end Coord) ([]Coord, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.inside(start) || !g.inside(end) {
		return nil, ErrCoordOutside
	}

	// 2) Prepare distance and predecessor arenas. -1 marks "no
	//    predecessor yet"; unvisited distances stay at the sentinel.
	const unset = int(^uint(0) >> 1) // max int
	n := g.Rows * g.Cols
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = unset
		prev[i] = -1
	}
	dist[g.index(start)] = 0

	// 3) Seed the lazy-decrease-key heap with the start node. seq is a
	//    monotone counter; it breaks cost ties by insertion order.
	pq := &coordPQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &coordItem{coord: start, dist: 0, seq: seq})

	// 4) Main loop: pop the cheapest node, skip stale entries, relax
	//    the outgoing arcs in their insertion order.
	var item *coordItem
	for pq.Len() > 0 {
		item = heap.Pop(pq).(*coordItem)
		u := g.index(item.coord)
		if item.dist > dist[u] {
			continue // stale heap entry
		}
		for _, e := range g.Edges(item.coord) {
			v := g.index(e.To)
			newDist := item.dist + e.Weight
			if newDist >= dist[v] {
				continue // strict improvement only
			}
			dist[v] = newDist
			prev[v] = u
			seq++
			heap.Push(pq, &coordItem{coord: e.To, dist: newDist, seq: seq})
		}
	}

	// 5) Unreachable end: no predecessor was ever recorded.
	endIdx := g.index(end)
	if endIdx != g.index(start) && prev[endIdx] == -1 {
		return nil, ErrNoPath
	}

	// 6) Walk predecessors back from end to start, then reverse.
	path := []Coord{end}
	for idx := endIdx; idx != g.index(start); idx = prev[idx] {
		p := prev[idx]
		path = append(path, Coord{Row: p / g.Cols, Col: p % g.Cols})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// coordItem is one heap entry: a coordinate, its tentative distance,
// and the push sequence number used for deterministic tie-breaking.
type coordItem struct {
	coord Coord
	dist  int
	seq   int
}

// coordPQ is a min-heap of *coordItem ordered by (dist, seq). Stale
// entries are skipped when popped (lazy decrease-key).
type coordPQ []*coordItem

func (pq coordPQ) Len() int { return len(pq) }

func (pq coordPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq coordPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *coordPQ) Push(x interface{}) { *pq = append(*pq, x.(*coordItem)) }

func (pq *coordPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
