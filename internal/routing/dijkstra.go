package routing

import (
	"container/heap"
)

// FindRoute computes the minimum-total-time path between two stations.
// It returns a NoRouteFoundError when either endpoint is unknown to the
// graph or the stations lie in disconnected components. A query with
// source == target returns the single-element path at zero cost.
//
// Tie-breaking between equal-weight paths is by station name, so results
// are deterministic for a fixed graph.
func FindRoute(g *Graph, source, target string) ([]string, error) {
	if g == nil || g.NumStations() == 0 {
		return nil, &NoRouteFoundError{Source: source, Target: target, Reason: "graph has no stations"}
	}
	if !g.HasStation(source) {
		return nil, &NoRouteFoundError{Source: source, Target: target, Reason: "unknown source station"}
	}
	if !g.HasStation(target) {
		return nil, &NoRouteFoundError{Source: source, Target: target, Reason: "unknown destination station"}
	}
	if source == target {
		return []string{source}, nil
	}

	dist := map[string]float64{source: 0}
	parent := make(map[string]string)
	done := make(map[string]bool)

	pq := &stationQueue{{station: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(stationItem)
		if done[cur.station] {
			continue
		}
		done[cur.station] = true
		if cur.station == target {
			break
		}

		for _, e := range g.Neighbors(cur.station) {
			if done[e.To] {
				continue
			}
			next := cur.dist + e.TimeMin
			old, seen := dist[e.To]
			if !seen || next < old || (next == old && cur.station < parent[e.To]) {
				dist[e.To] = next
				parent[e.To] = cur.station
				heap.Push(pq, stationItem{station: e.To, dist: next})
			}
		}
	}

	if !done[target] {
		return nil, &NoRouteFoundError{Source: source, Target: target, Reason: "stations are not connected"}
	}

	// Reconstruct target -> source, then reverse
	path := []string{target}
	for cur := target; cur != source; {
		p := parent[cur]
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type stationItem struct {
	station string
	dist    float64
}

type stationQueue []stationItem

func (q stationQueue) Len() int { return len(q) }

func (q stationQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].station < q[j].station
}

func (q stationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stationQueue) Push(x any) { *q = append(*q, x.(stationItem)) }

func (q *stationQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
