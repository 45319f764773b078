// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of non-land cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each filled cell costs 1; blocked
// cells are impassable. Land outside dstComp is crossed for free only when
// it joins srcComp (see GridOptions.Connects); other land is impassable.
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into joining land    → cost 0
//     • Moving into foreign land    → skipped
//     • Moving into a free cell     → cost 1
//     • Blocked cells               → skipped
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors map.
//
// Only explored coordinates are materialized, so sparse grids with nearby
// regions stay cheap even when W×H is large.
//
// Complexity: O(A·d) time, O(A) memory, A = explored cells ≤ W·H.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []Point, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	anchor := comps[srcComp][0]

	dist := make(map[Point]int)
	prev := make(map[Point]Point)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist[p] = 0
		dq.PushBack(p)
	}

	offsets := gg.NeighborOffsets()
	var (
		target Point
		found  bool
	)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Point)
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for _, d := range offsets {
			v := Point{u.X + d[0], u.Y + d[1]}
			if !gg.InBounds(v.X, v.Y) {
				continue
			}
			step := 0
			if gg.IsLand(v) {
				if _, ok := dstSet[v]; !ok && !gg.joins(anchor, v) {
					continue
				}
			} else {
				if gg.isBlocked(v) {
					continue
				}
				step = 1
			}
			nd := dist[u] + step
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; ; {
		path = append(path, at)
		p, ok := prev[at]
		if !ok {
			break
		}
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
