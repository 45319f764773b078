// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells, according to gg.Conn connectivity.
// Adjacent land cells share a component only when GridOptions.Connects
// (if set) accepts the pair.
// Components are ordered by their earliest-written cell; within a
// component, cells appear in BFS order from that seed.
//
// Time:   O(D·d), where d = 4 or 8.
// Memory: O(D) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make(map[Point]struct{}, len(gg.land))
	var comps [][]Point
	offsets := gg.NeighborOffsets()

	for _, p0 := range gg.order {
		if !gg.IsLand(p0) {
			continue // defined, but filtered out by Land
		}
		if _, ok := seen[p0]; ok {
			continue
		}
		// BFS to collect component
		queue := []Point{p0}
		seen[p0] = struct{}{}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := Point{u.X + d[0], u.Y + d[1]}
				if !gg.InBounds(v.X, v.Y) || !gg.IsLand(v) || !gg.joins(u, v) {
					continue
				}
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
