package engine

// CheckValidStep reports whether moving from start to end and placing a wall
// in barrierDir at end is a legal turn: the destination edge must still be
// free, and end must be reachable from start within at most maxStep edge
// crossings without passing a wall or touching the opponent's cell advPos.
//
// The search is a breadth-first expansion over the cell graph (N² vertices,
// degree ≤ 4), one layer per step, so a call costs O(N²) in the worst case.
func CheckValidStep(b *Board, start, end Position, barrierDir Direction, advPos Position, maxStep int) bool {
	// No wall may be placed where one exists, border edges included.
	if b.IsWall(end.Row, end.Col, barrierDir) {
		return false
	}
	// Staying put is always reachable.
	if start == end {
		return true
	}

	type node struct {
		pos  Position
		step int
	}
	queue := []node{{start, 0}}
	visited := map[Position]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		// The queue is ordered by depth, so the budget is exhausted as soon
		// as a frontier node at maxStep surfaces.
		if cur.step == maxStep {
			break
		}
		for d := Direction(0); d < NumDirections; d++ {
			if b.IsWall(cur.pos.Row, cur.pos.Col, d) {
				continue
			}
			next := cur.pos.Add(d)
			if next == advPos || visited[next] {
				continue
			}
			if next == end {
				return true
			}
			visited[next] = true
			queue = append(queue, node{next, cur.step + 1})
		}
	}
	return false
}
