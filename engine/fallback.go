package engine

// RandomWalk produces a uniformly randomized legal move for the player at
// myPos: a step count drawn from [0, maxStep], that many random unblocked
// steps never landing on advPos (stopping early if boxed in), then a random
// free wall direction at the final cell.
//
// The final cell always has at least one free side: a cell walled on all
// four sides is disconnected from every neighbor, a state the endgame check
// would have caught before the cell could be occupied. Finding none means
// the board is corrupted, so that case panics rather than returning an
// error.
func RandomWalk(b *Board, myPos, advPos Position, maxStep int, rng Rand) (Position, Direction) {
	steps := rng.Intn(maxStep + 1)

	for i := 0; i < steps; i++ {
		var open []Direction
		for d := Direction(0); d < NumDirections; d++ {
			if b.IsWall(myPos.Row, myPos.Col, d) || myPos.Add(d) == advPos {
				continue
			}
			open = append(open, d)
		}
		if len(open) == 0 {
			// Boxed in by the adversary; place the wall where we stand.
			break
		}
		myPos = myPos.Add(open[rng.Intn(len(open))])
	}

	var free []Direction
	for d := Direction(0); d < NumDirections; d++ {
		if !b.IsWall(myPos.Row, myPos.Col, d) {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		panic("engine: no free wall direction at " + myPos.String() + "; board state corrupted")
	}
	return myPos, free[rng.Intn(len(free))]
}
