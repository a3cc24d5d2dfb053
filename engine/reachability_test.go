package engine

import "testing"

func TestCheckValidStepWithinBudget(t *testing.T) {
	b := NewEmptyBoard(5)
	start := Position{0, 0}
	adv := Position{4, 4}
	const maxStep = 3

	cases := []struct {
		end  Position
		want bool
	}{
		{Position{0, 1}, true},  // distance 1
		{Position{1, 1}, true},  // distance 2
		{Position{2, 1}, true},  // distance 3, exactly the budget
		{Position{0, 3}, true},  // distance 3 along the edge
		{Position{2, 2}, false}, // distance 4
		{Position{3, 3}, false}, // distance 6
	}
	for _, c := range cases {
		if got := CheckValidStep(b, start, c.end, Down, adv, maxStep); got != c.want {
			t.Errorf("CheckValidStep(%v -> %v) = %v, want %v", start, c.end, got, c.want)
		}
	}
}

func TestCheckValidStepStayInPlace(t *testing.T) {
	b := NewEmptyBoard(4)
	p := Position{1, 1}

	if !CheckValidStep(b, p, p, Right, Position{3, 3}, 3) {
		t.Error("staying put with a free wall direction should be valid")
	}
}

func TestCheckValidStepRejectsExistingWall(t *testing.T) {
	b := NewEmptyBoard(4)
	b.SetWall(2, 2, Up)
	adv := Position{3, 3}

	if CheckValidStep(b, Position{2, 2}, Position{2, 2}, Up, adv, 3) {
		t.Error("placing a wall on an occupied interior edge should be rejected")
	}
	// Border edges count as occupied too.
	if CheckValidStep(b, Position{0, 1}, Position{0, 1}, Up, adv, 3) {
		t.Error("placing a wall on a border edge should be rejected")
	}
}

func TestCheckValidStepBlockedByWalls(t *testing.T) {
	b := NewEmptyBoard(3)
	// Seal row 0 off from row 1 completely.
	b.SetWall(0, 0, Down)
	b.SetWall(0, 1, Down)
	b.SetWall(0, 2, Down)
	adv := Position{2, 2}

	if CheckValidStep(b, Position{0, 0}, Position{1, 0}, Right, adv, 10) {
		t.Error("destination behind a sealed wall line should be unreachable")
	}
	// Movement within the sealed row still works.
	if !CheckValidStep(b, Position{0, 0}, Position{0, 2}, Left, adv, 10) {
		t.Error("destination inside the sealed row should be reachable")
	}
}

func TestCheckValidStepBlockedByOpponent(t *testing.T) {
	b := NewEmptyBoard(3)
	// Row 0 is a corridor: the only route from (0,0) to (0,2) runs through
	// (0,1) once the row is sealed from below.
	b.SetWall(0, 0, Down)
	b.SetWall(0, 1, Down)
	b.SetWall(0, 2, Down)

	if CheckValidStep(b, Position{0, 0}, Position{0, 2}, Left, Position{0, 1}, 5) {
		t.Error("path through the opponent's cell should be rejected")
	}
	// Destination equal to the opponent's cell is never reachable.
	if CheckValidStep(b, Position{0, 0}, Position{0, 1}, Left, Position{0, 1}, 5) {
		t.Error("moving onto the opponent should be rejected")
	}
}
