package engine

import (
	"errors"
	"fmt"
	"testing"
)

// moverFunc adapts a function to the Mover interface for tests.
type moverFunc func(b *Board, my, adv Position, maxStep int) (Position, Direction, error)

func (f moverFunc) Step(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
	return f(b, my, adv, maxStep)
}

// randomMover plays fallback-quality moves from its own generator.
func randomMover(rng Rand) moverFunc {
	return func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
		pos, dir := RandomWalk(b, my, adv, maxStep, rng)
		return pos, dir, nil
	}
}

// stayMover stays in place and walls the first free direction.
var stayMover moverFunc = func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
	for d := Direction(0); d < NumDirections; d++ {
		if !b.IsWall(my.Row, my.Col, d) {
			return my, d, nil
		}
	}
	return my, Up, fmt.Errorf("no free wall direction at %v", my)
}

func newTestWorld(t *testing.T, size int, seed uint64, a, b Mover) *World {
	t.Helper()
	w, err := NewWorld(Options{BoardSize: size, MoverA: a, MoverB: b, Rand: NewXorShift(seed)})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNewWorldInitialState(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		w := newTestWorld(t, 6, seed, stayMover, stayMover)

		posA, posB := w.Positions()
		if posA == posB {
			t.Fatalf("seed %d: players start on the same cell %v", seed, posA)
		}
		if want := (Position{5 - posA.Row, 5 - posA.Col}); posB != want {
			t.Errorf("seed %d: posB = %v, want point mirror %v", seed, posB, want)
		}
		if w.Latest().Ended {
			t.Errorf("seed %d: world starts in a terminal state", seed)
		}
		if w.MaxStep() != 4 {
			t.Errorf("seed %d: MaxStep = %d, want 4", seed, w.MaxStep())
		}
		if w.Turn() != 0 {
			t.Errorf("seed %d: first turn = %d, want 0", seed, w.Turn())
		}
	}
}

func TestNewWorldRandomSize(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		w := newTestWorld(t, 0, seed, stayMover, stayMover)
		if n := w.Size(); n < MinBoardSize || n >= MaxBoardSize {
			t.Errorf("seed %d: random size %d outside [%d, %d)", seed, n, MinBoardSize, MaxBoardSize)
		}
	}
}

func TestNewWorldValidation(t *testing.T) {
	if _, err := NewWorld(Options{BoardSize: 6, MoverA: stayMover}); !errors.Is(err, ErrMissingMover) {
		t.Errorf("nil mover: err = %v, want ErrMissingMover", err)
	}
	if _, err := NewWorld(Options{BoardSize: 1, MoverA: stayMover, MoverB: stayMover, Rand: NewXorShift(1)}); !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("size 1: err = %v, want ErrBoardTooSmall", err)
	}
}

func TestStepAppliesValidMove(t *testing.T) {
	w := newTestWorld(t, 6, 3, stayMover, stayMover)
	posA, _ := w.Positions()

	res, err := w.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	gotA, gotB := w.Positions()
	if gotA != posA {
		t.Errorf("stay-in-place move changed position to %v", gotA)
	}
	if w.Turn() != 1 {
		t.Errorf("turn = %d after one step, want 1", w.Turn())
	}
	if w.Turns() != 1 {
		t.Errorf("Turns() = %d, want 1", w.Turns())
	}
	if got := len(w.MoveTimes(0)); got != 1 {
		t.Errorf("recorded %d move times for player 0, want 1", got)
	}
	if want := CheckEndgame(w.Snapshot(), gotA, gotB); res != want {
		t.Errorf("cached result %+v differs from recomputed %+v", res, want)
	}
}

func TestStepValidMovePlacesWall(t *testing.T) {
	var placed Position
	var placedDir Direction
	mover := moverFunc(func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
		pos, dir, err := stayMover(b, my, adv, maxStep)
		placed, placedDir = pos, dir
		return pos, dir, err
	})
	w := newTestWorld(t, 6, 3, mover, stayMover)

	if _, err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !w.Snapshot().IsWall(placed.Row, placed.Col, placedDir) {
		t.Errorf("wall not placed at (%v, %v)", placed, placedDir)
	}
}

func TestStepFallsBackOnMalformedMoves(t *testing.T) {
	cases := map[string]moverFunc{
		"out of bounds": func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
			return Position{-1, -1}, Up, nil
		},
		"bad direction": func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
			return my, Direction(9), nil
		},
		"unreachable": func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
			return adv, Up, nil // the opponent's cell is never reachable
		},
		"error return": func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
			return Position{}, Up, errors.New("collaborator exploded")
		},
		"panic": func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
			panic("collaborator lost its mind")
		},
	}

	for name, mover := range cases {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, 6, 11, mover, stayMover)
			_, advBefore := w.Positions()
			bitsBefore := countWallBits(w.Snapshot())

			_, err := w.Step()
			if err != nil {
				t.Fatalf("Step returned %v; recoverable failures must not surface", err)
			}

			posA, _ := w.Positions()
			if !w.Snapshot().InBounds(posA) {
				t.Errorf("fallback destination %v out of bounds", posA)
			}
			if posA == advBefore {
				t.Errorf("fallback landed on the opponent at %v", posA)
			}
			if w.Turn() != 1 {
				t.Errorf("turn = %d, want 1 (turn must advance)", w.Turn())
			}
			if got := countWallBits(w.Snapshot()); got != bitsBefore+2 {
				t.Errorf("wall bits %d -> %d, want exactly one mirrored pair added", bitsBefore, got)
			}
		})
	}
}

func TestStepAbortPropagates(t *testing.T) {
	abort := moverFunc(func(b *Board, my, adv Position, maxStep int) (Position, Direction, error) {
		return Position{}, Up, fmt.Errorf("user hit ctrl-c: %w", ErrAborted)
	})
	w := newTestWorld(t, 6, 7, abort, stayMover)
	posA, posB := w.Positions()

	_, err := w.Step()
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Step err = %v, want ErrAborted", err)
	}
	if w.Turn() != 0 || w.Turns() != 0 {
		t.Error("aborted step must not advance the turn")
	}
	if a, b := w.Positions(); a != posA || b != posB {
		t.Error("aborted step must not move players")
	}
}

func TestGameAlwaysTerminates(t *testing.T) {
	w := newTestWorld(t, 6, 42, randomMover(NewXorShift(1001)), randomMover(NewXorShift(2002)))

	var res Result
	var err error
	for i := 0; i < 500; i++ {
		res, err = w.Step()
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if res.Ended {
			break
		}
	}
	if !res.Ended {
		t.Fatal("game did not end within 500 turns")
	}
	if res.ScoreA <= 0 || res.ScoreB <= 0 {
		t.Errorf("terminal scores = %d/%d, want both positive", res.ScoreA, res.ScoreB)
	}
	if win := res.Winner(); win < -1 || win > 1 {
		t.Errorf("Winner() = %d, want -1, 0 or 1", win)
	}
}

func TestDeterministicReplay(t *testing.T) {
	play := func() (Result, int, Position, Position) {
		w := newTestWorld(t, 7, 99, randomMover(NewXorShift(5)), randomMover(NewXorShift(6)))
		for {
			res, err := w.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if res.Ended {
				a, b := w.Positions()
				return res, w.Turns(), a, b
			}
		}
	}

	res1, turns1, a1, b1 := play()
	res2, turns2, a2, b2 := play()

	if res1 != res2 || turns1 != turns2 || a1 != a2 || b1 != b2 {
		t.Errorf("replay diverged: (%+v, %d, %v, %v) vs (%+v, %d, %v, %v)",
			res1, turns1, a1, b1, res2, turns2, a2, b2)
	}
}

func TestOpeningMoveScenario(t *testing.T) {
	// 4×4 board with no interior walls, players at opposite corners.
	b := NewEmptyBoard(4)
	posA := Position{0, 0}
	posB := Position{3, 3}
	maxStep := MaxStep(4)

	if maxStep != 3 {
		t.Fatalf("MaxStep(4) = %d, want 3", maxStep)
	}
	if !CheckValidStep(b, posA, Position{0, 1}, Right, posB, maxStep) {
		t.Fatal("opening move to (0,1) walling right should be valid")
	}

	b.SetWall(0, 1, Right)
	res := CheckEndgame(b, Position{0, 1}, posB)

	// One interior edge is blocked, but every cell stays reachable around
	// it, so the game continues with a single 16-cell partition.
	if res.Ended {
		t.Error("board should remain fully connected after one wall")
	}
	if res.ScoreA != 16 || res.ScoreB != 16 {
		t.Errorf("scores = %d/%d, want 16/16", res.ScoreA, res.ScoreB)
	}
}
