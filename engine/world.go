package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrAborted signals that a move producer asked to stop the whole game, such
// as a human player interrupting their turn. It is the only mover failure
// World.Step does not replace with a fallback move.
var ErrAborted = errors.New("engine: game aborted")

// ErrMissingMover is returned by NewWorld when either mover is nil.
var ErrMissingMover = errors.New("engine: both movers are required")

// ErrBoardTooSmall is returned by NewWorld for sizes below MinExplicitSize.
var ErrBoardTooSmall = errors.New("engine: board size below minimum")

// Mover produces one candidate move per turn. Implementations are untrusted:
// the engine validates every result and recovers from errors and panics, so
// a Mover may be arbitrarily buggy without corrupting a game.
type Mover interface {
	// Step receives a private snapshot of the board (mutations are
	// discarded), the mover's own position, the opponent's position, and the
	// per-turn step budget. It returns the destination cell and the wall
	// direction to place there.
	Step(board *Board, myPos, advPos Position, maxStep int) (Position, Direction, error)
}

// Options configure a new World.
type Options struct {
	// BoardSize is the grid dimension N. Zero draws a random size in
	// [MinBoardSize, MaxBoardSize).
	BoardSize int

	// MoverA and MoverB produce moves for players 0 and 1.
	MoverA, MoverB Mover

	// Rand drives board seeding, initial positions and fallback moves. Nil
	// defaults to a clock-seeded XorShift.
	Rand Rand

	// Debug is exposed to renderers; the engine itself ignores it.
	Debug bool
}

// World owns the complete state of one game: the board, both player
// positions, the turn flag and the latest endgame result. It is strictly
// sequential and exclusively owned; batch simulations must create one World
// per game.
type World struct {
	board   *Board
	movers  [2]Mover
	pos     [2]Position
	turn    int
	maxStep int
	rng     Rand
	latest  Result
	times   [2][]time.Duration
	turns   int
	debug   bool
}

// NewWorld builds a seeded board and point-symmetric random start positions.
// Positions are re-rolled — the board's walls stay fixed — until the two
// players are distinct and CheckEndgame reports the game not yet ended.
func NewWorld(opts Options) (*World, error) {
	if opts.MoverA == nil || opts.MoverB == nil {
		return nil, ErrMissingMover
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewXorShift(uint64(time.Now().UnixNano()))
	}
	n := opts.BoardSize
	if n == 0 {
		n = MinBoardSize + rng.Intn(MaxBoardSize-MinBoardSize)
	}
	if n < MinExplicitSize {
		return nil, fmt.Errorf("%w: %d", ErrBoardTooSmall, n)
	}

	w := &World{
		board:   NewBoard(n, rng),
		movers:  [2]Mover{opts.MoverA, opts.MoverB},
		maxStep: MaxStep(n),
		rng:     rng,
		debug:   opts.Debug,
	}
	for {
		w.pos[0] = Position{rng.Intn(n), rng.Intn(n)}
		w.pos[1] = Position{n - 1 - w.pos[0].Row, n - 1 - w.pos[0].Col}
		if w.pos[0] == w.pos[1] {
			continue
		}
		if res := CheckEndgame(w.board, w.pos[0], w.pos[1]); !res.Ended {
			w.latest = res
			break
		}
	}
	return w, nil
}

// Step runs one full turn: request a move from the active mover, validate
// it, replace it with a fallback RandomWalk on any failure, apply the move
// and wall, flip the turn, and recompute the endgame status.
//
// The returned error is non-nil only when the mover aborted the game; every
// recoverable failure — malformed move, error return, panic — is absorbed
// into the fallback path and never surfaces to the caller.
func (w *World) Step() (Result, error) {
	active := w.turn
	myPos, advPos := w.pos[active], w.pos[1-active]

	dest, dir, err := w.requestMove(active, myPos, advPos)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return w.latest, err
		}
		dest, dir = RandomWalk(w.board, myPos, advPos, w.maxStep, w.rng)
	}

	w.pos[active] = dest
	w.board.SetWall(dest.Row, dest.Col, dir)
	w.turn = 1 - active
	w.turns++
	w.latest = CheckEndgame(w.board, w.pos[0], w.pos[1])
	return w.latest, nil
}

// requestMove calls the active mover on a board snapshot, records the
// elapsed wall-clock time, and validates the returned move. Panics inside
// the mover are converted to ordinary errors so one bad turn never kills the
// game.
func (w *World) requestMove(active int, myPos, advPos Position) (dest Position, dir Direction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mover panic: %v", r)
		}
	}()

	start := time.Now()
	dest, dir, err = w.movers[active].Step(w.board.Clone(), myPos, advPos, w.maxStep)
	w.times[active] = append(w.times[active], time.Since(start))

	if err != nil {
		if errors.Is(err, ErrAborted) {
			return dest, dir, err
		}
		return dest, dir, fmt.Errorf("mover failed: %w", err)
	}
	if !w.board.InBounds(dest) {
		return dest, dir, fmt.Errorf("destination %v is out of bounds", dest)
	}
	if !dir.Valid() {
		return dest, dir, fmt.Errorf("wall direction %d is out of range", dir)
	}
	if !CheckValidStep(w.board, myPos, dest, dir, advPos, w.maxStep) {
		return dest, dir, fmt.Errorf("invalid step from %v to %v placing wall %v", myPos, dest, dir)
	}
	return dest, dir, nil
}

// Size returns the board dimension N.
func (w *World) Size() int { return w.board.Size() }

// Walls returns a copy of the full wall grid; see Board.Walls.
func (w *World) Walls() [][]uint8 { return w.board.Walls() }

// Snapshot returns an independent copy of the live board.
func (w *World) Snapshot() *Board { return w.board.Clone() }

// Positions returns the current positions of players 0 and 1.
func (w *World) Positions() (a, b Position) { return w.pos[0], w.pos[1] }

// Turn returns the index (0 or 1) of the player to move next.
func (w *World) Turn() int { return w.turn }

// Turns returns the number of completed turns.
func (w *World) Turns() int { return w.turns }

// MaxStep returns the per-turn move budget.
func (w *World) MaxStep() int { return w.maxStep }

// Latest returns the endgame result cached after the most recent turn.
func (w *World) Latest() Result { return w.latest }

// Debug reports whether the world was created with debug rendering enabled.
func (w *World) Debug() bool { return w.debug }

// MoveTimes returns a copy of the recorded per-turn move durations for the
// given player. The engine records but never enforces these.
func (w *World) MoveTimes(player int) []time.Duration {
	out := make([]time.Duration, len(w.times[player]))
	copy(out, w.times[player])
	return out
}
