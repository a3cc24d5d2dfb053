// Package engine implements the wallrush game-state engine.
//
// A game is played on an N×N grid where every cell carries four wall slots,
// one per cardinal direction. Two players alternate moving within a fixed
// step budget and permanently placing one wall. The engine owns the board,
// validates untrusted moves via bounded reachability search, substitutes a
// randomized legal move when a move producer misbehaves, and detects the
// endgame by partitioning the grid with a union-find over open edges.
//
// All state is owned by a single World; nothing in this package is safe for
// concurrent use, and independent simulations must use independent Worlds.
package engine

import "fmt"

// Direction indexes a cell's four wall slots.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of wall slots per cell.
const NumDirections = 4

// deltas holds the (row, col) offset for each direction.
var deltas = [NumDirections][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Position is a (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

// Add returns the neighboring position one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{p.Row + deltas[d][0], p.Col + deltas[d][1]}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Bounds for randomly drawn board sizes. An explicit size may go as low as
// MinExplicitSize; random games stay in [MinBoardSize, MaxBoardSize).
const (
	MinBoardSize    = 6
	MaxBoardSize    = 12
	MinExplicitSize = 2
)

// MaxStep returns the per-turn move budget for an n×n board: ⌈(n+1)/2⌉.
func MaxStep(n int) int {
	return (n + 2) / 2
}

// Board is the mutable wall grid. Each cell holds a 4-bit record, bit d
// meaning "a wall exists on this cell's edge in direction d". Walls exist
// only in mirrored pairs: bit d at (r, c) implies bit d.Opposite() on the
// neighbor in direction d. The outer border is fully walled at construction
// and never changes; walls are only ever added, never removed.
type Board struct {
	n     int
	walls [][]uint8
}

// NewEmptyBoard returns an n×n board whose only walls are the border edges.
func NewEmptyBoard(n int) *Board {
	b := &Board{n: n, walls: make([][]uint8, n)}
	for r := range b.walls {
		b.walls[r] = make([]uint8, n)
	}
	for i := 0; i < n; i++ {
		b.walls[0][i] |= 1 << Up
		b.walls[n-1][i] |= 1 << Down
		b.walls[i][0] |= 1 << Left
		b.walls[i][n-1] |= 1 << Right
	}
	return b
}

// NewBoard returns a bordered n×n board seeded with n/2-1 random interior
// wall pairs. Each pair is mirrored through the board center so neither
// player's half is favored; candidates whose bit is already set are redrawn.
func NewBoard(n int, rng Rand) *Board {
	b := NewEmptyBoard(n)
	for i := 0; i < n/2-1; i++ {
		r, c := rng.Intn(n), rng.Intn(n)
		d := Direction(rng.Intn(NumDirections))
		for b.IsWall(r, c, d) {
			r, c = rng.Intn(n), rng.Intn(n)
			d = Direction(rng.Intn(NumDirections))
		}
		b.SetWall(r, c, d)
		b.SetWall(n-1-r, n-1-c, d.Opposite())
	}
	return b
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.n
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.n && p.Col >= 0 && p.Col < b.n
}

// IsWall reports whether the wall bit at (r, c) in direction d is set.
func (b *Board) IsWall(r, c int, d Direction) bool {
	return b.walls[r][c]&(1<<d) != 0
}

// SetWall sets the wall bit at (r, c) in direction d together with the
// mirrored bit on the neighbor in direction d. A candidate bit that is still
// clear always has an in-bounds neighbor (border-facing bits are set at
// construction), but the mirror write stays bounds-checked regardless so
// repeated calls on an existing wall remain safe no-ops.
func (b *Board) SetWall(r, c int, d Direction) {
	b.walls[r][c] |= 1 << d
	q := Position{r, c}.Add(d)
	if b.InBounds(q) {
		b.walls[q.Row][q.Col] |= 1 << d.Opposite()
	}
}

// Clone returns an independent deep copy. Move producers receive a clone
// every turn, so they can never reach the engine's live board.
func (b *Board) Clone() *Board {
	c := &Board{n: b.n, walls: make([][]uint8, b.n)}
	for r := range b.walls {
		c.walls[r] = make([]uint8, b.n)
		copy(c.walls[r], b.walls[r])
	}
	return c
}

// Walls returns a copy of the full wall grid for renderers: bit d of cell
// (r, c) is set iff a wall exists on that edge.
func (b *Board) Walls() [][]uint8 {
	return b.Clone().walls
}
