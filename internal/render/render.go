// Package render draws a game board as ASCII for terminal display. The
// engine never depends on this package; it consumes only the engine's
// read-only accessors.
package render

import (
	"fmt"
	"strings"

	"github.com/wallrush/wallrush/engine"
)

// World draws the live state of w: the wall grid, both player markers, and
// a status line. With the world's debug flag set, the status line includes
// the latest partition scores.
func World(w *engine.World) string {
	posA, posB := w.Positions()
	out := Draw(w.Walls(), posA, posB)

	status := fmt.Sprintf("turn %d, player %d to move", w.Turns(), w.Turn())
	if w.Debug() {
		res := w.Latest()
		status += fmt.Sprintf(" [ended=%v scores=%d/%d]", res.Ended, res.ScoreA, res.ScoreB)
	}
	return out + status + "\n"
}

// Draw renders a wall grid with player markers A and B. walls uses the
// engine's bit encoding: bit d of cell (r, c) set means a wall in direction
// d.
func Draw(walls [][]uint8, posA, posB engine.Position) string {
	n := len(walls)
	hasWall := func(r, c int, d engine.Direction) bool {
		return walls[r][c]&(1<<d) != 0
	}

	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sb.WriteByte('+')
			if hasWall(r, c, engine.Up) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")

		for c := 0; c < n; c++ {
			if hasWall(r, c, engine.Left) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			switch (engine.Position{Row: r, Col: c}) {
			case posA:
				sb.WriteString(" A ")
			case posB:
				sb.WriteString(" B ")
			default:
				sb.WriteString("   ")
			}
		}
		if hasWall(r, n-1, engine.Right) {
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	for c := 0; c < n; c++ {
		sb.WriteByte('+')
		if hasWall(n-1, c, engine.Down) {
			sb.WriteString("---")
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("+\n")
	return sb.String()
}
