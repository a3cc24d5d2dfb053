package agent

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wallrush/wallrush/engine"
)

func init() {
	Register("human", func(engine.Rand) Agent {
		return &Human{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	})
}

// Human reads moves from a terminal as "row col dir" lines, where dir is one
// of u, r, d, l. Entering "q" (or closing the input) aborts the whole game
// via engine.ErrAborted rather than falling back to a random move.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

func (a *Human) Name() string   { return "human" }
func (a *Human) Autoplay() bool { return false }

func (a *Human) Step(b *engine.Board, myPos, advPos engine.Position, maxStep int) (engine.Position, engine.Direction, error) {
	fmt.Fprintf(a.out, "you are at %v, opponent at %v, budget %d\n", myPos, advPos, maxStep)
	fmt.Fprint(a.out, "move (row col dir, q to quit): ")

	line, err := a.in.ReadString('\n')
	if err != nil {
		return engine.Position{}, 0, fmt.Errorf("input closed: %w", engine.ErrAborted)
	}
	return parseMove(line)
}

// parseMove turns a "row col dir" line into a move. "q" aborts.
func parseMove(line string) (engine.Position, engine.Direction, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit") {
		return engine.Position{}, 0, engine.ErrAborted
	}
	if len(fields) != 3 {
		return engine.Position{}, 0, fmt.Errorf("want \"row col dir\", got %q", strings.TrimSpace(line))
	}

	var pos engine.Position
	if _, err := fmt.Sscanf(fields[0]+" "+fields[1], "%d %d", &pos.Row, &pos.Col); err != nil {
		return engine.Position{}, 0, fmt.Errorf("bad coordinates %q %q: %w", fields[0], fields[1], err)
	}

	var dir engine.Direction
	switch fields[2] {
	case "u", "up":
		dir = engine.Up
	case "r", "right":
		dir = engine.Right
	case "d", "down":
		dir = engine.Down
	case "l", "left":
		dir = engine.Left
	default:
		return engine.Position{}, 0, fmt.Errorf("bad direction %q", fields[2])
	}
	return pos, dir, nil
}
