// Command wallrush simulates territory-blocking games between registered
// agents and reports aggregate results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wallrush/wallrush/agent"
	"github.com/wallrush/wallrush/engine"
	"github.com/wallrush/wallrush/internal/config"
	"github.com/wallrush/wallrush/internal/render"
	"github.com/wallrush/wallrush/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	size := flag.Int("size", cfg.BoardSize, "board size; 0 picks a random size per game")
	games := flag.Int("games", cfg.Games, "number of games to play")
	agentA := flag.String("a", cfg.AgentA, "agent for player A ("+strings.Join(agent.Names(), ", ")+")")
	agentB := flag.String("b", cfg.AgentB, "agent for player B")
	seed := flag.Uint64("seed", cfg.Seed, "base seed; 0 derives one from the clock")
	display := flag.Bool("display", cfg.Display, "render the board after every turn")
	debug := flag.Bool("debug", cfg.Debug, "extra rendering diagnostics")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("bad log level %q: %v", *logLevel, err)
	}
	logger.SetLevel(level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
		logger.WithField("seed", *seed).Info("no seed given, derived one from the clock")
	}

	scfg := sim.SeriesConfig{
		Games:     *games,
		BoardSize: *size,
		AgentA:    *agentA,
		AgentB:    *agentB,
		Seed:      *seed,
		Logger:    logger,
		Debug:     *debug,
	}
	if *display {
		scfg.OnTurn = func(w *engine.World, _ engine.Result) {
			fmt.Print(render.World(w))
		}
	}

	res, err := sim.RunSeries(scfg)
	if errors.Is(err, engine.ErrAborted) {
		logger.Warn("simulation aborted by player")
		os.Exit(130)
	}
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Printf("played %d game(s): %s %d wins, %s %d wins, %d ties\n",
		res.Games, *agentA, res.WinsA, *agentB, res.WinsB, res.Ties)
	fmt.Printf("mean move time: %s %v, %s %v\n",
		*agentA, res.MeanMoveTime[0], *agentB, res.MeanMoveTime[1])
}
