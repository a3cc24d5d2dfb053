package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wallrush/wallrush/agent"
	"github.com/wallrush/wallrush/engine"
)

// ErrNotAutoplay is returned when a multi-game series names an agent that
// needs a human in the loop.
var ErrNotAutoplay = errors.New("sim: agent does not support unattended play")

// seedStride separates per-game seed streams; any odd constant with good bit
// dispersion works (this one is the 64-bit golden ratio).
const seedStride = 0x9e3779b97f4a7c15

// SeriesConfig configures a batch of independent games.
type SeriesConfig struct {
	Games     int
	BoardSize int

	// AgentA and AgentB are registry names; fresh agents are constructed
	// for every game.
	AgentA, AgentB string

	// Seed is the base seed. Game i derives its world and agent seeds from
	// it, so an entire series replays bit-exactly.
	Seed uint64

	Logger *logrus.Logger
	OnTurn func(*engine.World, engine.Result)
	Debug  bool
}

// SeriesResult aggregates the outcomes of a series.
type SeriesResult struct {
	Games        int
	WinsA, WinsB int
	Ties         int
	MeanMoveTime [2]time.Duration
}

// RunSeries plays cfg.Games matches sequentially, each with its own world
// and freshly constructed agents; no state is shared between games. Agents
// without autoplay capability are rejected for series longer than one game.
func RunSeries(cfg SeriesConfig) (SeriesResult, error) {
	var res SeriesResult
	if cfg.Games <= 0 {
		return res, fmt.Errorf("sim: series needs at least one game, got %d", cfg.Games)
	}

	var meanSum [2]time.Duration
	for i := 0; i < cfg.Games; i++ {
		base := cfg.Seed + uint64(i)*seedStride

		agentA, err := agent.New(cfg.AgentA, engine.NewXorShift(base+1))
		if err != nil {
			return res, err
		}
		agentB, err := agent.New(cfg.AgentB, engine.NewXorShift(base+2))
		if err != nil {
			return res, err
		}
		if cfg.Games > 1 && (!agentA.Autoplay() || !agentB.Autoplay()) {
			return res, fmt.Errorf("%w: %s vs %s over %d games",
				ErrNotAutoplay, cfg.AgentA, cfg.AgentB, cfg.Games)
		}

		match, err := NewMatch(MatchConfig{
			BoardSize: cfg.BoardSize,
			AgentA:    agentA,
			AgentB:    agentB,
			Rand:      engine.NewXorShift(base + 3),
			Logger:    cfg.Logger,
			OnTurn:    cfg.OnTurn,
			Debug:     cfg.Debug,
		})
		if err != nil {
			return res, err
		}

		out, err := match.Run()
		if err != nil {
			return res, err
		}

		res.Games++
		switch out.Winner {
		case 0:
			res.WinsA++
		case 1:
			res.WinsB++
		default:
			res.Ties++
		}
		meanSum[0] += out.MeanMoveTime[0]
		meanSum[1] += out.MeanMoveTime[1]
	}

	res.MeanMoveTime[0] = meanSum[0] / time.Duration(res.Games)
	res.MeanMoveTime[1] = meanSum[1] / time.Duration(res.Games)
	return res, nil
}
