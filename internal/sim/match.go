// Package sim orchestrates complete games between registered agents and
// aggregates results across batches. The engine stays pure; everything
// observable — logging, IDs, statistics — lives here.
package sim

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wallrush/wallrush/agent"
	"github.com/wallrush/wallrush/engine"
)

// Outcome summarizes one finished match.
type Outcome struct {
	Winner       int // 0, 1, or -1 for a tie
	ScoreA       int
	ScoreB       int
	Turns        int
	MeanMoveTime [2]time.Duration
}

// MatchConfig configures a single game.
type MatchConfig struct {
	// BoardSize is the grid dimension; zero picks a random size.
	BoardSize int

	// AgentA and AgentB play as players 0 and 1.
	AgentA, AgentB agent.Agent

	// Rand drives the engine. Nil lets the engine seed itself.
	Rand engine.Rand

	// Logger receives per-turn and outcome logs. Nil uses the standard
	// logrus logger.
	Logger *logrus.Logger

	// OnTurn, if set, is invoked after every completed turn, e.g. to render
	// the board. The match never depends on it succeeding.
	OnTurn func(*engine.World, engine.Result)

	// Debug is passed through to the engine for renderers.
	Debug bool
}

// Match runs one game between two agents to completion.
type Match struct {
	ID     uuid.UUID
	world  *engine.World
	agents [2]agent.Agent
	onTurn func(*engine.World, engine.Result)
	log    *logrus.Entry
}

// NewMatch builds the world for one game. The agents are installed as the
// engine's movers, so every move they produce goes through the engine's
// validation and fallback protocol.
func NewMatch(cfg MatchConfig) (*Match, error) {
	w, err := engine.NewWorld(engine.Options{
		BoardSize: cfg.BoardSize,
		MoverA:    cfg.AgentA,
		MoverB:    cfg.AgentB,
		Rand:      cfg.Rand,
		Debug:     cfg.Debug,
	})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()

	return &Match{
		ID:     id,
		world:  w,
		agents: [2]agent.Agent{cfg.AgentA, cfg.AgentB},
		onTurn: cfg.OnTurn,
		log: logger.WithFields(logrus.Fields{
			"match":   id,
			"agent_a": cfg.AgentA.Name(),
			"agent_b": cfg.AgentB.Name(),
			"board":   w.Size(),
		}),
	}, nil
}

// World exposes the underlying world read-only state, e.g. for rendering.
func (m *Match) World() *engine.World { return m.world }

// Run plays the match until the players' territories disconnect. The only
// error it returns is engine.ErrAborted; every agent misstep is absorbed by
// the engine's fallback path.
func (m *Match) Run() (Outcome, error) {
	for {
		mover := m.world.Turn()
		res, err := m.world.Step()
		if err != nil {
			m.log.WithError(err).Warn("match aborted")
			return Outcome{}, err
		}

		posA, posB := m.world.Positions()
		m.log.WithFields(logrus.Fields{
			"turn":  m.world.Turns(),
			"mover": mover,
			"pos_a": posA.String(),
			"pos_b": posB.String(),
		}).Debug("turn complete")

		if m.onTurn != nil {
			m.onTurn(m.world, res)
		}

		if res.Ended {
			out := Outcome{
				Winner: res.Winner(),
				ScoreA: res.ScoreA,
				ScoreB: res.ScoreB,
				Turns:  m.world.Turns(),
			}
			out.MeanMoveTime[0] = meanDuration(m.world.MoveTimes(0))
			out.MeanMoveTime[1] = meanDuration(m.world.MoveTimes(1))

			m.log.WithFields(logrus.Fields{
				"winner":  out.Winner,
				"score_a": out.ScoreA,
				"score_b": out.ScoreB,
				"turns":   out.Turns,
			}).Info("match finished")
			return out, nil
		}
	}
}

func meanDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}
