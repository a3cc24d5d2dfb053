package agent

import "github.com/wallrush/wallrush/engine"

func init() {
	Register("random", func(rng engine.Rand) Agent {
		return &Random{rng: rng}
	})
}

// Random plays a uniformly random legal move each turn using the engine's
// fallback walk, which makes it the baseline opponent for every other agent.
type Random struct {
	rng engine.Rand
}

func (a *Random) Name() string   { return "random" }
func (a *Random) Autoplay() bool { return true }

func (a *Random) Step(b *engine.Board, myPos, advPos engine.Position, maxStep int) (engine.Position, engine.Direction, error) {
	pos, dir := engine.RandomWalk(b, myPos, advPos, maxStep, a.rng)
	return pos, dir, nil
}
