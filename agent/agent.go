// Package agent provides move-producing collaborators for the wallrush
// engine, plus a registry mapping agent names to constructors so the
// simulator can select players by name.
package agent

import (
	"fmt"
	"sort"

	"github.com/wallrush/wallrush/engine"
)

// Agent is a move producer the simulator can run. The engine treats every
// Agent as untrusted and validates each returned move.
type Agent interface {
	engine.Mover

	// Name returns the agent's registry name.
	Name() string

	// Autoplay reports whether the agent can play unattended. Agents that
	// need a human in the loop return false and are rejected by batch
	// simulation.
	Autoplay() bool
}

// Constructor builds an agent around a private random source. Agents must
// never reach for shared randomness, so that simulations stay reproducible.
type Constructor func(rng engine.Rand) Agent

var registry = map[string]Constructor{}

// Register makes an agent constructor selectable under name. Registering the
// same name twice panics.
func Register(name string, ctor Constructor) {
	if ctor == nil {
		panic("agent: Register with nil constructor")
	}
	if _, dup := registry[name]; dup {
		panic("agent: Register called twice for " + name)
	}
	registry[name] = ctor
}

// New builds the named agent with the given random source.
func New(name string, rng engine.Rand) (Agent, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("agent %q is not registered (registered: %v)", name, Names())
	}
	return ctor(rng), nil
}

// Names returns all registered agent names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
