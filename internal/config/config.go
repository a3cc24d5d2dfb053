// Package config loads simulator settings from WALLRUSH_* environment
// variables, with an optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the simulator's runtime settings. Flags on the command line
// override these values.
type Config struct {
	BoardSize int    // Grid dimension N; 0 draws a random size per game.
	Games     int    // Number of games in the series.
	AgentA    string // Registry name of player 0's agent.
	AgentB    string // Registry name of player 1's agent.
	Seed      uint64 // Base seed; 0 derives one from the clock.
	LogLevel  string // logrus level name.
	Display   bool   // Render the board after every turn.
	Debug     bool   // Extra rendering diagnostics.
}

// Load reads the environment, after loading a .env file when one is present.
// Missing variables fall back to defaults; malformed values are errors.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Games:    1,
		AgentA:   "random",
		AgentB:   "random",
		LogLevel: "info",
	}

	var err error
	if cfg.BoardSize, err = intEnv("WALLRUSH_BOARD_SIZE", cfg.BoardSize); err != nil {
		return cfg, err
	}
	if cfg.Games, err = intEnv("WALLRUSH_GAMES", cfg.Games); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = uintEnv("WALLRUSH_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Display, err = boolEnv("WALLRUSH_DISPLAY", cfg.Display); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = boolEnv("WALLRUSH_DEBUG", cfg.Debug); err != nil {
		return cfg, err
	}
	cfg.AgentA = strEnv("WALLRUSH_AGENT_A", cfg.AgentA)
	cfg.AgentB = strEnv("WALLRUSH_AGENT_B", cfg.AgentB)
	cfg.LogLevel = strEnv("WALLRUSH_LOG_LEVEL", cfg.LogLevel)
	return cfg, nil
}

func strEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func uintEnv(key string, def uint64) (uint64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
