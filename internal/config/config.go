// Package config holds the settings shared by the apollo commands. Values
// come from DefaultConfig, then an optional JSON file, then command-line
// flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rybergy/apollo/internal/othello"
)

type Config struct {
	Log         LogConfig    `json:"log"`
	Server      ServerConfig `json:"server"`
	Play        PlayConfig   `json:"play"`
	Winrate     BenchConfig  `json:"winrate"`
	Performance BenchConfig  `json:"performance"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "console" or "json"
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

// PlayConfig is the engine a human plays against.
type PlayConfig struct {
	Algorithm string       `json:"algorithm"`
	Heuristic string       `json:"heuristic"`
	Depth     int          `json:"depth"`
	HumanSide othello.Disc `json:"human_side"`
}

type BenchConfig struct {
	Trials   int `json:"trials"`
	Lower    int `json:"lower"`
	Upper    int `json:"upper"`
	MaxDepth int `json:"max_depth,omitempty"`
	Workers  int `json:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "console"},
		Server: ServerConfig{Addr: ":2888"},
		Play: PlayConfig{
			Algorithm: "ab-order",
			Heuristic: "weight-mobility",
			Depth:     4,
			HumanSide: othello.Black,
		},
		Winrate:     BenchConfig{Trials: 100, Lower: 5, Upper: 40, Workers: 1},
		Performance: BenchConfig{Trials: 50, Lower: 5, Upper: 40, MaxDepth: 7, Workers: 1},
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file
// keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Play.HumanSide == othello.Empty {
		return cfg, fmt.Errorf("parse config %s: human_side must be black or white", path)
	}
	return cfg, nil
}
