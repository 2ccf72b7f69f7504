package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process-level knobs for the simulation driver.
type Settings struct {
	ConfigDir string `env:"SLOTBATTLE_CONFIG_DIR" envDefault:"assets"`
	Out       string `env:"SLOTBATTLE_OUT" envDefault:"out.json"`
	Seed      int64  `env:"SLOTBATTLE_SEED" envDefault:"12345"`
	Runs      int    `env:"SLOTBATTLE_RUNS" envDefault:"1"`
	Workers   int    `env:"SLOTBATTLE_WORKERS" envDefault:"8"`
	MaxTicks  int    `env:"SLOTBATTLE_MAX_TICKS" envDefault:"200000"`
	LogLevel  string `env:"SLOTBATTLE_LOG_LEVEL" envDefault:"info"`
	Record    bool   `env:"SLOTBATTLE_RECORD" envDefault:"true"`
}

// ParseSettings loads Settings from the environment.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	s.Workers = ClampWorkers(s.Workers)
	return s, nil
}

// ClampWorkers keeps a batch pool at one worker or more.
func ClampWorkers(n int) int {
	return max(n, 1)
}
