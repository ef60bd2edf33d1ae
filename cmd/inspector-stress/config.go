package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the stress command configuration.
type Config struct {
	Duration       time.Duration `env:"INSPECTOR_STRESS_DURATION" envDefault:"10s"`
	Entities       int           `env:"INSPECTOR_STRESS_ENTITIES" envDefault:"10000"`
	Seed           int64         `env:"INSPECTOR_STRESS_SEED"     envDefault:"1"`
	Edit           bool          `env:"INSPECTOR_STRESS_EDIT"     envDefault:"true"`
	GCPauseMetrics bool          `env:"INSPECTOR_STRESS_GC_PAUSE_METRICS"`
	Profile        string        `env:"INSPECTOR_STRESS_PROFILE"`
	ProfilePath    string        `env:"INSPECTOR_STRESS_PROFILE_PATH" envDefault:"."`
	Verbose        bool          `env:"INSPECTOR_STRESS_VERBOSE"`
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "total duration of the run")
	fs.IntVar(&cfg.Entities, "entities", cfg.Entities, "number of sprites to spawn")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the world and the scripted edits")
	fs.BoolVar(&cfg.Edit, "edit", cfg.Edit, "select an entity and edit its transform every frame")
	fs.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", cfg.GCPauseMetrics, "include GC pause metrics in the report")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile to record: cpu, mem or allocs")
	fs.StringVar(&cfg.ProfilePath, "profile-path", cfg.ProfilePath, "directory profiles are written to")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log inspector debug output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Entities < 0 {
		return Config{}, fmt.Errorf("entities must not be negative: %d", cfg.Entities)
	}
	return cfg, nil
}
