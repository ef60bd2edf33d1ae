package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the demo command configuration.
type Config struct {
	Title       string `env:"INSPECTOR_DEMO_TITLE"   envDefault:"ECS Inspector"`
	Width       int    `env:"INSPECTOR_DEMO_WIDTH"   envDefault:"1280"`
	Height      int    `env:"INSPECTOR_DEMO_HEIGHT"  envDefault:"720"`
	Sprites     int    `env:"INSPECTOR_DEMO_SPRITES" envDefault:"40"`
	Seed        int64  `env:"INSPECTOR_DEMO_SEED"    envDefault:"1"`
	PrefabDir   string `env:"INSPECTOR_DEMO_PREFAB_DIR" envDefault:"prefabs"`
	Profile     string `env:"INSPECTOR_DEMO_PROFILE"`
	ProfilePath string `env:"INSPECTOR_DEMO_PROFILE_PATH" envDefault:"."`
	Verbose     bool   `env:"INSPECTOR_DEMO_VERBOSE"`
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.Sprites, "sprites", cfg.Sprites, "number of sprites to spawn")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the world")
	fs.StringVar(&cfg.PrefabDir, "prefabs", cfg.PrefabDir, "directory listed by the load dropdown")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile to record: cpu, mem or allocs")
	fs.StringVar(&cfg.ProfilePath, "profile-path", cfg.ProfilePath, "directory profiles are written to")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log inspector debug output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size must be positive: %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
