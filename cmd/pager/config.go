package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/pager/controller"
)

// envConfig is the environment-backed configuration. Flags override the
// environment; the environment overrides the built-in defaults.
type envConfig struct {
	PageSize    int           `env:"PAGER_PAGE_SIZE"    envDefault:"10"`
	IdleTimeout time.Duration `env:"PAGER_IDLE_TIMEOUT" envDefault:"3m"`
	JumpTimeout time.Duration `env:"PAGER_JUMP_TIMEOUT" envDefault:"30s"`
	Width       int           `env:"PAGER_WIDTH"        envDefault:"80"`
	Owner       string        `env:"PAGER_OWNER"        envDefault:"local"`
}

// resolveConfig parses the environment and applies flag overrides. Zero
// flag values keep the environment value.
func resolveConfig(pageSize int, idle, jump time.Duration, width int, owner string) (envConfig, controller.Config, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, controller.Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if pageSize > 0 {
		cfg.PageSize = pageSize
	}
	if idle > 0 {
		cfg.IdleTimeout = idle
	}
	if jump > 0 {
		cfg.JumpTimeout = jump
	}
	if width > 0 {
		cfg.Width = width
	}
	if owner != "" {
		cfg.Owner = owner
	}

	cc := controller.Config{
		PageSize:    cfg.PageSize,
		IdleTimeout: cfg.IdleTimeout,
		JumpTimeout: cfg.JumpTimeout,
	}
	if err := cc.Validate(); err != nil {
		return envConfig{}, controller.Config{}, err
	}
	return cfg, cc, nil
}
