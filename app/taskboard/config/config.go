// Package config assembles the taskboard configuration from an optional yaml
// file and prefixed environment variables.
package config

import (
	"fmt"

	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/environment"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Seed controls the one-shot import run at startup.
type Seed struct {
	todosource.Options `yaml:",inline"`
	Disabled           bool `yaml:"disabled" env:"SEED_DISABLED" default:"false"`
}

// Taskboard is the overall configuration for the taskboard application.
type Taskboard struct {
	Server  web.ServerConfig   `yaml:"server"`
	Handler web.HandlerOptions `yaml:"handler"`
	Log     logger.Options     `yaml:"log"`
	Seed    Seed               `yaml:"seed"`
}

// Load reads {prefix}_CONFIG_FILE when set, then applies environment
// variables. Variables win over file values; tag defaults fill whatever is
// still empty.
func Load(prefix string) (Taskboard, error) {
	var cfg Taskboard

	if path := environment.GetPrefixEnvOrDefault(prefix, "CONFIG_FILE", ""); path != "" {
		if err := environment.LoadYAMLFile(path, &cfg); err != nil {
			return Taskboard{}, err
		}
	}

	sections := []struct {
		name string
		dst  any
	}{
		{"server", &cfg.Server},
		{"handler", &cfg.Handler},
		{"log", &cfg.Log},
		{"seed source", &cfg.Seed.Options},
		{"seed", &cfg.Seed},
	}
	for _, s := range sections {
		if err := environment.ParseEnvTags(prefix, s.dst); err != nil {
			return Taskboard{}, fmt.Errorf("parsing %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}
