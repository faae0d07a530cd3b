// Package config loads the optional YAML settings file shared by the
// executables. Every field has a working default; a missing file means
// defaults everywhere.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Render struct {
		CellSize     int  `yaml:"cellSize"`
		FrameDelayMs int  `yaml:"frameDelayMs"`
		StepLabel    bool `yaml:"stepLabel"`
	} `yaml:"render"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Discord struct {
		Enabled       bool     `yaml:"enabled"`
		Token         string   `yaml:"token"`
		CommandPrefix string   `yaml:"commandPrefix"`
		BotAdmins     []string `yaml:"botAdmins"`
	} `yaml:"discord"`
	Viewer struct {
		TicksPerStep int `yaml:"ticksPerStep"`
	} `yaml:"viewer"`
}

// Default returns the built-in settings: classic 12 px / 300 ms rendering,
// local server on :8077, Discord off.
func Default() Config {
	var c Config
	c.Render.CellSize = 12
	c.Render.FrameDelayMs = 300
	c.Server.Addr = ":8077"
	c.Discord.CommandPrefix = "!path"
	c.Viewer.TicksPerStep = 18
	return c
}

// Load overlays the YAML file at path onto the defaults. An empty path means
// defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("render.cellSize must be positive, got %d", c.Render.CellSize)
	}
	if c.Render.FrameDelayMs <= 0 {
		return fmt.Errorf("render.frameDelayMs must be positive, got %d", c.Render.FrameDelayMs)
	}
	if c.Viewer.TicksPerStep <= 0 {
		return fmt.Errorf("viewer.ticksPerStep must be positive, got %d", c.Viewer.TicksPerStep)
	}
	if c.Discord.Enabled && c.Discord.Token == "" {
		return fmt.Errorf("discord.token is required when discord.enabled is true")
	}
	return nil
}
