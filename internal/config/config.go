// Package config loads the lane runner settings from YAML or TOML files.
// Only presentation and pacing are configurable; gameplay rules are fixed.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Config is the complete lane runner configuration.
type Config struct {
	Driver DriverConfig `yaml:"driver" toml:"driver"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Keys   KeysConfig   `yaml:"keys" toml:"keys"`
	Theme  ThemeConfig  `yaml:"theme" toml:"theme"`
}

// DriverConfig controls frame pacing and randomness.
type DriverConfig struct {
	FPS  int   `yaml:"fps" toml:"fps"`
	Seed int64 `yaml:"seed" toml:"seed"` // 0 = seed from the current time
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"` // used by the interactive game; empty = default path
}

// KeysConfig lists the keys bound to each action, in bubbletea key names.
type KeysConfig struct {
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Start []string `yaml:"start" toml:"start"`
	Quit  []string `yaml:"quit" toml:"quit"`
	Help  []string `yaml:"help" toml:"help"`
}

// ThemeConfig defines how each element is drawn.
type ThemeConfig struct {
	Obstacle GlyphConfig `yaml:"obstacle" toml:"obstacle"`
	Coin     GlyphConfig `yaml:"coin" toml:"coin"`
	Car      GlyphConfig `yaml:"car" toml:"car"`
	Lane     GlyphConfig `yaml:"lane" toml:"lane"`
	HUD      string      `yaml:"hud" toml:"hud"` // color name
}

// GlyphConfig is a single character with a color name.
type GlyphConfig struct {
	Glyph string `yaml:"glyph" toml:"glyph"`
	Color string `yaml:"color" toml:"color"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Driver.FPS < core.MinFPS || c.Driver.FPS > core.MaxFPS {
		return fmt.Errorf("config: driver.fps %d out of range [%d, %d]", c.Driver.FPS, core.MinFPS, core.MaxFPS)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	keys := []struct {
		name string
		list []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"start", c.Keys.Start},
		{"quit", c.Keys.Quit},
		{"help", c.Keys.Help},
	}
	for _, k := range keys {
		if len(k.list) == 0 {
			return fmt.Errorf("config: keys.%s must list at least one key", k.name)
		}
	}

	if _, err := c.Theme.Build(); err != nil {
		return err
	}
	return nil
}

// Runtime returns the settings handed to the driver.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Driver.FPS
	rc.Seed = c.Driver.Seed
	return rc
}

// Build converts the theme to the renderer's form.
func (t ThemeConfig) Build() (runner.Theme, error) {
	var th runner.Theme
	var err error

	if th.Obstacle, th.ObstacleColor, err = t.Obstacle.parse("obstacle"); err != nil {
		return th, err
	}
	if th.Coin, th.CoinColor, err = t.Coin.parse("coin"); err != nil {
		return th, err
	}
	if th.Car, th.CarColor, err = t.Car.parse("car"); err != nil {
		return th, err
	}
	if th.LaneMark, th.LaneColor, err = t.Lane.parse("lane"); err != nil {
		return th, err
	}
	if th.HUDColor, err = parseColor("hud", t.HUD); err != nil {
		return th, err
	}
	return th, nil
}

func (g GlyphConfig) parse(name string) (rune, core.Color, error) {
	if utf8.RuneCountInString(g.Glyph) != 1 {
		return 0, 0, fmt.Errorf("config: theme.%s.glyph %q must be a single character", name, g.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(g.Glyph)
	c, err := parseColor(name+".color", g.Color)
	return r, c, err
}

func parseColor(field, name string) (core.Color, error) {
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("config: theme.%s: unknown color %q", field, name)
	}
	return c, nil
}
