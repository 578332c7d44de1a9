package config

import (
	_ "embed"
)

//go:embed defaults/lanerunner.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults file.
func Default() Config {
	return Config{
		Driver: DriverConfig{
			FPS:  60,
			Seed: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeysConfig{
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Start: []string{"enter", " ", "r"},
			Quit:  []string{"q", "esc", "ctrl+c"},
			Help:  []string{"?"},
		},
		Theme: ThemeConfig{
			Obstacle: GlyphConfig{Glyph: "▓", Color: "bright_red"},
			Coin:     GlyphConfig{Glyph: "●", Color: "bright_yellow"},
			Car:      GlyphConfig{Glyph: "█", Color: "bright_cyan"},
			Lane:     GlyphConfig{Glyph: "┆", Color: "gray"},
			HUD:      "white",
		},
	}
}
