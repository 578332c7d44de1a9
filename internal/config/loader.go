package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Directory under the user's home holding config and logs.
const homeDirName = ".lanerunner"

// Load loads the configuration.
// Search order: customPath -> ~/.lanerunner/config.{yaml,toml} -> ./configs/lanerunner.{yaml,toml} -> embedded default
//
// Values missing from a file keep their defaults. An explicit customPath
// must exist and parse; the other locations are skipped when unreadable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("lanerunner.yaml", defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the defaults, picking the format from the
// file extension.
func decode(path string, data []byte) (Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if dir := HomeDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "lanerunner.yaml"),
		filepath.Join("configs", "lanerunner.toml"),
	)
}

// HomeDir returns ~/.lanerunner, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, homeDirName)
}

// LogPath returns the log file used by the interactive game.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if dir := HomeDir(); dir != "" {
		return filepath.Join(dir, "lanerunner.log")
	}
	return filepath.Join(os.TempDir(), "lanerunner.log")
}
