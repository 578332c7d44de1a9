package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the interactive game in the terminal.

Default controls:
  Left/A/H     - Move one lane left
  Right/D/L    - Move one lane right
  Enter/Space  - Start, or restart after a crash
  ?            - Toggle help
  Ctrl+S       - Save a text screenshot
  Q/Esc        - Quit

Logs are written to ~/.lanerunner/lanerunner.log unless log.file is set.

Examples:
  lanerunner play
  lanerunner play --seed 42
  lanerunner play --config ./my-keys.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := newLogger(f, cfg.Log.Level)
	if err != nil {
		return err
	}

	rc := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if err := tui.Run(cfg, rc, logger); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
