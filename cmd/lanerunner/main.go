// lanerunner is a three-lane arcade runner for the terminal.
//
// Usage:
//
//	lanerunner play          - Play interactively
//	lanerunner sim           - Run headless autopilot games and print a summary
//	lanerunner keys          - Show the effective key bindings
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default from config: 60)
//	--seed <value>        - RNG seed for reproducible spawns (0 = time based)
//	--config <path>       - Config file (.yaml or .toml)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanerunner",
	Short: "Lane Runner - dodge obstacles and grab coins across three lanes",
	Long: `Lane Runner is a terminal arcade game. Your car drives up a three-lane
road while obstacles and coins scroll towards it. Switch lanes to dodge
obstacles; the road speeds up the longer you survive.

Available commands:
  play   - Play the game
  sim    - Let the autopilot play headless runs
  keys   - Show key bindings

Examples:
  lanerunner play
  lanerunner play --seed 42 --fps 30
  lanerunner sim --runs 10 --seed 7
  lanerunner keys --config ./configs/lanerunner.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads the config file and applies flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Driver.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Driver.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
