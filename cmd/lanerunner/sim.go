package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/engine"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

var (
	flagRuns      int
	flagMaxFrames int
	flagLookahead float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games with the autopilot",
	Long: `Play runs back to back without a terminal UI. The autopilot steers the
car and every frame advances by exactly 1/fps seconds, so the same seed and
frame rate always give the same results. "Best" is the best score of this
simulation so far, including runs stopped at the frame limit.

Examples:
  lanerunner sim
  lanerunner sim --runs 20 --seed 7
  lanerunner sim --max-frames 3600 --lookahead 0.6`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs to play")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 60*60*10, "Frame limit per run (0 = no limit)")
	simCmd.Flags().Float64Var(&flagLookahead, "lookahead", runner.NewAutopilot().Lookahead, "Autopilot lookahead in seconds")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("sim: --runs must be at least 1")
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	rc := cfg.Runtime()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	pilot := runner.NewAutopilot()
	pilot.Lookahead = flagLookahead

	h := engine.Headless{FPS: rc.TickRate, MaxFrames: flagMaxFrames, Logger: logger}
	logger.Info("simulation started", "seed", rc.Seed, "fps", rc.TickRate, "runs", flagRuns)

	results, err := h.Play(cmd.Context(), runner.New(rc.Seed), pilot, flagRuns)
	printResults(results, rc.Seed)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}

func printResults(results []engine.RunResult, seed int64) {
	fmt.Printf("Seed %d\n\n", seed)
	fmt.Printf("  %4s  %8s  %8s  %8s  %6s  %6s  %9s  %s\n",
		"Run", "Frames", "Score", "Best", "Coins", "Speed", "Time", "End")
	fmt.Printf("  %4s  %8s  %8s  %8s  %6s  %6s  %9s  %s\n",
		"---", "------", "-----", "----", "-----", "-----", "----", "---")

	for _, r := range results {
		end := "limit"
		if r.Crashed {
			end = "crash"
		}
		fmt.Printf("  %4d  %8d  %8d  %8d  %6d  %6d  %9s  %s\n",
			r.Run, r.Frames, r.Score, r.Best, r.Coins, r.Speed,
			r.Elapsed.Truncate(10*time.Millisecond), end)
	}
}
