package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Prints the key bindings in effect after loading the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rows := []struct {
		action string
		keys   []string
	}{
		{"left", cfg.Keys.Left},
		{"right", cfg.Keys.Right},
		{"start", cfg.Keys.Start},
		{"quit", cfg.Keys.Quit},
		{"help", cfg.Keys.Help},
	}

	fmt.Printf("  %-6s  %s\n", "Action", "Keys")
	fmt.Printf("  %-6s  %s\n", "------", "----")
	for _, r := range rows {
		names := make([]string, len(r.keys))
		for i, k := range r.keys {
			if k == " " {
				k = "space"
			}
			names[i] = k
		}
		fmt.Printf("  %-6s  %s\n", r.action, strings.Join(names, ", "))
	}
	return nil
}
