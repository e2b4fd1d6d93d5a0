package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codewalk/agentview/config"
	"github.com/codewalk/agentview/engine"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List known engines and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		for _, e := range engine.FromConfig(cfg) {
			status := "not found"
			if e.IsAvailable() {
				status = "available"
			}
			marker := ""
			if e.Name() == cfg.DefaultEngine {
				marker = " (default)"
			}
			fmt.Printf("%-10s %s%s\n", e.Name(), status, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
