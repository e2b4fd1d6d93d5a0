package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codewalk/agentview/config"
	"github.com/codewalk/agentview/display"
	"github.com/codewalk/agentview/engine"
	"github.com/codewalk/agentview/progress"
)

var (
	runEngine string
	runModel  string
	runDir    string
	runPlain  bool
)

var runCmd = &cobra.Command{
	Use:   "run <prompt>",
	Short: "Run a prompt through a coding agent with live progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir := runDir
		if workDir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			workDir = cwd
		}

		cfg, err := config.Load(workDir)
		if err != nil {
			return err
		}

		engines := engine.FromConfig(cfg)
		var eng engine.Engine
		if runEngine != "" {
			eng, err = engine.Lookup(engines, runEngine)
		} else {
			eng, err = engine.Default(cfg, engines)
		}
		if err != nil {
			return err
		}
		if !eng.IsAvailable() {
			return fmt.Errorf("engine %q: %w", eng.Name(), engine.ErrNoEngineAvailable)
		}

		opts := engine.Options{Model: runModel}
		renderer := display.NewRenderer()

		var res *progress.Result
		streamer, canStream := eng.(engine.StreamingEngine)
		if canStream && !runPlain {
			res, err = streamer.ExecuteStreaming(cmd.Context(), args[0], workDir, func(ev progress.Event) {
				fmt.Println(renderer.Event(ev))
			}, opts)
		} else {
			res, err = eng.Execute(cmd.Context(), args[0], workDir, opts)
		}
		if err != nil {
			return err
		}

		fmt.Println(renderer.Result(*res))
		if !res.Success {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEngine, "engine", "e", "", "Engine to use (claude, opencode, cursor)")
	runCmd.Flags().StringVarP(&runModel, "model", "m", "", "Model override passed to the engine")
	runCmd.Flags().StringVarP(&runDir, "dir", "d", "", "Working directory (default: current)")
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "Skip live progress, print only the final result")
}
