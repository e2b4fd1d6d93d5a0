// Command agentview drives coding-agent CLIs and shows uniform live progress.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "agentview",
	Short: "Uniform live progress for coding-agent CLIs",
	Long: `Agentview runs an external coding agent (Claude Code, OpenCode,
Cursor Agent), classifies its stream-JSON output line by line into canonical
progress steps, and prints one status line per agent action plus a final
result summary.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cobra.OnInitialize(setupLogger)
}

// setupLogger installs the default slog handler with the configured verbosity.
func setupLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
