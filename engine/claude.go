package engine

import (
	"context"
	"os/exec"

	"github.com/codewalk/agentview/progress"
)

// ClaudeEngine drives the Claude Code CLI in stream-json mode. The prompt is
// delivered on stdin; progress lines arrive on stdout as NDJSON.
type ClaudeEngine struct {
	command   string
	extraArgs []string
}

// NewClaudeEngine creates a Claude engine. An empty command defaults to
// "claude".
func NewClaudeEngine(command string, extraArgs ...string) *ClaudeEngine {
	if command == "" {
		command = "claude"
	}
	return &ClaudeEngine{command: command, extraArgs: extraArgs}
}

// Name returns the engine identifier.
func (e *ClaudeEngine) Name() string { return "claude" }

// IsAvailable reports whether the claude command resolves on PATH.
func (e *ClaudeEngine) IsAvailable() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

// BuildArgs builds the CLI arguments for one execution.
func (e *ClaudeEngine) BuildArgs(opts Options) []string {
	args := []string{
		"-p",
		"--output-format", "stream-json",
		"--verbose",
	}
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	args = append(args, e.extraArgs...)
	args = append(args, opts.ExtraArgs...)
	return args
}

// Execute runs one buffered prompt and aggregates the terminal result.
func (e *ClaudeEngine) Execute(ctx context.Context, prompt, workDir string, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, nil, opts)
}

// ExecuteStreaming runs one prompt, forwarding classified progress events.
func (e *ClaudeEngine) ExecuteStreaming(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, onProgress, opts)
}

func (e *ClaudeEngine) run(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	cmd := newAgentCmd(ctx, workDir, e.command, e.BuildArgs(opts)...)
	return runClassified(cmd, prompt, onProgress)
}
