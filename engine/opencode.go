package engine

import (
	"context"
	"os/exec"

	"github.com/codewalk/agentview/progress"
)

// OpenCodeEngine drives the OpenCode CLI. The prompt is passed as an
// argument; events use the part envelope with a step_finish terminal record.
type OpenCodeEngine struct {
	command   string
	extraArgs []string
}

// NewOpenCodeEngine creates an OpenCode engine. An empty command defaults to
// "opencode".
func NewOpenCodeEngine(command string, extraArgs ...string) *OpenCodeEngine {
	if command == "" {
		command = "opencode"
	}
	return &OpenCodeEngine{command: command, extraArgs: extraArgs}
}

// Name returns the engine identifier.
func (e *OpenCodeEngine) Name() string { return "opencode" }

// IsAvailable reports whether the opencode command resolves on PATH.
func (e *OpenCodeEngine) IsAvailable() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

// BuildArgs builds the CLI arguments for one execution.
func (e *OpenCodeEngine) BuildArgs(prompt string, opts Options) []string {
	args := []string{"run", "--print-logs"}
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	args = append(args, e.extraArgs...)
	args = append(args, opts.ExtraArgs...)
	args = append(args, prompt)
	return args
}

// Execute runs one buffered prompt and aggregates the terminal result.
func (e *OpenCodeEngine) Execute(ctx context.Context, prompt, workDir string, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, nil, opts)
}

// ExecuteStreaming runs one prompt, forwarding classified progress events.
func (e *OpenCodeEngine) ExecuteStreaming(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, onProgress, opts)
}

func (e *OpenCodeEngine) run(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	cmd := newAgentCmd(ctx, workDir, e.command, e.BuildArgs(prompt, opts)...)
	return runClassified(cmd, "", onProgress)
}
