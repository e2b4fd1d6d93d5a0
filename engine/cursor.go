package engine

import (
	"context"
	"os/exec"

	"github.com/codewalk/agentview/progress"
)

// CursorEngine drives the Cursor Agent CLI in one-shot stream-json mode.
// Tool invocations arrive as a tool_call map keyed by tool name.
type CursorEngine struct {
	command   string
	extraArgs []string
}

// NewCursorEngine creates a Cursor engine. An empty command defaults to
// "agent".
func NewCursorEngine(command string, extraArgs ...string) *CursorEngine {
	if command == "" {
		command = "agent"
	}
	return &CursorEngine{command: command, extraArgs: extraArgs}
}

// Name returns the engine identifier.
func (e *CursorEngine) Name() string { return "cursor" }

// IsAvailable reports whether the agent command resolves on PATH.
func (e *CursorEngine) IsAvailable() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

// BuildArgs builds the CLI arguments for one execution.
func (e *CursorEngine) BuildArgs(prompt string, opts Options) []string {
	args := []string{
		"chat",
		"-p", prompt,
		"--output-format", "stream-json",
	}
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	args = append(args, e.extraArgs...)
	args = append(args, opts.ExtraArgs...)
	return args
}

// Execute runs one buffered prompt and aggregates the terminal result.
func (e *CursorEngine) Execute(ctx context.Context, prompt, workDir string, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, nil, opts)
}

// ExecuteStreaming runs one prompt, forwarding classified progress events.
func (e *CursorEngine) ExecuteStreaming(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	return e.run(ctx, prompt, workDir, onProgress, opts)
}

func (e *CursorEngine) run(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error) {
	cmd := newAgentCmd(ctx, workDir, e.command, e.BuildArgs(prompt, opts)...)
	return runClassified(cmd, "", onProgress)
}
