package engine

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/codewalk/agentview/internal/procattr"
	"github.com/codewalk/agentview/progress"
)

// maxLineBytes bounds a single scanned output line; agent CLIs can emit very
// large JSON lines when tool results include whole files.
const maxLineBytes = 1024 * 1024

type runResult struct {
	Output   string
	ExitCode int
}

// newAgentCmd builds the agent subprocess. Cancellation signals the whole
// process group so agent-spawned children do not outlive the run.
func newAgentCmd(ctx context.Context, workDir, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir
	cmd.Cancel = func() error {
		return procattr.SignalGroup(cmd.Process, syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second
	return cmd
}

// runLines executes the command and invokes onLine for every output line as
// it arrives, while buffering the full output. Lines from stdout and stderr
// are merged into one sequence: same-stream order is preserved, cross-stream
// order depends on delivery timing. A nonzero exit is data for the result
// aggregator, not a runner error.
func runLines(cmd *exec.Cmd, stdinPrompt string, onLine func(string)) (*runResult, error) {
	procattr.Set(cmd)

	var stdin io.WriteCloser
	if stdinPrompt != "" {
		var err error
		stdin, err = cmd.StdinPipe()
		if err != nil {
			return nil, &ProcessError{Message: "create stdin pipe", Cause: err}
		}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &ProcessError{Message: "create stdout pipe", Cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &ProcessError{Message: "create stderr pipe", Cause: err}
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &CLINotFoundError{Command: cmd.Path, Cause: err}
		}
		return nil, &ProcessError{Message: "start agent process", Cause: err}
	}

	if stdin != nil {
		go func() {
			if _, err := io.WriteString(stdin, stdinPrompt); err != nil {
				slog.Debug("prompt write interrupted", "err", err)
			}
			stdin.Close()
		}()
	}

	lines := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(2)
	pump := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			slog.Debug("output scan ended", "err", err)
		}
	}
	go pump(stdout)
	go pump(stderr)
	go func() {
		wg.Wait()
		close(lines)
	}()

	var buf strings.Builder
	for line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
		if onLine != nil {
			onLine(line)
		}
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &ProcessError{Message: "wait for agent process", Cause: err}
		}
		exitCode = exitErr.ExitCode()
	}

	// Early termination (including ctx cancellation) is not an error here:
	// the aggregator runs over whatever was captured, and the nonzero exit
	// code surfaces the failure.
	return &runResult{Output: buf.String(), ExitCode: exitCode}, nil
}

// runClassified runs the command, classifying each line through a fresh
// classifier instance when a progress callback is supplied, then aggregates
// the buffered output into a terminal result.
func runClassified(cmd *exec.Cmd, stdinPrompt string, onProgress ProgressFunc) (*progress.Result, error) {
	var onLine func(string)
	if onProgress != nil {
		classifier := progress.NewClassifier()
		onLine = func(line string) {
			if ev := classifier.ClassifyLine(line); ev != nil {
				onProgress(*ev)
			}
		}
	}

	rr, err := runLines(cmd, stdinPrompt, onLine)
	if err != nil {
		return nil, err
	}
	res := progress.AggregateResult(rr.Output, rr.ExitCode)
	return &res, nil
}
