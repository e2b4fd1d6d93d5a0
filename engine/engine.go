// Package engine defines the contract between agent backends and the
// progress classifier, plus the concrete CLI-backed engines.
package engine

import (
	"context"
	"fmt"

	"github.com/codewalk/agentview/config"
	"github.com/codewalk/agentview/progress"
)

// Options adjust a single execution.
type Options struct {
	Model     string
	ExtraArgs []string
}

// ProgressFunc receives one canonical progress event per classified line.
// It is invoked synchronously, before the next line is processed.
type ProgressFunc func(progress.Event)

// Engine is implemented by every supported agent backend.
type Engine interface {
	// Name returns the backend identifier used in config and CLI flags.
	Name() string

	// IsAvailable reports whether the backend command resolves on PATH.
	IsAvailable() bool

	// Execute runs one buffered prompt and aggregates the terminal result.
	Execute(ctx context.Context, prompt, workDir string, opts Options) (*progress.Result, error)
}

// StreamingEngine is implemented by backends whose output can be classified
// line by line while still buffering everything for final aggregation.
type StreamingEngine interface {
	Engine

	ExecuteStreaming(ctx context.Context, prompt, workDir string, onProgress ProgressFunc, opts Options) (*progress.Result, error)
}

// FromConfig builds all known engines, applying per-engine command overrides.
func FromConfig(cfg *config.Config) []Engine {
	return []Engine{
		NewClaudeEngine(cfg.CommandFor("claude", "claude"), cfg.ExtraArgsFor("claude")...),
		NewOpenCodeEngine(cfg.CommandFor("opencode", "opencode"), cfg.ExtraArgsFor("opencode")...),
		NewCursorEngine(cfg.CommandFor("cursor", "agent"), cfg.ExtraArgsFor("cursor")...),
	}
}

// Lookup finds an engine by name.
func Lookup(engines []Engine, name string) (Engine, error) {
	for _, e := range engines {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Default picks the configured default engine, falling back to the first
// available one.
func Default(cfg *config.Config, engines []Engine) (Engine, error) {
	if cfg.DefaultEngine != "" {
		return Lookup(engines, cfg.DefaultEngine)
	}
	for _, e := range engines {
		if e.IsAvailable() {
			return e, nil
		}
	}
	return nil, ErrNoEngineAvailable
}
