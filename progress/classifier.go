package progress

import (
	"encoding/json"
	"path"
	"strings"
)

// maxToolOutput bounds the echoed command/path text attached to an event.
const maxToolOutput = 60

// lintMarkers and testMarkers are checked in order against the lowered
// command and description text. Lint detection runs before test detection,
// so "npm run lint && npm test" classifies as Linting.
var (
	lintMarkers = []string{"lint", "eslint", "biome", "prettier"}
	testMarkers = []string{"vitest", "jest", "bun test", "npm test", "pytest", "go test"}
)

// Classifier derives canonical progress events from raw agent output lines.
// One instance per execution; it owns the todo list carried across lines and
// performs no blocking work, so it is safe to invoke inline as lines arrive.
type Classifier struct {
	todos []TodoItem
}

// NewClassifier creates a classifier with empty cross-line state.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Todos returns the currently tracked todo list.
func (c *Classifier) Todos() []TodoItem {
	return c.todos
}

// ClassifyLine inspects one raw output line and returns the progress event it
// maps to, or nil when the line carries no recognizable signal. Malformed
// input never produces an error; it is treated as noise.
func (c *Classifier) ClassifyLine(line string) *Event {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	raw := []byte(trimmed)

	tc, ok := ExtractToolCall(raw)
	if !ok {
		if isThinkingLine(raw) {
			return c.attachTodos(&Event{Step: StepThinking})
		}
		return nil
	}

	if isTodoTool(tc.Name) {
		return c.applyTodoWrite(tc)
	}

	step, output, matched := ClassifyToolCall(tc)
	if !matched {
		return nil
	}
	ev := &Event{Step: step, ToolOutput: output}
	if isWriteTool(strings.ToLower(tc.Name)) {
		ev.Diff = synthesizeWriteDiff(tc)
	}
	return c.attachTodos(ev)
}

// ClassifyToolCall maps a normalized tool invocation to a canonical step.
// It is a pure function; rules are checked in sequence and the first match
// wins, so order encodes intent priority.
func ClassifyToolCall(tc ToolCall) (Step, string, bool) {
	name := strings.ToLower(tc.Name)
	command := strings.ToLower(tc.Command)

	if name == "" && command == "" {
		return "", "", false
	}

	if isReadTool(name) {
		return StepReadingCode, truncatePath(tc.FilePath), true
	}

	if isBashTool(name) || command != "" {
		text := command + " " + strings.ToLower(tc.Description)
		switch {
		case strings.Contains(text, "git commit"):
			return StepCommitting, "", true
		case strings.Contains(text, "git add"):
			return StepStaging, "", true
		case containsAny(text, lintMarkers):
			return StepLinting, commandEcho(tc.Command), true
		case containsAny(text, testMarkers):
			return StepTesting, commandEcho(tc.Command), true
		case isBashTool(name) && tc.Command != "":
			return StepRunning, commandEcho(tc.Command), true
		}
	}

	if isWriteTool(name) {
		if isTestPath(strings.ToLower(tc.FilePath)) {
			return StepWritingTests, truncatePath(tc.FilePath), true
		}
		return StepImplementing, truncatePath(tc.FilePath), true
	}

	return "", "", false
}

// applyTodoWrite replaces the tracked list wholesale and emits a Planning
// event carrying the new list. A missing or non-list todos payload is
// ignored and the prior state retained.
func (c *Classifier) applyTodoWrite(tc ToolCall) *Event {
	if len(tc.Todos) == 0 {
		return nil
	}
	var items []struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(tc.Todos, &items); err != nil {
		return nil
	}

	todos := make([]TodoItem, 0, len(items))
	for _, item := range items {
		status := TodoStatus(item.Status)
		if status == "" {
			status = TodoPending
		}
		todos = append(todos, TodoItem{ID: item.ID, Content: item.Content, Status: status})
	}
	c.todos = todos

	ev := &Event{Step: StepPlanning}
	if len(todos) > 0 {
		ev.Todos = todos
	}
	return ev
}

// attachTodos adds the current tracked list to an event as a side channel,
// so the display layer can render it alongside whatever phase is active.
func (c *Classifier) attachTodos(ev *Event) *Event {
	if len(c.todos) > 0 {
		ev.Todos = c.todos
	}
	return ev
}

func synthesizeWriteDiff(tc ToolCall) *DiffInfo {
	old := tc.OldString
	updated := tc.NewString
	if old == "" && updated == "" {
		updated = tc.Content
	}
	return SynthesizeDiff(tc.FilePath, old, updated)
}

func isReadTool(name string) bool {
	switch name {
	case "read", "glob", "grep":
		return true
	}
	return false
}

func isBashTool(name string) bool {
	switch name {
	case "bash", "shell", "run_terminal_cmd":
		return true
	}
	return false
}

func isWriteTool(name string) bool {
	switch name {
	case "write", "edit", "multiedit":
		return true
	}
	return false
}

func isTodoTool(name string) bool {
	return strings.Contains(strings.ToLower(name), "todo")
}

// isTestPath applies test-file heuristics to an already-lowered path.
func isTestPath(lowered string) bool {
	return strings.Contains(lowered, ".test.") ||
		strings.Contains(lowered, ".spec.") ||
		strings.Contains(lowered, "__tests__") ||
		strings.HasSuffix(lowered, "_test.go")
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func commandEcho(command string) string {
	if command == "" {
		return ""
	}
	return truncate("Running: " + command)
}

// truncatePath shortens nested paths to ".../<base>" for glance display.
func truncatePath(p string) string {
	if p == "" {
		return ""
	}
	normalized := strings.ReplaceAll(p, "\\", "/")
	base := path.Base(normalized)
	if base == normalized {
		return truncate(p)
	}
	return truncate(".../" + base)
}

func truncate(s string) string {
	if len(s) <= maxToolOutput {
		return s
	}
	return s[:maxToolOutput-3] + "..."
}
