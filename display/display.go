// Package display renders progress events and terminal results for the
// console. It is a presentation collaborator of the classifier: one static
// styled line per event, no animation or refresh loop.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codewalk/agentview/progress"
)

// Renderer formats progress events with lipgloss styles.
type Renderer struct {
	step    lipgloss.Style
	detail  lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	done    lipgloss.Style
	failed  lipgloss.Style
}

// NewRenderer creates a renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{
		step:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		done:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Event renders one progress event. The diff preview takes priority over
// plain tool output when both are present.
func (r *Renderer) Event(ev progress.Event) string {
	var b strings.Builder
	b.WriteString(r.step.Render("▸ " + string(ev.Step)))

	switch {
	case ev.Diff != nil:
		b.WriteString(" " + r.detail.Render(ev.Diff.FilePath))
		for _, line := range ev.Diff.OldLines {
			b.WriteString("\n  " + r.removed.Render("- "+line))
		}
		for _, line := range ev.Diff.NewLines {
			b.WriteString("\n  " + r.added.Render("+ "+line))
		}
	case ev.ToolOutput != "":
		b.WriteString(" " + r.detail.Render(ev.ToolOutput))
	}

	if summary := todoSummary(ev.Todos); summary != "" {
		b.WriteString(" " + r.detail.Render(summary))
	}
	return b.String()
}

// Todos renders the full checklist, one item per line.
func (r *Renderer) Todos(todos []progress.TodoItem) string {
	lines := make([]string, 0, len(todos))
	for _, todo := range todos {
		marker := "[ ]"
		switch todo.Status {
		case progress.TodoInProgress:
			marker = "[~]"
		case progress.TodoCompleted:
			marker = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s", marker, todo.Content))
	}
	return strings.Join(lines, "\n")
}

// Result renders the terminal outcome of an execution.
func (r *Renderer) Result(res progress.Result) string {
	var b strings.Builder
	if res.Success {
		b.WriteString(r.done.Render("✓ done"))
	} else {
		b.WriteString(r.failed.Render("✗ failed"))
		if res.Error != "" {
			b.WriteString("\n" + r.failed.Render(res.Error))
		}
	}
	b.WriteString("\n" + res.Response)

	usage := fmt.Sprintf("tokens: %d in / %d out", res.InputTokens, res.OutputTokens)
	if res.Cost != "" {
		usage += ", cost: " + res.Cost
	}
	b.WriteString("\n" + r.detail.Render(usage))
	return b.String()
}

// todoSummary compresses the checklist into a "done/total" counter.
func todoSummary(todos []progress.TodoItem) string {
	if len(todos) == 0 {
		return ""
	}
	done := 0
	for _, todo := range todos {
		if todo.Status == progress.TodoCompleted {
			done++
		}
	}
	return fmt.Sprintf("(todos: %d/%d done)", done, len(todos))
}
