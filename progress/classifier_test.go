package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine_PartEnvelopeRead(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"tool_call","part":{"name":"read","input":{"file_path":"/a/b/Foo.ts"}}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepReadingCode, ev.Step)
	assert.Equal(t, ".../Foo.ts", ev.ToolOutput)
}

func TestClassifyLine_MessageEnvelopeRead(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"assistant","message":{"content":[{"type":"text","text":"ok"},{"type":"tool_use","name":"Read","input":{"file_path":"/src/pkg/main.go"}}]}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepReadingCode, ev.Step)
	assert.Equal(t, ".../main.go", ev.ToolOutput)
}

func TestClassifyLine_FirstToolUseWins(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"assistant","message":{"content":[` +
		`{"type":"tool_use","name":"Read","input":{"file_path":"/a/first.go"}},` +
		`{"type":"tool_use","name":"Bash","input":{"command":"go test ./..."}}]}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepReadingCode, ev.Step)
	assert.Equal(t, ".../first.go", ev.ToolOutput)
}

func TestClassifyLine_CallMapEnvelope(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"tool_call","subtype":"started","call_id":"c1","tool_call":{"Read":{"args":{"file_path":"/a/b.ts"}}}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepReadingCode, ev.Step)
	assert.Equal(t, ".../b.ts", ev.ToolOutput)

	// Completed events repeat the payload and must not double-classify.
	assert.Nil(t, c.ClassifyLine(`{"type":"tool_call","subtype":"completed","call_id":"c1","tool_call":{"Read":{"args":{"file_path":"/a/b.ts"},"result":"..."}}}`))
}

func TestClassifyLine_FlatBashTest(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"name":"bash","input":{"command":"npm test"}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepTesting, ev.Step)
	assert.Equal(t, "Running: npm test", ev.ToolOutput)
}

func TestClassifyLine_WriteTestFile(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"name":"write","input":{"path":"x.test.ts","content":"expect(1).toBe(1)"}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepWritingTests, ev.Step)
	require.NotNil(t, ev.Diff)
	assert.Equal(t, "x.test.ts", ev.Diff.FilePath)
	assert.Empty(t, ev.Diff.OldLines)
	assert.Equal(t, []string{"expect(1).toBe(1)"}, ev.Diff.NewLines)
}

func TestClassifyLine_EditCarriesDiff(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Edit","input":{"file_path":"/src/app.go","old_string":"a := 1","new_string":"a := 2"}}]}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepImplementing, ev.Step)
	require.NotNil(t, ev.Diff)
	assert.Equal(t, []string{"a := 1"}, ev.Diff.OldLines)
	assert.Equal(t, []string{"a := 2"}, ev.Diff.NewLines)
}

func TestClassifyLine_Thinking(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"assistant","message":{"content":[{"type":"text","text":"Let me look around."}]}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepThinking, ev.Step)

	ev = c.ClassifyLine(`{"type":"message.part.updated","part":{"type":"reasoning","text":"hmm"}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepThinking, ev.Step)
}

func TestClassifyLine_NoiseNeverPanics(t *testing.T) {
	c := NewClassifier()
	for _, line := range []string{
		"",
		"   ",
		"not json at all",
		"{broken json",
		"{}",
		`{"type":"system","subtype":"init"}`,
		`[1,2,3]`,
		`{"name":"","input":{}}`,
		strings.Repeat("x", 100000),
	} {
		assert.Nil(t, c.ClassifyLine(line), "line %q", line)
	}
}

func TestClassifyToolCall_Precedence(t *testing.T) {
	tests := []struct {
		name string
		tc   ToolCall
		want Step
	}{
		{name: "commit-before-generic", tc: ToolCall{Name: "Bash", Command: "git commit -m 'x'"}, want: StepCommitting},
		{name: "add-before-generic", tc: ToolCall{Name: "Bash", Command: "git add -A"}, want: StepStaging},
		{name: "lint-before-test", tc: ToolCall{Name: "Bash", Command: "npm run lint && npm test"}, want: StepLinting},
		{name: "prettier", tc: ToolCall{Name: "Bash", Command: "npx prettier --write ."}, want: StepLinting},
		{name: "go-test", tc: ToolCall{Name: "Bash", Command: "go test ./..."}, want: StepTesting},
		{name: "pytest", tc: ToolCall{Name: "Bash", Command: "pytest -x"}, want: StepTesting},
		{name: "generic-fallback", tc: ToolCall{Name: "Bash", Command: "make build"}, want: StepRunning},
		{name: "command-only", tc: ToolCall{Name: "", Command: "vitest run"}, want: StepTesting},
		{name: "description-marker", tc: ToolCall{Name: "Bash", Command: "bun x checker", Description: "Run eslint on src"}, want: StepLinting},
		{name: "write-go-test", tc: ToolCall{Name: "Write", FilePath: "/pkg/foo_test.go"}, want: StepWritingTests},
		{name: "write-spec", tc: ToolCall{Name: "write", FilePath: "src/App.spec.tsx"}, want: StepWritingTests},
		{name: "write-source", tc: ToolCall{Name: "write", FilePath: "src/App.tsx"}, want: StepImplementing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			step, _, ok := ClassifyToolCall(tc.tc)
			require.True(t, ok)
			assert.Equal(t, tc.want, step)
		})
	}
}

func TestClassifyToolCall_NoSignal(t *testing.T) {
	_, _, ok := ClassifyToolCall(ToolCall{})
	assert.False(t, ok)

	_, _, ok = ClassifyToolCall(ToolCall{Name: "websearch"})
	assert.False(t, ok)
}

func TestClassifyToolCall_OutputBounded(t *testing.T) {
	long := "npm test -- " + strings.Repeat("a", 200)
	_, output, ok := ClassifyToolCall(ToolCall{Name: "bash", Command: long})
	require.True(t, ok)
	assert.LessOrEqual(t, len(output), maxToolOutput)
	assert.True(t, strings.HasSuffix(output, "..."))
}

func TestTodoWrite_ReplacesWholesale(t *testing.T) {
	c := NewClassifier()
	ev := c.ClassifyLine(`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"TodoWrite","input":{"todos":[{"id":"1","content":"plan","status":"in_progress"},{"content":"build"}]}}]}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepPlanning, ev.Step)
	require.Len(t, ev.Todos, 2)
	assert.Equal(t, TodoInProgress, ev.Todos[0].Status)
	// Missing status defaults to pending, missing id/content to empty.
	assert.Equal(t, TodoPending, ev.Todos[1].Status)
	assert.Equal(t, "", ev.Todos[1].ID)
}

func TestTodoWrite_Idempotent(t *testing.T) {
	line := `{"name":"todowrite","input":{"todos":[{"id":"1","content":"a","status":"pending"}]}}`
	c := NewClassifier()
	require.NotNil(t, c.ClassifyLine(line))
	first := c.Todos()
	require.NotNil(t, c.ClassifyLine(line))
	assert.Equal(t, first, c.Todos())
}

func TestTodoWrite_SideChannel(t *testing.T) {
	c := NewClassifier()
	require.NotNil(t, c.ClassifyLine(`{"name":"todowrite","input":{"todos":[{"id":"1","content":"a","status":"pending"}]}}`))

	ev := c.ClassifyLine(`{"name":"read","input":{"file_path":"/a/b.go"}}`)
	require.NotNil(t, ev)
	assert.Equal(t, StepReadingCode, ev.Step)
	require.Len(t, ev.Todos, 1)
	assert.Equal(t, "a", ev.Todos[0].Content)
}

func TestTodoWrite_EmptyListClears(t *testing.T) {
	c := NewClassifier()
	require.NotNil(t, c.ClassifyLine(`{"name":"todowrite","input":{"todos":[{"id":"1","content":"a"}]}}`))
	require.NotNil(t, c.ClassifyLine(`{"name":"todowrite","input":{"todos":[]}}`))
	assert.Empty(t, c.Todos())

	ev := c.ClassifyLine(`{"name":"read","input":{"file_path":"/a/b.go"}}`)
	require.NotNil(t, ev)
	assert.Nil(t, ev.Todos)
}

func TestTodoWrite_MalformedPayloadIgnored(t *testing.T) {
	c := NewClassifier()
	require.NotNil(t, c.ClassifyLine(`{"name":"todowrite","input":{"todos":[{"id":"1","content":"a"}]}}`))

	// Non-list todos field: the write is ignored, prior state retained.
	assert.Nil(t, c.ClassifyLine(`{"name":"todowrite","input":{"todos":{"id":"2"}}}`))
	assert.Nil(t, c.ClassifyLine(`{"name":"todowrite","input":{}}`))
	require.Len(t, c.Todos(), 1)
	assert.Equal(t, "1", c.Todos()[0].ID)
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "", truncatePath(""))
	assert.Equal(t, "main.go", truncatePath("main.go"))
	assert.Equal(t, ".../Foo.ts", truncatePath("/a/b/Foo.ts"))
	assert.Equal(t, ".../deep.go", truncatePath("x/y/deep.go"))
}
