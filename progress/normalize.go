package progress

import "encoding/json"

// ToolCall is the normalized tool invocation extracted from one output line.
// String fields default to empty so downstream substring checks are total;
// original casing is preserved for display and lowered only when matching.
type ToolCall struct {
	Name        string
	FilePath    string
	Command     string
	Description string
	Content     string
	OldString   string
	NewString   string
	Todos       json.RawMessage
}

// toolInput covers the input field shapes used across backends. Path aliases
// are probed in declaration order.
type toolInput struct {
	FilePath      string          `json:"file_path"`
	FilePathCamel string          `json:"filePath"`
	Path          string          `json:"path"`
	Command       string          `json:"command"`
	Description   string          `json:"description"`
	Content       string          `json:"content"`
	OldString     string          `json:"old_string"`
	NewString     string          `json:"new_string"`
	Todos         json.RawMessage `json:"todos"`
}

func (in toolInput) path() string {
	if in.FilePath != "" {
		return in.FilePath
	}
	if in.FilePathCamel != "" {
		return in.FilePathCamel
	}
	return in.Path
}

func (in toolInput) apply(tc *ToolCall) {
	tc.FilePath = in.path()
	tc.Command = in.Command
	tc.Description = in.Description
	tc.Content = in.Content
	tc.OldString = in.OldString
	tc.NewString = in.NewString
	tc.Todos = in.Todos
}

// messageEnvelope is the Claude family shape: tool invocations embedded in a
// list of message content items.
type messageEnvelope struct {
	Type    string `json:"type"`
	Message struct {
		Content []struct {
			Type  string          `json:"type"`
			Name  string          `json:"name"`
			Input json.RawMessage `json:"input"`
		} `json:"content"`
	} `json:"message"`
}

// partEnvelope is the OpenCode family shape: a single part object carrying
// the tool name and input (or input nested under state).
type partEnvelope struct {
	Type string `json:"type"`
	Part struct {
		Type  string          `json:"type"`
		Name  string          `json:"name"`
		Tool  string          `json:"tool"`
		Input json.RawMessage `json:"input"`
		State struct {
			Input json.RawMessage `json:"input"`
		} `json:"state"`
	} `json:"part"`
}

// callMapEnvelope is the Cursor family shape: a tool_call map with a single
// key naming the tool.
type callMapEnvelope struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`
	ToolCall map[string]struct {
		Args json.RawMessage `json:"args"`
	} `json:"tool_call"`
}

// flatEnvelope covers backends that put everything at the top level.
type flatEnvelope struct {
	Tool        string          `json:"tool"`
	Name        string          `json:"name"`
	ToolName    string          `json:"tool_name"`
	FilePath    string          `json:"file_path"`
	FilePathAlt string          `json:"filePath"`
	Path        string          `json:"path"`
	Command     string          `json:"command"`
	Description string          `json:"description"`
	Input       json.RawMessage `json:"input"`
}

// ExtractToolCall pulls a normalized tool invocation out of one raw line.
// Adapters are tried in fixed priority order; the first match wins. Invalid
// JSON and lines without a recognizable invocation return (zero, false).
func ExtractToolCall(line []byte) (ToolCall, bool) {
	if tc, ok := extractMessageEnvelope(line); ok {
		return tc, true
	}
	if tc, ok := extractPartEnvelope(line); ok {
		return tc, true
	}
	if tc, ok := extractCallMapEnvelope(line); ok {
		return tc, true
	}
	return extractFlat(line)
}

func extractMessageEnvelope(line []byte) (ToolCall, bool) {
	var env messageEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return ToolCall{}, false
	}
	for _, block := range env.Message.Content {
		if block.Type != "tool_use" || block.Name == "" {
			continue
		}
		tc := ToolCall{Name: block.Name}
		applyInput(&tc, block.Input)
		// First tool invocation in the content list wins.
		return tc, true
	}
	return ToolCall{}, false
}

func extractPartEnvelope(line []byte) (ToolCall, bool) {
	var env partEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return ToolCall{}, false
	}
	name := env.Part.Name
	if name == "" {
		name = env.Part.Tool
	}
	if name == "" {
		return ToolCall{}, false
	}
	tc := ToolCall{Name: name}
	input := env.Part.Input
	if len(input) == 0 {
		input = env.Part.State.Input
	}
	applyInput(&tc, input)
	return tc, true
}

func extractCallMapEnvelope(line []byte) (ToolCall, bool) {
	var env callMapEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return ToolCall{}, false
	}
	if env.Type != "tool_call" || len(env.ToolCall) == 0 {
		return ToolCall{}, false
	}
	// Completed events repeat the started payload; classify only once.
	if env.Subtype != "" && env.Subtype != "started" {
		return ToolCall{}, false
	}
	for name, detail := range env.ToolCall {
		tc := ToolCall{Name: name}
		applyInput(&tc, detail.Args)
		return tc, true
	}
	return ToolCall{}, false
}

func extractFlat(line []byte) (ToolCall, bool) {
	var env flatEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return ToolCall{}, false
	}
	name := env.Tool
	if name == "" {
		name = env.Name
	}
	if name == "" {
		name = env.ToolName
	}
	if name == "" && env.Command == "" {
		return ToolCall{}, false
	}
	tc := ToolCall{Name: name}
	applyInput(&tc, env.Input)
	if tc.FilePath == "" {
		tc.FilePath = firstNonEmpty(env.FilePath, env.FilePathAlt, env.Path)
	}
	if tc.Command == "" {
		tc.Command = env.Command
	}
	if tc.Description == "" {
		tc.Description = env.Description
	}
	return tc, true
}

func applyInput(tc *ToolCall, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var in toolInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return
	}
	in.apply(tc)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// thinkingEnvelope covers the shapes that signal model text or reasoning
// without a tool invocation.
type thinkingEnvelope struct {
	Type    string `json:"type"`
	Message struct {
		Content []struct {
			Type string `json:"type"`
		} `json:"content"`
	} `json:"message"`
	Part struct {
		Type string `json:"type"`
	} `json:"part"`
}

// isThinkingLine reports whether a line carries assistant text or reasoning
// output. Callers must have already ruled out a tool invocation.
func isThinkingLine(line []byte) bool {
	var env thinkingEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return false
	}
	switch env.Type {
	case "thinking", "reasoning":
		return true
	case "assistant":
		for _, block := range env.Message.Content {
			if block.Type == "text" || block.Type == "thinking" {
				return true
			}
		}
		return false
	}
	switch env.Part.Type {
	case "text", "reasoning":
		return true
	}
	return false
}
