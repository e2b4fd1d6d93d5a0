package progress

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoResponse is the placeholder used when no terminal result event was found.
const NoResponse = "No response captured"

// errorTailLines bounds how much trailing output feeds a synthesized error.
const errorTailLines = 5

// Result is the terminal outcome of one agent execution.
type Result struct {
	Response     string `json:"response"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
	Cost         string `json:"cost,omitempty"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// terminalEnvelope covers the terminal event shapes of all adapter families:
// Claude/Cursor emit a flat "result" record, OpenCode a "step_finish" part.
type terminalEnvelope struct {
	Type         string          `json:"type"`
	IsError      bool            `json:"is_error"`
	Result       string          `json:"result"`
	TotalCostUSD float64         `json:"total_cost_usd"`
	Message      string          `json:"message"`
	Error        json.RawMessage `json:"error"`
	Usage        struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Part struct {
		Cost   float64 `json:"cost"`
		Text   string  `json:"text"`
		Tokens struct {
			Input  int `json:"input"`
			Output int `json:"output"`
		} `json:"tokens"`
	} `json:"part"`
}

// AggregateResult scans the complete captured output for the terminal result
// event (last one wins) and combines it with the process exit code. An
// explicit error event short-circuits everything else; a nonzero exit with
// no explicit error synthesizes a message from the trailing output.
func AggregateResult(output string, exitCode int) Result {
	res := Result{Response: NoResponse, Success: true}
	var (
		errMsg     string
		termIsErr  bool
		haveResult bool
	)

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var env terminalEnvelope
		if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
			continue
		}
		switch env.Type {
		case "error":
			if msg := errorMessage(env); msg != "" {
				errMsg = msg
			}
		case "result":
			haveResult = true
			termIsErr = env.IsError
			if env.Result != "" {
				res.Response = env.Result
			}
			res.InputTokens = env.Usage.InputTokens
			res.OutputTokens = env.Usage.OutputTokens
			res.Cost = formatCost(env.TotalCostUSD)
		case "step_finish", "step.finished":
			haveResult = true
			if env.Part.Text != "" {
				res.Response = env.Part.Text
			}
			res.InputTokens = env.Part.Tokens.Input
			res.OutputTokens = env.Part.Tokens.Output
			res.Cost = formatCost(env.Part.Cost)
		}
	}

	if errMsg != "" {
		return Result{Response: NoResponse, Success: false, Error: errMsg}
	}

	if haveResult && termIsErr {
		res.Success = false
		res.Error = res.Response
	}
	if exitCode != 0 {
		res.Success = false
		if res.Error == "" {
			res.Error = tailError(output, exitCode)
		}
	}
	return res
}

// errorMessage pulls the best available message out of an error event. The
// error field may be a plain string or an object with a message.
func errorMessage(env terminalEnvelope) string {
	if env.Message != "" {
		return env.Message
	}
	if len(env.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(env.Error, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(env.Error, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return strings.TrimSpace(string(env.Error))
}

// tailError builds a failure message from the last few non-empty lines.
func tailError(output string, exitCode int) string {
	lines := strings.Split(output, "\n")
	tail := make([]string, 0, errorTailLines)
	for i := len(lines) - 1; i >= 0 && len(tail) < errorTailLines; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			tail = append([]string{trimmed}, tail...)
		}
	}
	if len(tail) == 0 {
		return fmt.Sprintf("process exited with code %d", exitCode)
	}
	return fmt.Sprintf("process exited with code %d: %s", exitCode, strings.Join(tail, "\n"))
}

func formatCost(costUSD float64) string {
	if costUSD <= 0 {
		return ""
	}
	return fmt.Sprintf("$%.4f", costUSD)
}
