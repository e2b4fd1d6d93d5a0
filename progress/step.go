package progress

// Step is the canonical, backend-agnostic phase label derived from one
// classified output line.
type Step string

const (
	StepThinking     Step = "Thinking"
	StepReadingCode  Step = "Reading code"
	StepImplementing Step = "Implementing"
	StepWritingTests Step = "Writing tests"
	StepRunning      Step = "Running command"
	StepLinting      Step = "Linting"
	StepTesting      Step = "Testing"
	StepCommitting   Step = "Committing"
	StepStaging      Step = "Staging"
	StepPlanning     Step = "Planning"
)

// TodoStatus is the lifecycle state of a single todo item.
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
)

// TodoItem is one entry of the agent-reported task checklist.
type TodoItem struct {
	ID      string     `json:"id"`
	Content string     `json:"content"`
	Status  TodoStatus `json:"status"`
}

// DiffInfo is a bounded before/after preview of a file change. The two sides
// are independent head-of-content sequences, not aligned hunks.
type DiffInfo struct {
	FilePath  string   `json:"filePath"`
	StartLine int      `json:"startLine,omitempty"`
	OldLines  []string `json:"oldLines,omitempty"`
	NewLines  []string `json:"newLines,omitempty"`
}

// Event is the unit of progress emitted per classified line. ToolOutput and
// Diff may both be set; the display layer prefers the diff when present.
type Event struct {
	Step       Step       `json:"step"`
	ToolOutput string     `json:"toolOutput,omitempty"`
	Diff       *DiffInfo  `json:"diff,omitempty"`
	Todos      []TodoItem `json:"todos,omitempty"`
}
