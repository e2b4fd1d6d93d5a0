package progress

import "strings"

const (
	// DefaultDiffLines bounds how many lines each side of a preview keeps.
	DefaultDiffLines = 4
	// diffMaxWidth bounds the width of every retained preview line.
	diffMaxWidth = 80
)

// SynthesizeDiff builds a bounded before/after preview from full file
// contents. It takes the head of each side rather than computing a real diff:
// no alignment, no hunk detection. Returns nil when both sides are empty.
func SynthesizeDiff(filePath, oldContent, newContent string) *DiffInfo {
	return synthesizeDiff(filePath, oldContent, newContent, DefaultDiffLines)
}

func synthesizeDiff(filePath, oldContent, newContent string, maxLines int) *DiffInfo {
	if oldContent == "" && newContent == "" {
		return nil
	}
	return &DiffInfo{
		FilePath: filePath,
		OldLines: previewLines(oldContent, maxLines),
		NewLines: previewLines(newContent, maxLines),
	}
}

func previewLines(content string, maxLines int) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > diffMaxWidth {
			line = line[:diffMaxWidth-3] + "..."
		}
		out[i] = line
	}
	return out
}
