package progress

import (
	"strings"
	"testing"
)

func TestSynthesizeDiff_BothEmpty(t *testing.T) {
	if d := SynthesizeDiff("/a/b.go", "", ""); d != nil {
		t.Fatalf("expected nil diff, got %+v", d)
	}
}

func TestSynthesizeDiff_WritePreview(t *testing.T) {
	d := SynthesizeDiff("/a/b.go", "", "package main\n\nfunc main() {}\n")
	if d == nil {
		t.Fatal("expected diff")
	}
	if d.FilePath != "/a/b.go" {
		t.Errorf("FilePath = %q", d.FilePath)
	}
	if len(d.OldLines) != 0 {
		t.Errorf("expected no old lines, got %v", d.OldLines)
	}
	if len(d.NewLines) != DefaultDiffLines {
		t.Errorf("NewLines count = %d, want %d", len(d.NewLines), DefaultDiffLines)
	}
	if d.NewLines[0] != "package main" {
		t.Errorf("NewLines[0] = %q", d.NewLines[0])
	}
}

func TestSynthesizeDiff_LineBound(t *testing.T) {
	content := strings.Repeat("line\n", 50)
	d := SynthesizeDiff("f.go", content, content)
	if d == nil {
		t.Fatal("expected diff")
	}
	if len(d.OldLines) > DefaultDiffLines || len(d.NewLines) > DefaultDiffLines {
		t.Fatalf("bound exceeded: old=%d new=%d", len(d.OldLines), len(d.NewLines))
	}
}

func TestSynthesizeDiff_WidthBound(t *testing.T) {
	long := strings.Repeat("x", 500)
	d := SynthesizeDiff("f.go", long, long+"\n"+long)
	if d == nil {
		t.Fatal("expected diff")
	}
	for _, lines := range [][]string{d.OldLines, d.NewLines} {
		for _, line := range lines {
			if len(line) > diffMaxWidth {
				t.Fatalf("line width %d exceeds %d", len(line), diffMaxWidth)
			}
			if !strings.HasSuffix(line, "...") {
				t.Errorf("truncated line should end with ellipsis: %q", line)
			}
		}
	}
}
