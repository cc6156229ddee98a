package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lbsa71/nocomments/internal/engine"
)

func sampleReport() *engine.Report {
	return &engine.Report{
		Tool:    "nocomments",
		Version: "0.1.0",
		Root:    "/tmp/repo",
		Summary: engine.Summary{Files: 2, Comments: 7, Flagged: 3},
		Findings: []engine.Finding{
			{
				RuleID:   engine.RuleID,
				Message:  `comment is not an authorized annotation: "increment i"`,
				Text:     "// increment i",
				Location: engine.Location{Path: "main.go", StartLine: 4, EndLine: 4, Start: 30, End: 44},
				Fixes:    []string{"remove", "annotate"},
			},
			{
				RuleID:   engine.RuleID,
				Message:  `comment is not an authorized annotation: "old loop"`,
				Text:     "/* old\nloop */",
				Location: engine.Location{Path: "main.go", StartLine: 9, EndLine: 10, Start: 80, End: 94},
				Fixes:    []string{"remove", "annotate"},
			},
			{
				RuleID:   engine.RuleID,
				Message:  `comment is not an authorized annotation: "todo, tidy"`,
				Text:     "// todo, tidy",
				Location: engine.Location{Path: "util.go", StartLine: 2, EndLine: 2, Start: 12, End: 25},
				Fixes:    []string{"remove", "annotate", "normalize"},
			},
		},
		Timing: engine.Timing{ScanMs: 4, TotalMs: 6},
	}
}

func TestTextWriter_NoFindings(t *testing.T) {
	report := &engine.Report{
		Tool:    "nocomments",
		Version: "0.1.0",
		Summary: engine.Summary{Files: 1, Comments: 5, Flagged: 0},
	}

	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "5 examined across 1 files") {
		t.Error("Output should show the summary counts")
	}
	if !strings.Contains(out, "Every comment is authorized") {
		t.Error("Output should report a clean run")
	}
}

func TestTextWriter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "3 flagged") {
		t.Error("Output should show the flagged count")
	}
	if !strings.Contains(out, "main.go") || !strings.Contains(out, "util.go") {
		t.Error("Output should group findings under each path")
	}
	if strings.Count(out, "main.go") != 1 {
		t.Error("Path header should appear once per file")
	}
	if !strings.Contains(out, "// increment i") {
		t.Error("Output should include the comment text")
	}
	if !strings.Contains(out, "fixes: remove, annotate, normalize") {
		t.Error("Output should list the applicable fixes")
	}
	if strings.Contains(out, "\n/* old") {
		t.Error("Multi-line comment text should be collapsed to one line")
	}
	if !strings.Contains(out, "Completed in 6ms (scan: 4ms)") {
		t.Error("Output should include timing")
	}
}

func TestTextWriter_ColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{Color: false}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("Output should not contain ANSI escapes when color is off")
	}
}

func TestTextWriter_ColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{Color: true}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if !strings.Contains(buf.String(), ansiBold) {
		t.Error("Output should contain ANSI escapes when color is on")
	}
}
