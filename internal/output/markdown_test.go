package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lbsa71/nocomments/internal/engine"
)

func TestMarkdownWriter_Empty(t *testing.T) {
	report := &engine.Report{
		Tool:    "nocomments",
		Version: "0.1.0",
		Summary: engine.Summary{Files: 1, Comments: 4, Flagged: 0},
	}

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## NoComments Audit") {
		t.Error("Output should have the report header")
	}
	if !strings.Contains(out, "| Comments | 4 |") {
		t.Error("Output should have the metric table")
	}
	if !strings.Contains(out, ":white_check_mark:") {
		t.Error("Output should celebrate a clean run")
	}
	if strings.Contains(out, "<details>") {
		t.Error("Clean run should have no per-file sections")
	}
}

func TestMarkdownWriter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "| **Flagged** | **3** |") {
		t.Error("Output should show the flagged count in the table")
	}
	if strings.Count(out, "<details>") != 2 {
		t.Errorf("Output should have one section per file, got:\n%s", out)
	}
	if !strings.Contains(out, "<summary><code>main.go</code> (2)</summary>") {
		t.Error("File section should carry its finding count")
	}
	if !strings.Contains(out, "**line 4**") {
		t.Error("Finding should carry its start line")
	}
	if !strings.Contains(out, "```go") {
		t.Error("Comment text should be code-fenced")
	}
	if !strings.Contains(out, "_Fixes: remove, annotate, normalize_") {
		t.Error("Finding should list its fixes")
	}
	if !strings.Contains(out, "*Audited in 6ms (scan: 4ms)*") {
		t.Error("Output should carry timing")
	}
}

func TestMarkdownWriter_MultiLineText(t *testing.T) {
	report := &engine.Report{
		Tool:    "nocomments",
		Version: "0.1.0",
		Summary: engine.Summary{Files: 1, Comments: 1, Flagged: 1},
		Findings: []engine.Finding{
			{
				RuleID:   engine.RuleID,
				Message:  "comment is not an authorized annotation",
				Text:     "/* first\nsecond */",
				Location: engine.Location{Path: "a.go", StartLine: 1, EndLine: 2},
			},
		},
	}

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if !strings.Contains(buf.String(), "  /* first\n  second */") {
		t.Error("Multi-line comment should stay indented inside the fence")
	}
}

func TestGroupByPath(t *testing.T) {
	findings := sampleReport().Findings
	byPath := groupByPath(findings)
	if len(byPath["main.go"]) != 2 {
		t.Errorf("main.go group = %d findings, want 2", len(byPath["main.go"]))
	}
	if len(byPath["util.go"]) != 1 {
		t.Errorf("util.go group = %d findings, want 1", len(byPath["util.go"]))
	}

	paths := orderedPaths(findings)
	if len(paths) != 2 || paths[0] != "main.go" || paths[1] != "util.go" {
		t.Errorf("orderedPaths = %v, want [main.go util.go]", paths)
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown", "sarif"} {
		if _, err := GetWriter(format, Options{}); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("xml", Options{}); err == nil {
		t.Error("GetWriter(xml) should fail")
	}
}
