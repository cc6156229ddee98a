package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lbsa71/nocomments/internal/engine"
)

func TestJSONWriter(t *testing.T) {
	report := &engine.Report{
		Tool:    "nocomments",
		Version: "0.1.0",
		Root:    "/tmp/repo",
		Summary: engine.Summary{Files: 1, Comments: 3, Flagged: 1},
		Findings: []engine.Finding{
			{
				RuleID:  engine.RuleID,
				Message: `comment is not an authorized annotation: "increment i"`,
				Text:    "// increment i",
				Location: engine.Location{
					Path:      "main.go",
					StartLine: 4,
					EndLine:   4,
					Start:     30,
					End:       44,
				},
				Fixes: []string{"remove", "annotate"},
			},
		},
	}

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	// Verify it's valid JSON
	var parsed engine.Report
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if parsed.Tool != "nocomments" {
		t.Errorf("Tool = %q, want %q", parsed.Tool, "nocomments")
	}
	if parsed.Summary.Flagged != 1 {
		t.Errorf("Flagged = %d, want 1", parsed.Summary.Flagged)
	}
	if len(parsed.Findings) != 1 {
		t.Fatalf("Findings count = %d, want 1", len(parsed.Findings))
	}
	if parsed.Findings[0].RuleID != engine.RuleID {
		t.Errorf("Finding rule = %q, want %q", parsed.Findings[0].RuleID, engine.RuleID)
	}
	if parsed.Findings[0].Location.StartLine != 4 {
		t.Errorf("Finding start line = %d, want 4", parsed.Findings[0].Location.StartLine)
	}
	if len(parsed.Findings[0].Fixes) != 2 {
		t.Errorf("Finding fixes = %v, want 2 entries", parsed.Findings[0].Fixes)
	}
}
