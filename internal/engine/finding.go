package engine

import (
	"fmt"

	"github.com/lbsa71/nocomments/internal/comment"
)

// RuleID is the fixed diagnostic identifier carried by every finding.
// Severity mapping for it is a host concern.
const RuleID = "nocomments/unauthorized-comment"

// Location is where a finding was detected.
type Location struct {
	Path      string `json:"path"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// Finding is one flagged comment, ready for reporting.
type Finding struct {
	RuleID   string   `json:"ruleId"`
	Message  string   `json:"message"`
	Text     string   `json:"text"`
	Location Location `json:"location"`
	// Fixes lists the identifiers of the rewrites applicable to this
	// comment, in proposal order.
	Fixes []string `json:"fixes,omitempty"`
}

// Message renders the fixed human-readable diagnostic template for a
// flagged span.
func Message(span comment.Span) string {
	return fmt.Sprintf("comment is not an authorized annotation: %q", truncate(span.Body(), 60))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// Summary counts the outcome of a run.
type Summary struct {
	Files    int `json:"files"`
	Comments int `json:"comments"`
	Flagged  int `json:"flagged"`
}

// Timing holds run performance metrics.
type Timing struct {
	ScanMs  int64 `json:"scanMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the top-level output of a run across files.
type Report struct {
	Tool     string    `json:"tool"`
	Version  string    `json:"version"`
	Root     string    `json:"root,omitempty"`
	Summary  Summary   `json:"summary"`
	Findings []Finding `json:"findings"`
	Timing   Timing    `json:"timing"`
}
