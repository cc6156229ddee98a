package engine

import (
	"github.com/lbsa71/nocomments/internal/comment"
	"github.com/lbsa71/nocomments/internal/rewrite"
	"github.com/lbsa71/nocomments/internal/rules"
)

// AnalyzeFile classifies every comment in the file and returns a finding for
// each flagged one, in source order. Verdicts are derived fresh; nothing is
// cached between calls.
func AnalyzeFile(f comment.File, rs rules.RuleSet) []Finding {
	// Per-file disable is file scope: decided once, no diagnostics at all.
	if rs.DisabledForFile {
		return nil
	}

	fc := NewFileContext(f)

	var findings []Finding
	for _, span := range f.Comments() {
		if v := Classify(span, fc, rs); v.Authorized {
			continue
		}

		var fixIDs []string
		for _, fix := range rewrite.ProposeFixes(span, f, rs) {
			fixIDs = append(fixIDs, fix.ID)
		}

		findings = append(findings, Finding{
			RuleID:  RuleID,
			Message: Message(span),
			Text:    span.Text,
			Location: Location{
				Path:      f.Path,
				StartLine: f.LineAt(span.Start),
				EndLine:   f.LineAt(span.End - 1),
				Start:     span.Start,
				End:       span.End,
			},
			Fixes: fixIDs,
		})
	}

	return findings
}

// CountComments returns how many comment spans the file carries, doc
// comments included. Used for run summaries.
func CountComments(f comment.File) int {
	return len(f.Comments())
}
