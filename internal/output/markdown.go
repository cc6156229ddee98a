package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lbsa71/nocomments/internal/engine"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *engine.Report) error {
	fmt.Fprintf(w, "## NoComments Audit\n\n")

	fmt.Fprintf(w, "| Metric | Count |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Files    | %d |\n", report.Summary.Files)
	fmt.Fprintf(w, "| Comments | %d |\n", report.Summary.Comments)
	fmt.Fprintf(w, "| **Flagged** | **%d** |\n\n", report.Summary.Flagged)

	if report.Summary.Flagged == 0 {
		fmt.Fprintln(w, "Every comment is authorized. :white_check_mark:")
		return nil
	}

	// Findings arrive sorted by path then offset; one collapsible section
	// per file.
	byPath := groupByPath(report.Findings)
	for _, path := range orderedPaths(report.Findings) {
		findings := byPath[path]
		fmt.Fprintf(w, "<details>\n<summary><code>%s</code> (%d)</summary>\n\n", path, len(findings))
		for _, f := range findings {
			fmt.Fprintf(w, "- **line %d** — %s\n", f.Location.StartLine, f.Message)
			fmt.Fprintf(w, "  ```go\n  %s\n  ```\n", strings.ReplaceAll(f.Text, "\n", "\n  "))
			if len(f.Fixes) > 0 {
				fmt.Fprintf(w, "  _Fixes: %s_\n", strings.Join(f.Fixes, ", "))
			}
		}
		fmt.Fprintf(w, "\n</details>\n\n")
	}

	fmt.Fprintf(w, "*Audited in %dms (scan: %dms)*\n",
		report.Timing.TotalMs, report.Timing.ScanMs)

	return nil
}

func groupByPath(findings []engine.Finding) map[string][]engine.Finding {
	m := make(map[string][]engine.Finding)
	for _, f := range findings {
		m[f.Location.Path] = append(m[f.Location.Path], f)
	}
	return m
}

func orderedPaths(findings []engine.Finding) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, f := range findings {
		if !seen[f.Location.Path] {
			seen[f.Location.Path] = true
			paths = append(paths, f.Location.Path)
		}
	}
	return paths
}
