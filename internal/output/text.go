package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lbsa71/nocomments/internal/engine"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct {
	// Color enables ANSI styling; the CLI switches it on for terminals.
	Color bool
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

func (t *TextWriter) Write(w io.Writer, report *engine.Report) error {
	ew := &errWriter{w: w}

	ew.printf("%s %s — comment audit\n", t.bold(engine.Tool), report.Version)
	if report.Root != "" {
		ew.printf("Root: %s\n", report.Root)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Comments: %d examined across %d files — %d flagged\n",
		report.Summary.Comments, report.Summary.Files, report.Summary.Flagged)
	ew.println(strings.Repeat("─", 60))

	if report.Summary.Flagged == 0 {
		ew.println("\nEvery comment is authorized. Looks good!")
		return ew.err
	}

	// Findings arrive sorted by path then offset; group by path.
	width := maxTextWidth(report.Findings)
	lastPath := ""
	for _, f := range report.Findings {
		if f.Location.Path != lastPath {
			lastPath = f.Location.Path
			ew.printf("\n%s\n", t.bold(f.Location.Path))
		}
		ew.printf("  %4d:  %s  %s\n",
			f.Location.StartLine,
			t.yellow(runewidth.FillRight(oneLine(f.Text), width)),
			t.dim("fixes: "+strings.Join(f.Fixes, ", ")),
		)
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms (scan: %dms)\n",
		report.Timing.TotalMs, report.Timing.ScanMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func (t *TextWriter) bold(s string) string   { return t.style(ansiBold, s) }
func (t *TextWriter) yellow(s string) string { return t.style(ansiYellow, s) }
func (t *TextWriter) dim(s string) string    { return t.style(ansiDim, s) }

func (t *TextWriter) style(code, s string) string {
	if !t.Color {
		return s
	}
	return code + s + ansiReset
}

// maxTextWidth sizes the comment column so the fix column lines up, capped
// so one pathological comment cannot blow up the layout.
func maxTextWidth(findings []engine.Finding) int {
	const limit = 60
	width := 0
	for _, f := range findings {
		if w := runewidth.StringWidth(oneLine(f.Text)); w > width {
			width = w
		}
	}
	if width > limit {
		width = limit
	}
	return width
}

func oneLine(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return runewidth.Truncate(text, 60, "…")
}
