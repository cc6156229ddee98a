package rewrite

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lbsa71/nocomments/internal/comment"
	"github.com/lbsa71/nocomments/internal/rules"
)

// Fix identifiers, stable across runs.
const (
	FixRemove    = "remove"
	FixAnnotate  = "annotate"
	FixNormalize = "normalize"
)

// Edit is an immutable old-span to new-text description. Start and End are
// byte offsets into the document the edit was proposed against; an empty
// NewText deletes the range.
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Fix is one named rewrite proposal for a flagged comment.
type Fix struct {
	ID    string
	Label string
	Edits []Edit
}

// ProposeFixes returns the rewrites applicable to a flagged comment, in
// stable order. Only call it for flagged spans: annotate assumes the comment
// carries no marker yet.
func ProposeFixes(span comment.Span, file comment.File, rs rules.RuleSet) []Fix {
	fixes := []Fix{
		Remove(span, file),
		Annotate(span, rs),
	}
	if fix, ok := Normalize(span, rs); ok {
		fixes = append(fixes, fix)
	}
	return fixes
}

// Remove deletes the comment span. A comment alone on its line goes together
// with its leading indentation and trailing newline, so no blank line is
// left behind; a comment trailing code also takes the spaces separating it
// from the code. Re-applying to the result is a no-op since no matching span
// remains.
func Remove(span comment.Span, file comment.File) Fix {
	start, end := span.Start, span.End

	idx := triviaIndex(file.Trivia, span.Start)
	if idx >= 0 {
		ownLine := startsLine(file.Trivia, idx)

		// Absorb trailing horizontal whitespace, then the line's
		// newline when the comment ends the line.
		j := idx + 1
		for j < len(file.Trivia) && file.Trivia[j].Kind == comment.TriviaSpace {
			j++
		}
		if ownLine && j < len(file.Trivia) && file.Trivia[j].Kind == comment.TriviaNewline {
			end = file.Trivia[j].End
		}

		// Absorb the whitespace between preceding code and a trailing
		// comment, or the indentation of a comment-only line.
		if idx > 0 && file.Trivia[idx-1].Kind == comment.TriviaSpace {
			start = file.Trivia[idx-1].Start
		}
	}

	return Fix{
		ID:    FixRemove,
		Label: "Remove comment",
		Edits: []Edit{{Start: start, End: end}},
	}
}

// Annotate rewrites the comment body to carry the default intent marker
// right after the opening delimiter, re-trimming internal whitespace.
func Annotate(span comment.Span, rs rules.RuleSet) Fix {
	return Fix{
		ID:    FixAnnotate,
		Label: "Keep with " + rs.DefaultMarker() + " marker",
		Edits: []Edit{{
			Start:   span.Start,
			End:     span.End,
			NewText: AnnotateText(span.Text, rs.DefaultMarker()),
		}},
	}
}

// AnnotateText inserts the marker after the opening delimiter:
// "//   body  " becomes "// MARKER body", "/*  body  */" becomes
// "/* MARKER body */".
func AnnotateText(text, marker string) string {
	if strings.HasPrefix(text, "/*") {
		inner := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
		inner = strings.Trim(inner, " \t")
		if inner == "" {
			return "/* " + marker + " */"
		}
		return "/* " + marker + " " + inner + " */"
	}

	body := strings.Trim(strings.TrimLeft(text, "/"), " \t")
	if body == "" {
		return "// " + marker
	}
	return "// " + marker + " " + body
}

// Normalize repairs near-miss suppression punctuation: the punctuation
// character after the keyword becomes a colon and the keyword is
// upper-cased. Offered only when the comment matched a suppression keyword
// followed by non-colon punctuation.
func Normalize(span comment.Span, rs rules.RuleSet) (Fix, bool) {
	text, ok := NormalizeText(span.Text, rs.SuppressionPatterns)
	if !ok {
		return Fix{}, false
	}
	return Fix{
		ID:    FixNormalize,
		Label: "Normalize suppression punctuation",
		Edits: []Edit{{Start: span.Start, End: span.End, NewText: text}},
	}, true
}

// NormalizeText returns the normalized comment text and whether
// normalization applies. Already colon-terminated keywords, keywords
// followed by whitespace or nothing, and non-matching comments all return
// unchanged text and false.
func NormalizeText(text string, patterns []string) (string, bool) {
	m, ok := comment.MatchSuppression(text, patterns)
	if !ok {
		return text, false
	}
	if m.Next == ':' || m.Next == 0 || !unicode.IsPunct(rune(m.Next)) {
		return text, false
	}

	kwEnd := m.Offset + len(m.Keyword)
	return text[:m.Offset] + strings.ToUpper(text[m.Offset:kwEnd]) + ":" + text[kwEnd+1:], true
}

// IsNormalizable reports whether NormalizeText would change the text.
func IsNormalizable(text string, patterns []string) bool {
	_, ok := NormalizeText(text, patterns)
	return ok
}

// Apply replays a set of edits against the document text they were proposed
// for, producing the new document. Edits must not overlap.
func Apply(src string, edits []Edit) string {
	if len(edits) == 0 {
		return src
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	out := src
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(out) || e.Start > e.End {
			continue
		}
		out = out[:e.Start] + e.NewText + out[e.End:]
	}
	return out
}

// triviaIndex locates the trivia entry starting at the given offset.
func triviaIndex(trivia []comment.Trivia, start int) int {
	for i, t := range trivia {
		if t.Start == start {
			return i
		}
	}
	return -1
}

// startsLine reports whether nothing but whitespace precedes the trivia on
// its line.
func startsLine(trivia []comment.Trivia, idx int) bool {
	for i := idx - 1; i >= 0; i-- {
		switch trivia[i].Kind {
		case comment.TriviaSpace:
			continue
		case comment.TriviaNewline:
			return true
		default:
			return false
		}
	}
	return true
}
