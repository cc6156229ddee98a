package comment

import (
	"sort"
	"strings"
)

// Kind distinguishes the lexical forms a comment can take.
type Kind int

const (
	// Line is a //-style comment ending at the newline.
	Line Kind = iota
	// Block is a /* */-style comment.
	Block
	// Doc is a documentation comment attached to a declaration,
	// single- or multi-line.
	Doc
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Block:
		return "block"
	case Doc:
		return "doc"
	default:
		return "unknown"
	}
}

// Span is one lexical comment in the source. Start and End are byte offsets
// with Start < End; Text is the raw text including delimiters. Spans within
// one file are totally ordered by Start and never overlap.
type Span struct {
	Start int
	End   int
	Kind  Kind
	Text  string
}

// Body returns the comment text with delimiters and surrounding whitespace
// stripped. For line comments the leading // (or ///) goes; for block
// comments both /* and */ go.
func (s Span) Body() string {
	return StripDelimiters(s.Text)
}

// StripDelimiters removes comment delimiters and trims surrounding
// whitespace and tabs from raw comment text.
func StripDelimiters(text string) string {
	switch {
	case strings.HasPrefix(text, "//"):
		text = strings.TrimLeft(text, "/")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.Trim(text, " \t")
}

// TriviaKind classifies the non-semantic elements of a source file plus the
// tokens that separate them.
type TriviaKind int

const (
	// TriviaSpace is a run of horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a whitespace run containing at least one newline.
	TriviaNewline
	// TriviaLineComment is a //-style comment.
	TriviaLineComment
	// TriviaBlockComment is a /* */-style comment.
	TriviaBlockComment
	// TriviaDocComment is a documentation comment.
	TriviaDocComment
	// TriviaToken is any real token. Tokens terminate comment blocks.
	TriviaToken
)

// Trivia is one element of the tokenizer's output stream.
type Trivia struct {
	Kind  TriviaKind
	Start int
	End   int
	Text  string
}

// IsComment reports whether the trivia is any comment form.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment || t.Kind == TriviaDocComment
}

// IsBlank reports whether the trivia is pure whitespace.
func (t Trivia) IsBlank() bool {
	return t.Kind == TriviaSpace || t.Kind == TriviaNewline
}

// CommentSpan converts a comment trivia into its Span form.
// The second return is false for non-comment trivia.
func (t Trivia) CommentSpan() (Span, bool) {
	var kind Kind
	switch t.Kind {
	case TriviaLineComment:
		kind = Line
	case TriviaBlockComment:
		kind = Block
	case TriviaDocComment:
		kind = Doc
	default:
		return Span{}, false
	}
	return Span{Start: t.Start, End: t.End, Kind: kind, Text: t.Text}, true
}

// CommentBlock is a maximal run of comment spans separated only by whitespace
// and newlines. Doc comments keep a block contiguous but are not members.
type CommentBlock struct {
	Spans []Span
}

// Start returns the offset of the first span, or -1 for an empty block.
func (b CommentBlock) Start() int {
	if len(b.Spans) == 0 {
		return -1
	}
	return b.Spans[0].Start
}

// End returns the end offset of the last span, or -1 for an empty block.
func (b CommentBlock) End() int {
	if len(b.Spans) == 0 {
		return -1
	}
	return b.Spans[len(b.Spans)-1].End
}

// Contains reports whether a span starting at the given offset is a member.
func (b CommentBlock) Contains(start int) bool {
	for _, s := range b.Spans {
		if s.Start == start {
			return true
		}
	}
	return false
}

// NoAnchor marks a file with no declaration anchor: no namespace-like
// grouping, import directive, or type declaration. The whole file counts as
// preceding the anchor then.
const NoAnchor = -1

// File is everything the engine needs to know about one source file.
type File struct {
	Path string
	// Trivia is the full ordered trivia stream, comments and tokens alike.
	Trivia []Trivia
	// Anchor is the offset of the first declaration construct,
	// or NoAnchor.
	Anchor int
	// LineStarts holds the byte offset of each line start, ascending.
	// Offset 0 is always a line start for a non-empty file.
	LineStarts []int
}

// LineAt returns the 1-based line number containing the given offset.
// With no line table it returns 1.
func (f File) LineAt(offset int) int {
	if len(f.LineStarts) == 0 {
		return 1
	}
	i := sort.SearchInts(f.LineStarts, offset+1)
	return i
}

// Comments returns all comment spans in the trivia stream, in source order.
func (f File) Comments() []Span {
	var spans []Span
	for _, t := range f.Trivia {
		if s, ok := t.CommentSpan(); ok {
			spans = append(spans, s)
		}
	}
	return spans
}
