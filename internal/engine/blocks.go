package engine

import (
	"github.com/lbsa71/nocomments/internal/comment"
)

// ResolveBlocks groups the comment spans of a trivia stream into maximal
// contiguous blocks. Whitespace and newlines never terminate a block; any
// real token does. Doc comments keep a block contiguous but do not become
// members, since they are judged (and excluded) on their own.
//
// Single linear pass over the trivia, no backtracking.
func ResolveBlocks(trivia []comment.Trivia) []comment.CommentBlock {
	var blocks []comment.CommentBlock
	var current comment.CommentBlock

	flush := func() {
		if len(current.Spans) > 0 {
			blocks = append(blocks, current)
			current = comment.CommentBlock{}
		}
	}

	for _, t := range trivia {
		switch {
		case t.IsBlank():
			// Blocks span blank lines.
		case t.Kind == comment.TriviaDocComment:
			// Boundary-neutral, not a member.
		case t.IsComment():
			span, _ := t.CommentSpan()
			current.Spans = append(current.Spans, span)
		default:
			flush()
		}
	}
	flush()

	return blocks
}

// FileContext is the per-file state the classifier consults: the resolved
// blocks and the declaration anchor.
type FileContext struct {
	Blocks []comment.CommentBlock
	Anchor int
}

// NewFileContext derives the classification context for a file.
func NewFileContext(f comment.File) FileContext {
	return FileContext{
		Blocks: ResolveBlocks(f.Trivia),
		Anchor: f.Anchor,
	}
}

// BlockOf returns the block containing the span starting at the given
// offset. The second return is false for spans outside every block, doc
// comments included.
func (fc FileContext) BlockOf(start int) (comment.CommentBlock, bool) {
	for _, b := range fc.Blocks {
		if b.Contains(start) {
			return b, true
		}
	}
	return comment.CommentBlock{}, false
}
