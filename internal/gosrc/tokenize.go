package gosrc

import (
	"fmt"
	"go/scanner"
	"go/token"
	"os"
	"strings"

	"github.com/lbsa71/nocomments/internal/comment"
)

// Load reads a Go source file and tokenizes it into the engine's file model.
func Load(path string) (comment.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return comment.File{}, fmt.Errorf("reading source file: %w", err)
	}
	return Tokenize(path, src), nil
}

// Tokenize turns Go source into an ordered trivia stream with a declaration
// anchor and line table. Scanning is tolerant: invalid source still yields a
// best-effort stream rather than an error, since classification is defined
// for any input.
func Tokenize(path string, src []byte) comment.File {
	fset := token.NewFileSet()
	tf := fset.AddFile(path, fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(tf, src, func(token.Position, string) {}, scanner.ScanComments)

	var trivia []comment.Trivia
	anchor := comment.NoAnchor
	prevEnd := 0

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		// Automatic semicolons are synthetic, not source tokens.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		offset := tf.Offset(pos)
		text := lit
		if text == "" {
			text = tok.String()
		}
		end := offset + len(text)
		if offset < prevEnd {
			continue
		}

		trivia = appendWhitespace(trivia, string(src[prevEnd:offset]), prevEnd)
		trivia = append(trivia, comment.Trivia{
			Kind:  tokenTriviaKind(tok),
			Start: offset,
			End:   end,
			Text:  text,
		})
		prevEnd = end

		if anchor == comment.NoAnchor && isAnchorToken(tok) {
			anchor = offset
		}
	}
	trivia = appendWhitespace(trivia, string(src[prevEnd:]), prevEnd)

	markDocComments(trivia)

	return comment.File{
		Path:       path,
		Trivia:     trivia,
		Anchor:     anchor,
		LineStarts: lineStarts(src),
	}
}

func tokenTriviaKind(tok token.Token) comment.TriviaKind {
	if tok != token.COMMENT {
		return comment.TriviaToken
	}
	return comment.TriviaLineComment
}

// appendWhitespace splits an inter-token gap into horizontal-space runs and
// individual newlines, so block resolution and the remove fix can reason
// about line boundaries.
func appendWhitespace(trivia []comment.Trivia, gap string, base int) []comment.Trivia {
	runStart := -1
	flush := func(end int) []comment.Trivia {
		if runStart >= 0 {
			trivia = append(trivia, comment.Trivia{
				Kind:  comment.TriviaSpace,
				Start: base + runStart,
				End:   base + end,
				Text:  gap[runStart:end],
			})
			runStart = -1
		}
		return trivia
	}

	for i := 0; i < len(gap); i++ {
		if gap[i] == '\n' {
			trivia = flush(i)
			trivia = append(trivia, comment.Trivia{
				Kind:  comment.TriviaNewline,
				Start: base + i,
				End:   base + i + 1,
				Text:  "\n",
			})
			continue
		}
		if runStart < 0 {
			runStart = i
		}
	}
	return flush(len(gap))
}

func isAnchorToken(tok token.Token) bool {
	switch tok {
	case token.PACKAGE, token.IMPORT, token.TYPE:
		return true
	default:
		return false
	}
}

// declaration keywords a doc comment can attach to.
func isDeclKeyword(text string) bool {
	switch text {
	case "package", "import", "func", "type", "const", "var":
		return true
	default:
		return false
	}
}

// markDocComments retags comments that sit directly above a declaration
// (own line, at most one newline of separation, chained through adjacent
// comment lines) as doc comments. Block comments are recognized by their
// delimiter on the way.
func markDocComments(trivia []comment.Trivia) {
	for i := range trivia {
		if trivia[i].Kind == comment.TriviaLineComment && strings.HasPrefix(trivia[i].Text, "/*") {
			trivia[i].Kind = comment.TriviaBlockComment
		}
	}

	for i := len(trivia) - 1; i >= 0; i-- {
		t := trivia[i]
		if t.Kind != comment.TriviaLineComment && t.Kind != comment.TriviaBlockComment {
			continue
		}
		if !ownLine(trivia, i) {
			continue
		}

		newlines := 0
		j := i + 1
		for j < len(trivia) && trivia[j].IsBlank() {
			if trivia[j].Kind == comment.TriviaNewline {
				newlines++
			}
			j++
		}
		if newlines > 1 || j >= len(trivia) {
			continue
		}

		next := trivia[j]
		attached := next.Kind == comment.TriviaDocComment ||
			(next.Kind == comment.TriviaToken && isDeclKeyword(next.Text))
		if attached {
			trivia[i].Kind = comment.TriviaDocComment
		}
	}
}

// ownLine reports whether only whitespace precedes trivia[i] on its line.
func ownLine(trivia []comment.Trivia, i int) bool {
	for k := i - 1; k >= 0; k-- {
		switch trivia[k].Kind {
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

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
