package comment

import (
	"strings"
	"unicode"
)

// SuppressionMatch describes where a suppression keyword matched within raw
// comment text.
type SuppressionMatch struct {
	// Keyword is the bare configured keyword, trailing colon removed.
	Keyword string
	// Offset is the byte offset of the keyword within the raw text.
	Offset int
	// Next is the byte immediately following the keyword, or zero at the
	// end of the comment body.
	Next byte
}

// MatchSuppression reports whether the comment's normalized body starts,
// case-insensitively, with one of the given suppression keywords (patterns
// with a trailing colon are matched on the bare keyword). The character
// after the keyword may be anything except an alphanumeric continuation:
// "TODO:", "TODO;" and a bare trailing "TODO" all match, "TODOLIST" never
// does.
func MatchSuppression(text string, patterns []string) (SuppressionMatch, bool) {
	body := StripDelimiters(text)
	if body == "" {
		return SuppressionMatch{}, false
	}

	for _, p := range patterns {
		bare := strings.TrimSuffix(p, ":")
		if bare == "" || len(body) < len(bare) {
			continue
		}
		if !strings.EqualFold(body[:len(bare)], bare) {
			continue
		}

		var next byte
		if len(body) > len(bare) {
			next = body[len(bare)]
			if isAlphanumeric(next) {
				continue
			}
		}

		// The body is a trimmed view into the raw text, so the first
		// occurrence of its keyword prefix is the keyword itself.
		offset := strings.Index(text, body[:len(bare)])
		if offset < 0 {
			offset = 0
		}

		return SuppressionMatch{Keyword: bare, Offset: offset, Next: next}, true
	}

	return SuppressionMatch{}, false
}

func isAlphanumeric(b byte) bool {
	r := rune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
