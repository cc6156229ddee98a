package engine

import (
	"strings"

	"github.com/lbsa71/nocomments/internal/comment"
	"github.com/lbsa71/nocomments/internal/rules"
)

// InlineDisable is the directive literal that unconditionally exempts the
// comment carrying it. Matched case-insensitively after stripping delimiters
// and surrounding whitespace; no toggle can switch it off.
const InlineDisable = "nocomments:disable"

// Classify judges one comment span against the ordered rule chain.
// First match wins; the ordering is deliberate, not incidental.
func Classify(span comment.Span, fc FileContext, rs rules.RuleSet) Verdict {
	// 1. Machine documentation is always authorized.
	if span.Kind == comment.Doc && rs.DocExclusion {
		return Allowed(CategoryDoc)
	}

	// 2. Per-file disable silences the whole file.
	if rs.DisabledForFile {
		return Allowed(CategoryInlineDisabled)
	}

	body := span.Body()

	// 3. The inline-disable directive beats every other rule and cannot
	// itself be configured away.
	if len(body) >= len(InlineDisable) && strings.EqualFold(body[:len(InlineDisable)], InlineDisable) {
		return Allowed(CategoryInlineDisabled)
	}

	// 4. Markers: plain substring containment against the raw text,
	// case-sensitive and intentionally permissive (no word boundary).
	if rs.Markers {
		for _, m := range rs.MarkerPatterns {
			if strings.Contains(span.Text, m) {
				return Allowed(CategoryMarker)
			}
		}
	}

	// 5. Suppression keywords, punctuation-tolerant. Near-miss punctuation
	// is accepted here so the normalize fix can repair it.
	if rs.Suppressions {
		if _, ok := comment.MatchSuppression(span.Text, rs.SuppressionPatterns); ok {
			return Allowed(CategorySuppression)
		}
	}

	// 6. License banners are a block-level property: the whole block must
	// precede the anchor and one member must carry a license pattern.
	if rs.LicenseBanner {
		if block, ok := fc.BlockOf(span.Start); ok && isLicenseBanner(block, fc.Anchor, rs) {
			return Allowed(CategoryLicenseBanner)
		}
	}

	return Flagged
}

// isLicenseBanner reports whether a block qualifies as a license banner:
// entirely before the declaration anchor (a file without an anchor is
// banner-eligible throughout) with at least one member containing a license
// pattern, case-insensitively. A hit authorizes every member of the block.
func isLicenseBanner(block comment.CommentBlock, anchor int, rs rules.RuleSet) bool {
	if anchor != comment.NoAnchor && block.End() > anchor {
		return false
	}

	for _, s := range block.Spans {
		lower := strings.ToLower(s.Text)
		for _, p := range rs.LicensePatterns {
			if strings.Contains(lower, strings.ToLower(p)) {
				return true
			}
		}
	}
	return false
}
