// Package rewrite produces the fix proposals offered for flagged comments.
//
// Three rewrites exist: remove the comment, annotate it with the default
// intent marker, and normalize near-miss suppression punctuation to the
// canonical colon form. Each proposal is a pure text transform described as
// immutable span edits; the host (CLI, analyzer driver, editor) decides
// whether and when to apply them.
package rewrite
