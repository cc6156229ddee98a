// Package gosrc adapts Go source files to the engine's trivia model.
//
// It drives go/scanner in comment-scanning mode and reconstructs the full
// trivia stream: whitespace runs, newlines, comments, and the tokens between
// them. Comments sitting directly above a declaration are tagged as doc
// comments; the package clause (or, failing that, the first import or type
// keyword) becomes the declaration anchor used for license-banner
// eligibility.
package gosrc
