// Package comment defines the span and trivia model the classification
// engine operates on.
//
// A host tokenizer (see internal/gosrc for the Go one) turns raw source into
// an ordered stream of [Trivia]: comments, whitespace runs, and the tokens in
// between. Comments carry their raw text including delimiters. The engine
// never re-reads source text; everything it needs is in the trivia stream,
// the declaration anchor, and the line table.
package comment
