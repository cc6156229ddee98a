// Package rules resolves raw key/value settings into the validated RuleSet
// the classifier consults.
//
// Resolution is total: unknown keys are ignored, malformed values fall back
// to defaults, and an empty pattern list keeps the built-in list for that
// family. A pattern family only stops matching when its enable toggle is
// switched off.
package rules
