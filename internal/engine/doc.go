// Package engine contains the comment classification core.
//
// A file's trivia stream is first grouped into contiguous comment blocks
// (blocks.go), then each comment span is judged against the ordered rule
// chain (classify.go): doc exclusion, per-file disable, the inline-disable
// directive, markers, suppression keywords, license banners — first match
// wins, anything left over is flagged.
//
// AnalyzeFile turns flagged verdicts into Findings; Run fans file analysis
// out over a bounded worker pool and merges the results into a Report. The
// classification itself is pure: same spans, same rules, same verdicts, no
// shared state and no I/O.
package engine
