// Nocomments is a CLI that audits the comments of a Go source tree.
//
// It classifies every comment as machine documentation, an intentional human
// annotation, a recognized suppression marker, or a file-level license
// banner, flags everything else, and can rewrite flagged comments in place,
// with deterministic exit codes suitable for CI gating and git hooks.
//
// Usage:
//
//	nocomments check                  # report unauthorized comments
//	nocomments fix --apply annotate   # keep flagged comments, marked as intentional
//	nocomments fix --apply remove --write
//	nocomments config init            # write a starter .nocomments.yml
//	nocomments hook install           # install the pre-commit hook
//
// See https://github.com/lbsa71/nocomments for full documentation.
package main
