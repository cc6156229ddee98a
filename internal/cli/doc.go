// Package cli wires together the Cobra command tree for the nocomments
// binary.
//
// It defines the root command and all subcommands (check, fix, config, hook,
// version), binds flags, reads configuration, invokes the classification
// engine, and returns deterministic exit codes for CI gating.
package cli
