// Package config loads and merges nocomments configuration.
//
// Precedence (highest to lowest):
//  1. CLI flag overrides
//  2. Environment variables (NOCOMMENTS_MARKERS, NOCOMMENTS_SUPPRESSIONS, ...)
//  3. Project file (.nocomments.yml, .nocomments.yaml, or .nocomments.toml,
//     searched upward from the working directory)
//  4. Built-in defaults
//
// The merged result is handed to the engine as the flat key/value mapping
// that internal/rules resolves; rule resolution itself never fails, so a
// broken setting degrades to defaults instead of stopping a run.
package config
