package rules

import (
	"strconv"
	"strings"
)

// Setting keys recognized by Resolve. Anything else in the raw mapping is
// ignored.
const (
	KeyMarkers             = "markers"
	KeySuppressions        = "suppressions"
	KeyLicensePatterns     = "license_patterns"
	KeyEnableMarkers       = "enable_markers"
	KeyEnableSuppressions  = "enable_suppressions"
	KeyEnableLicenseBanner = "enable_license_banner"
	KeyEnableDocExclusion  = "enable_doc_exclusion"
	KeyDisableFile         = "disable_file"
)

// FallbackMarker is inserted by the annotate fix when no configured marker
// ends in a colon.
const FallbackMarker = "HUMAN:"

// Built-in pattern lists. The bracket marker is the legacy single-marker
// form kept for backward compatibility.
var (
	defaultMarkers         = []string{"HUMAN:", "NOTE:", "INTENT:", "OK:", "[sic]"}
	defaultSuppressions    = []string{"TODO:", "HACK:", "FIXME:"}
	defaultLicensePatterns = []string{"Copyright", "Licensed", "SPDX-License-Identifier"}
)

// RuleSet is the resolved configuration for one file analysis.
type RuleSet struct {
	// MarkerPatterns are matched against raw comment text by
	// case-sensitive substring containment.
	MarkerPatterns []string
	// SuppressionPatterns are matched as case-insensitive prefixes of the
	// delimiter-stripped comment body, colon removed first.
	SuppressionPatterns []string
	// LicensePatterns are matched by case-insensitive substring
	// containment, block-wide.
	LicensePatterns []string

	Markers       bool
	Suppressions  bool
	LicenseBanner bool
	DocExclusion  bool

	// DisabledForFile suppresses every diagnostic for the file.
	DisabledForFile bool
}

// Default returns the built-in rule set: all checks on, stock pattern lists.
func Default() RuleSet {
	return RuleSet{
		MarkerPatterns:      cloneStrings(defaultMarkers),
		SuppressionPatterns: cloneStrings(defaultSuppressions),
		LicensePatterns:     cloneStrings(defaultLicensePatterns),
		Markers:             true,
		Suppressions:        true,
		LicenseBanner:       true,
		DocExclusion:        true,
	}
}

// Resolve builds a RuleSet from a flat raw settings mapping. It never fails:
// malformed values degrade to defaults rather than erroring.
func Resolve(raw map[string]string) RuleSet {
	rs := Default()
	if raw == nil {
		return rs
	}

	rs.MarkerPatterns = resolveList(raw, KeyMarkers, rs.MarkerPatterns)
	rs.SuppressionPatterns = resolveList(raw, KeySuppressions, rs.SuppressionPatterns)
	rs.LicensePatterns = resolveList(raw, KeyLicensePatterns, rs.LicensePatterns)

	rs.Markers = resolveBool(raw, KeyEnableMarkers, true)
	rs.Suppressions = resolveBool(raw, KeyEnableSuppressions, true)
	rs.LicenseBanner = resolveBool(raw, KeyEnableLicenseBanner, true)
	rs.DocExclusion = resolveBool(raw, KeyEnableDocExclusion, true)
	rs.DisabledForFile = resolveBool(raw, KeyDisableFile, false)

	return rs
}

// DefaultMarker returns the marker the annotate fix inserts: the first
// configured marker that is itself a colon-suffixed literal, else the fixed
// fallback.
func (r RuleSet) DefaultMarker() string {
	for _, m := range r.MarkerPatterns {
		if strings.HasSuffix(m, ":") {
			return m
		}
	}
	return FallbackMarker
}

func resolveList(raw map[string]string, key string, def []string) []string {
	v, ok := raw[key]
	if !ok {
		return def
	}
	list := SplitList(v)
	if len(list) == 0 {
		// An empty configured list keeps the defaults; families are
		// only disabled through their enable toggle.
		return def
	}
	return list
}

func resolveBool(raw map[string]string, key string, def bool) bool {
	v, ok := raw[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// SplitList splits a comma-separated setting value, trimming entries and
// discarding empties.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
