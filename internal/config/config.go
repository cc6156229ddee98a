package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lbsa71/nocomments/internal/rules"
)

// Project file names, checked in order.
var fileNames = []string{".nocomments.yml", ".nocomments.yaml", ".nocomments.toml"}

// File mirrors the on-disk project configuration. Pointer fields distinguish
// "unset" from an explicit false.
type File struct {
	Markers         []string `yaml:"markers" toml:"markers"`
	Suppressions    []string `yaml:"suppressions" toml:"suppressions"`
	LicensePatterns []string `yaml:"license_patterns" toml:"license_patterns"`

	EnableMarkers       *bool `yaml:"enable_markers" toml:"enable_markers"`
	EnableSuppressions  *bool `yaml:"enable_suppressions" toml:"enable_suppressions"`
	EnableLicenseBanner *bool `yaml:"enable_license_banner" toml:"enable_license_banner"`
	EnableDocExclusion  *bool `yaml:"enable_doc_exclusion" toml:"enable_doc_exclusion"`

	// DisablePaths lists path globs whose files are analyzed with every
	// diagnostic suppressed.
	DisablePaths []string `yaml:"disable_paths" toml:"disable_paths"`
}

// Config is a loaded project configuration plus its origin.
type Config struct {
	File File
	// Path is the loaded file, empty when no project file was found.
	Path string
}

// Load finds and parses the project configuration, searching dir and its
// parents. A missing file is not an error; a malformed one is, so the caller
// can tell the user instead of silently running with defaults.
func Load(dir string) (Config, error) {
	path, ok := find(dir)
	if !ok {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal(data, &f); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	return Config{File: f, Path: path}, nil
}

func find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Settings flattens the effective configuration for one file into the raw
// key/value mapping the rule resolver consumes. Later layers win: file, then
// environment, then the supplied CLI overrides.
func (c Config) Settings(path string, overrides map[string]string) map[string]string {
	m := make(map[string]string)

	setList(m, rules.KeyMarkers, c.File.Markers)
	setList(m, rules.KeySuppressions, c.File.Suppressions)
	setList(m, rules.KeyLicensePatterns, c.File.LicensePatterns)
	setBool(m, rules.KeyEnableMarkers, c.File.EnableMarkers)
	setBool(m, rules.KeyEnableSuppressions, c.File.EnableSuppressions)
	setBool(m, rules.KeyEnableLicenseBanner, c.File.EnableLicenseBanner)
	setBool(m, rules.KeyEnableDocExclusion, c.File.EnableDocExclusion)

	if matchesAny(c.File.DisablePaths, path) {
		m[rules.KeyDisableFile] = "true"
	}

	mergeEnv(m)

	for k, v := range overrides {
		if v != "" {
			m[k] = v
		}
	}

	return m
}

func mergeEnv(m map[string]string) {
	envKeys := map[string]string{
		"NOCOMMENTS_MARKERS":               rules.KeyMarkers,
		"NOCOMMENTS_SUPPRESSIONS":          rules.KeySuppressions,
		"NOCOMMENTS_LICENSE_PATTERNS":      rules.KeyLicensePatterns,
		"NOCOMMENTS_ENABLE_MARKERS":        rules.KeyEnableMarkers,
		"NOCOMMENTS_ENABLE_SUPPRESSIONS":   rules.KeyEnableSuppressions,
		"NOCOMMENTS_ENABLE_LICENSE_BANNER": rules.KeyEnableLicenseBanner,
		"NOCOMMENTS_ENABLE_DOC_EXCLUSION":  rules.KeyEnableDocExclusion,
	}
	for env, key := range envKeys {
		if v := os.Getenv(env); v != "" {
			m[key] = v
		}
	}
}

func matchesAny(globs []string, path string) bool {
	path = filepath.ToSlash(path)
	for _, g := range globs {
		if ok, err := filepath.Match(g, path); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(g, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}

func setList(m map[string]string, key string, list []string) {
	if len(list) > 0 {
		m[key] = strings.Join(list, ",")
	}
}

func setBool(m map[string]string, key string, v *bool) {
	if v != nil {
		m[key] = strconv.FormatBool(*v)
	}
}

// DefaultYAML is the starter project file written by "nocomments config
// init".
const DefaultYAML = `# nocomments project configuration
#
# markers:          substrings that mark a comment as deliberately human-authored
# suppressions:     keyword prefixes (TODO/HACK/FIXME style) that are always allowed
# license_patterns: substrings that identify a file-level license banner
#
# The enable_* toggles switch whole rule families off; an empty pattern list
# keeps the built-in defaults.

markers: [ "HUMAN:", "NOTE:", "INTENT:", "OK:", "[sic]" ]
suppressions: [ "TODO:", "HACK:", "FIXME:" ]
license_patterns: [ "Copyright", "Licensed", "SPDX-License-Identifier" ]

# enable_markers: true
# enable_suppressions: true
# enable_license_banner: true
# enable_doc_exclusion: true

# Files matching these globs are exempt from every check:
# disable_paths:
#   - "*_generated.go"
`

// Init writes the starter configuration file into dir. It refuses to
// overwrite an existing file.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, fileNames[0])
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(DefaultYAML), 0o644); err != nil {
		return path, fmt.Errorf("writing config: %w", err)
	}
	return path, nil
}
