package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lbsa71/nocomments/internal/rules"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for missing config", cfg.Path)
	}
	if len(cfg.File.Markers) != 0 {
		t.Errorf("Markers = %v, want empty", cfg.File.Markers)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".nocomments.yml", `
markers: ["REVIEWED:", "[sic]"]
suppressions: ["TODO:"]
enable_license_banner: false
disable_paths:
  - "*_generated.go"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if len(cfg.File.Markers) != 2 || cfg.File.Markers[0] != "REVIEWED:" {
		t.Errorf("Markers = %v", cfg.File.Markers)
	}
	if cfg.File.EnableLicenseBanner == nil || *cfg.File.EnableLicenseBanner {
		t.Error("enable_license_banner should be explicit false")
	}
	if cfg.File.EnableMarkers != nil {
		t.Error("enable_markers should stay unset")
	}
	if len(cfg.File.DisablePaths) != 1 {
		t.Errorf("DisablePaths = %v", cfg.File.DisablePaths)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".nocomments.toml", `
markers = ["HUMAN:"]
license_patterns = ["Copyright", "SPDX"]
enable_suppressions = false
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.File.LicensePatterns) != 2 {
		t.Errorf("LicensePatterns = %v", cfg.File.LicensePatterns)
	}
	if cfg.File.EnableSuppressions == nil || *cfg.File.EnableSuppressions {
		t.Error("enable_suppressions should be explicit false")
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".nocomments.yml", "markers: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestLoad_SearchesParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, ".nocomments.yml", `markers: ["NOTE:"]`)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(sub)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Path == "" {
		t.Fatal("config in ancestor directory should be found")
	}
	if len(cfg.File.Markers) != 1 || cfg.File.Markers[0] != "NOTE:" {
		t.Errorf("Markers = %v", cfg.File.Markers)
	}
}

func TestLoad_YmlBeforeToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".nocomments.yml", `markers: ["FROM_YML:"]`)
	writeConfig(t, dir, ".nocomments.toml", `markers = ["FROM_TOML:"]`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.File.Markers) != 1 || cfg.File.Markers[0] != "FROM_YML:" {
		t.Errorf("Markers = %v, .yml should win over .toml", cfg.File.Markers)
	}
}

func TestSettings_FileValues(t *testing.T) {
	off := false
	cfg := Config{File: File{
		Markers:            []string{"REVIEWED:", "[sic]"},
		EnableDocExclusion: &off,
	}}

	m := cfg.Settings("main.go", nil)

	if m[rules.KeyMarkers] != "REVIEWED:,[sic]" {
		t.Errorf("markers = %q", m[rules.KeyMarkers])
	}
	if m[rules.KeyEnableDocExclusion] != "false" {
		t.Errorf("enable_doc_exclusion = %q", m[rules.KeyEnableDocExclusion])
	}
	if _, ok := m[rules.KeySuppressions]; ok {
		t.Error("unset list should not appear in settings")
	}
	if _, ok := m[rules.KeyEnableMarkers]; ok {
		t.Error("unset toggle should not appear in settings")
	}
}

func TestSettings_DisablePaths(t *testing.T) {
	cfg := Config{File: File{
		DisablePaths: []string{"*_generated.go", "legacy/*"},
	}}

	tests := []struct {
		path string
		want bool
	}{
		{"api_generated.go", true},
		{"pkg/api_generated.go", true}, // base name matches
		{"legacy/old.go", true},
		{"main.go", false},
	}
	for _, tt := range tests {
		m := cfg.Settings(tt.path, nil)
		got := m[rules.KeyDisableFile] == "true"
		if got != tt.want {
			t.Errorf("Settings(%q) disable_file = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSettings_EnvOverridesFile(t *testing.T) {
	cfg := Config{File: File{Markers: []string{"FROM_FILE:"}}}
	t.Setenv("NOCOMMENTS_MARKERS", "FROM_ENV:")

	m := cfg.Settings("main.go", nil)
	if m[rules.KeyMarkers] != "FROM_ENV:" {
		t.Errorf("markers = %q, env should override file", m[rules.KeyMarkers])
	}
}

func TestSettings_OverridesWinOverEnv(t *testing.T) {
	cfg := Config{}
	t.Setenv("NOCOMMENTS_SUPPRESSIONS", "FROM_ENV:")

	m := cfg.Settings("main.go", map[string]string{
		rules.KeySuppressions: "FROM_FLAG:",
	})
	if m[rules.KeySuppressions] != "FROM_FLAG:" {
		t.Errorf("suppressions = %q, CLI override should win", m[rules.KeySuppressions])
	}
}

func TestSettings_ResolvesWithRules(t *testing.T) {
	off := false
	cfg := Config{File: File{
		Markers:             []string{"REVIEWED:"},
		EnableLicenseBanner: &off,
	}}

	rs := rules.Resolve(cfg.Settings("main.go", nil))

	if len(rs.MarkerPatterns) != 1 || rs.MarkerPatterns[0] != "REVIEWED:" {
		t.Errorf("MarkerPatterns = %v", rs.MarkerPatterns)
	}
	if rs.LicenseBanner {
		t.Error("license banner should be disabled")
	}
	if !rs.Suppressions {
		t.Error("untouched toggles should keep their defaults")
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	path, err := Init(dir)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created config: %v", err)
	}
	if !strings.Contains(string(data), "markers:") {
		t.Error("starter config should mention markers")
	}

	// A second Init must not clobber the file.
	if _, err := Init(dir); err == nil {
		t.Error("Init should refuse to overwrite an existing config")
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load of starter config error: %v", err)
	}
	if len(cfg.File.Markers) == 0 {
		t.Error("starter config should parse with markers set")
	}
}
