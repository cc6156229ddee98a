package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lbsa71/nocomments/internal/config"
	"github.com/lbsa71/nocomments/internal/engine"
	"github.com/lbsa71/nocomments/internal/gitio"
	"github.com/lbsa71/nocomments/internal/gosrc"
	"github.com/lbsa71/nocomments/internal/output"
	"github.com/lbsa71/nocomments/internal/rules"
)

// Shared check/fix flags
var (
	flagMarkers         string
	flagSuppressions    string
	flagLicensePatterns string
	flagNoMarkers       bool
	flagNoSuppressions  bool
	flagNoLicense       bool
	flagNoDocExclusion  bool
	flagFormat          string
	flagOut             string
	flagColor           string
	flagJobs            int
	flagStaged          bool
)

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMarkers, "markers", "", "Marker substrings (comma-separated)")
	cmd.Flags().StringVar(&flagSuppressions, "suppressions", "", "Suppression keyword prefixes (comma-separated)")
	cmd.Flags().StringVar(&flagLicensePatterns, "license-patterns", "", "License banner substrings (comma-separated)")
	cmd.Flags().BoolVar(&flagNoMarkers, "no-markers", false, "Disable the marker check")
	cmd.Flags().BoolVar(&flagNoSuppressions, "no-suppressions", false, "Disable the suppression check")
	cmd.Flags().BoolVar(&flagNoLicense, "no-license-banner", false, "Disable license banner detection")
	cmd.Flags().BoolVar(&flagNoDocExclusion, "no-doc-exclusion", false, "Classify doc comments like any other comment")
	cmd.Flags().IntVar(&flagJobs, "jobs", 0, "Number of files analyzed concurrently (default: GOMAXPROCS)")
}

// buildOverrides maps non-empty flags onto the raw rule settings.
func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagMarkers != "" {
		m[rules.KeyMarkers] = flagMarkers
	}
	if flagSuppressions != "" {
		m[rules.KeySuppressions] = flagSuppressions
	}
	if flagLicensePatterns != "" {
		m[rules.KeyLicensePatterns] = flagLicensePatterns
	}
	if flagNoMarkers {
		m[rules.KeyEnableMarkers] = "false"
	}
	if flagNoSuppressions {
		m[rules.KeyEnableSuppressions] = "false"
	}
	if flagNoLicense {
		m[rules.KeyEnableLicenseBanner] = "false"
	}
	if flagNoDocExclusion {
		m[rules.KeyEnableDocExclusion] = "false"
	}
	return m
}

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Classify comments and report unauthorized ones",
	Long: "Check tokenizes every Go file under the given paths (default: current\n" +
		"directory), classifies each comment against the configured rule set, and\n" +
		"reports the flagged ones. Exit code 1 signals findings.",
	Run: func(cmd *cobra.Command, args []string) {
		result, err := runAnalysis(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}

		for _, fe := range result.Errors {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", fe.Path, fe.Err)
		}

		opts := output.Options{Color: colorEnabled()}
		if err := output.WriteReport(result.Report, flagFormat, flagOut, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}

		if result.Report.Summary.Flagged > 0 {
			exitCode = ExitFindings
		}
	},
}

func init() {
	addRuleFlags(checkCmd)
	checkCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json, markdown, sarif)")
	checkCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	checkCmd.Flags().StringVar(&flagColor, "color", "auto", "Colorize text output (auto, always, never)")
	checkCmd.Flags().BoolVar(&flagStaged, "staged", false, "Check only Go files staged for commit")
}

// runAnalysis discovers files, resolves per-file rule sets, and runs the
// engine. Shared by check and fix.
func runAnalysis(args []string) (*engine.Result, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	overrides := buildOverrides()

	var files []string
	if flagStaged {
		files, err = gitio.StagedGoFiles()
	} else {
		files, err = discoverFiles(args)
	}
	if err != nil {
		return nil, err
	}

	return engine.Run(engine.Options{
		Files:    files,
		Root:     root,
		Jobs:     flagJobs,
		Tokenize: gosrc.Load,
		RulesFor: func(path string) rules.RuleSet {
			return rules.Resolve(cfg.Settings(path, overrides))
		},
	})
}

// discoverFiles walks the argument paths for Go source, skipping vendor
// trees, hidden directories, and testdata.
func discoverFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if path != arg && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
					name == "vendor" || name == "testdata") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(name, ".go") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	return files, nil
}

func colorEnabled() bool {
	switch flagColor {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
