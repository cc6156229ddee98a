// Package analyzer exposes the comment audit as a go/analysis Analyzer, so
// it plugs into go vet, golangci-lint, and other analysis drivers.
package analyzer

import (
	"flag"

	"golang.org/x/tools/go/analysis"

	"github.com/lbsa71/nocomments/internal/engine"
	"github.com/lbsa71/nocomments/internal/gosrc"
	"github.com/lbsa71/nocomments/internal/rewrite"
	"github.com/lbsa71/nocomments/internal/rules"
)

const doc = `nocomments reports comments that are neither documentation, an intentional
human annotation, a suppression marker, nor a license banner, and suggests
rewrites (remove, annotate, normalize) for each.`

// Analyzer is the main entry point for analysis drivers.
var Analyzer = &analysis.Analyzer{
	Name:  "nocomments",
	Doc:   doc,
	Run:   run,
	Flags: analyzerFlags(),
}

var (
	flagMarkers         string
	flagSuppressions    string
	flagLicensePatterns string
	flagDisableMarkers  bool
	flagDisableSuppr    bool
	flagDisableLicense  bool
)

func analyzerFlags() flag.FlagSet {
	var fs flag.FlagSet
	fs.StringVar(&flagMarkers, "markers", "", "comma-separated marker substrings")
	fs.StringVar(&flagSuppressions, "suppressions", "", "comma-separated suppression prefixes")
	fs.StringVar(&flagLicensePatterns, "license-patterns", "", "comma-separated license banner substrings")
	fs.BoolVar(&flagDisableMarkers, "no-markers", false, "disable the marker check")
	fs.BoolVar(&flagDisableSuppr, "no-suppressions", false, "disable the suppression check")
	fs.BoolVar(&flagDisableLicense, "no-license-banner", false, "disable license banner detection")
	return fs
}

func settings() map[string]string {
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
	if flagDisableMarkers {
		m[rules.KeyEnableMarkers] = "false"
	}
	if flagDisableSuppr {
		m[rules.KeyEnableSuppressions] = "false"
	}
	if flagDisableLicense {
		m[rules.KeyEnableLicenseBanner] = "false"
	}
	return m
}

func run(pass *analysis.Pass) (any, error) {
	rs := rules.Resolve(settings())
	if rs.DisabledForFile {
		return nil, nil
	}

	for _, f := range pass.Files {
		tf := pass.Fset.File(f.Pos())
		if tf == nil {
			continue
		}
		src, err := pass.ReadFile(tf.Name())
		if err != nil {
			// Generated or cgo-mangled files may have no source on
			// disk; skip them rather than failing the whole pass.
			continue
		}

		file := gosrc.Tokenize(tf.Name(), src)
		fc := engine.NewFileContext(file)

		for _, span := range file.Comments() {
			if v := engine.Classify(span, fc, rs); v.Authorized {
				continue
			}

			diag := analysis.Diagnostic{
				Pos:      tf.Pos(span.Start),
				End:      tf.Pos(span.End),
				Category: "comments",
				Message:  engine.Message(span),
			}
			for _, fix := range rewrite.ProposeFixes(span, file, rs) {
				var edits []analysis.TextEdit
				for _, e := range fix.Edits {
					edits = append(edits, analysis.TextEdit{
						Pos:     tf.Pos(e.Start),
						End:     tf.Pos(e.End),
						NewText: []byte(e.NewText),
					})
				}
				diag.SuggestedFixes = append(diag.SuggestedFixes, analysis.SuggestedFix{
					Message:   fix.Label,
					TextEdits: edits,
				})
			}
			pass.Report(diag)
		}
	}

	return nil, nil
}
