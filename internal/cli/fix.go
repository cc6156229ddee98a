package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbsa71/nocomments/internal/config"
	"github.com/lbsa71/nocomments/internal/engine"
	"github.com/lbsa71/nocomments/internal/gosrc"
	"github.com/lbsa71/nocomments/internal/rewrite"
	"github.com/lbsa71/nocomments/internal/rules"
)

var (
	flagApply string
	flagWrite bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Apply a rewrite to every flagged comment",
	Long: "Fix classifies comments like check, then applies the chosen rewrite to each\n" +
		"flagged one: remove deletes the comment, annotate keeps it with the default\n" +
		"intent marker, normalize repairs near-miss suppression punctuation. Without\n" +
		"--write the changed files are only counted, nothing is touched.",
	Run: func(cmd *cobra.Command, args []string) {
		switch flagApply {
		case rewrite.FixRemove, rewrite.FixAnnotate, rewrite.FixNormalize:
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid --apply %q (want remove, annotate, or normalize)\n", flagApply)
			exitCode = ExitUsageError
			return
		}

		root, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		cfg, err := config.Load(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		files, err := discoverFiles(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		overrides := buildOverrides()

		changedFiles, changedComments := 0, 0
		for _, path := range files {
			rs := rules.Resolve(cfg.Settings(path, overrides))
			n, err := fixFile(path, rs, flagApply, flagWrite)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
				continue
			}
			if n > 0 {
				changedFiles++
				changedComments += n
				if !flagWrite {
					fmt.Fprintf(os.Stdout, "%s: %d comment(s) would be rewritten\n", path, n)
				}
			}
		}

		verb := "rewrote"
		if !flagWrite {
			verb = "would rewrite"
		}
		fmt.Fprintf(os.Stdout, "%s %d comment(s) in %d file(s)\n", verb, changedComments, changedFiles)
		if !flagWrite && changedComments > 0 {
			fmt.Fprintln(os.Stdout, "re-run with --write to apply")
		}
	},
}

func init() {
	addRuleFlags(fixCmd)
	fixCmd.Flags().StringVar(&flagApply, "apply", rewrite.FixAnnotate, "Rewrite to apply (remove, annotate, normalize)")
	fixCmd.Flags().BoolVar(&flagWrite, "write", false, "Write rewritten files in place")
}

// fixFile applies the chosen rewrite to every flagged comment of one file
// and returns how many comments changed. Edits against a single file are
// collected first and applied in one pass, back to front.
func fixFile(path string, rs rules.RuleSet, apply string, write bool) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading source file: %w", err)
	}

	file := gosrc.Tokenize(path, src)
	if rs.DisabledForFile {
		return 0, nil
	}
	fc := engine.NewFileContext(file)

	var edits []rewrite.Edit
	for _, span := range file.Comments() {
		if v := engine.Classify(span, fc, rs); v.Authorized {
			continue
		}
		for _, fix := range rewrite.ProposeFixes(span, file, rs) {
			if fix.ID == apply {
				edits = append(edits, fix.Edits...)
				break
			}
		}
	}

	if len(edits) == 0 {
		return 0, nil
	}

	if write {
		rewritten := rewrite.Apply(string(src), edits)
		if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
			return 0, fmt.Errorf("writing rewritten file: %w", err)
		}
	}
	return len(edits), nil
}
