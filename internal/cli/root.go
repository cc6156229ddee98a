package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbsa71/nocomments/internal/engine"
)

// Exit codes, stable for CI gating and git hooks.
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var rootCmd = &cobra.Command{
	Use:   "nocomments",
	Short: "Comment audit for source trees",
	Long: "NoComments classifies every comment as machine documentation, an intentional\n" +
		"human annotation, a suppression marker, or a license banner — and flags the\n" +
		"rest, offering automated rewrites to bring them into compliance.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print nocomments version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%s version %s\n", engine.Tool, engine.Version)
	},
}
