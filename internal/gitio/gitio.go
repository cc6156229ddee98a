// Package gitio shells out to git for the file listings the CLI needs:
// tracked and staged Go files. Everything else stays filesystem-based so the
// tool works outside a repository too.
package gitio

import (
	"fmt"
	"os/exec"
	"strings"
)

// Root returns the repository root for the working directory.
func Root() (string, error) {
	out, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// StagedGoFiles lists the Go files currently staged for commit, excluding
// deletions.
func StagedGoFiles() ([]string, error) {
	out, err := gitOutput("diff", "--cached", "--name-only", "--diff-filter=d", "--", "*.go")
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}
	return splitLines(out), nil
}

// TrackedGoFiles lists every tracked Go file in the repository.
func TrackedGoFiles() ([]string, error) {
	out, err := gitOutput("ls-files", "--", "*.go")
	if err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}
	return splitLines(out), nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

func splitLines(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}
