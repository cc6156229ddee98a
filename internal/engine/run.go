package engine

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/lbsa71/nocomments/internal/comment"
	"github.com/lbsa71/nocomments/internal/rules"
)

// Tool and version reported in every run's metadata.
const (
	Tool    = "nocomments"
	Version = "0.1.0"
)

// Options configures a multi-file run.
type Options struct {
	// Files are the paths to analyze.
	Files []string
	// Tokenize turns one path into the engine's file model.
	Tokenize func(path string) (comment.File, error)
	// RulesFor resolves the effective rule set for a path.
	RulesFor func(path string) rules.RuleSet
	// Jobs bounds worker concurrency; <=0 means GOMAXPROCS.
	Jobs int
	// Root is recorded in the report for display purposes.
	Root string
}

// FileError records a file that could not be analyzed. The run continues
// past it.
type FileError struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Result pairs the merged report with per-file failures.
type Result struct {
	Report *Report     `json:"report"`
	Errors []FileError `json:"errors,omitempty"`
}

// Run analyzes all files concurrently with a bounded worker pool.
// Classification of one file is pure and owns no shared state, so files
// parallelize freely; results are merged deterministically, sorted by path
// then offset.
func Run(opts Options) (*Result, error) {
	start := time.Now()
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(opts.Files) && len(opts.Files) > 0 {
		jobs = len(opts.Files)
	}

	type fileResult struct {
		path     string
		findings []Finding
		comments int
		err      error
	}

	paths := make(chan string)
	results := make([]fileResult, 0, len(opts.Files))
	var mu sync.Mutex
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for path := range paths {
			res := fileResult{path: path}
			file, err := opts.Tokenize(path)
			if err != nil {
				res.err = err
			} else {
				rs := opts.RulesFor(path)
				res.findings = AnalyzeFile(file, rs)
				res.comments = CountComments(file)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}
	}

	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go worker()
	}
	for _, path := range opts.Files {
		paths <- path
	}
	close(paths)
	wg.Wait()
	scanMs := time.Since(start).Milliseconds()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	report := &Report{
		Tool:    Tool,
		Version: Version,
		Root:    opts.Root,
	}
	var errs []FileError
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, FileError{Path: res.path, Err: res.err.Error()})
			continue
		}
		report.Summary.Files++
		report.Summary.Comments += res.comments
		report.Findings = append(report.Findings, res.findings...)
	}
	report.Summary.Flagged = len(report.Findings)
	report.Timing = Timing{ScanMs: scanMs, TotalMs: time.Since(start).Milliseconds()}

	return &Result{Report: report, Errors: errs}, nil
}
