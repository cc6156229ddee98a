package output

import (
	"fmt"
	"io"
	"os"

	"github.com/lbsa71/nocomments/internal/engine"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *engine.Report) error
}

// Options tunes writer construction.
type Options struct {
	// Color enables ANSI styling for the text writer.
	Color bool
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, opts Options) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Color: opts.Color}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *engine.Report, format, outPath string, opts Options) error {
	writer, err := GetWriter(format, opts)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
		// Styling never goes into files.
		if tw, ok := writer.(*TextWriter); ok {
			tw.Color = false
		}
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}
