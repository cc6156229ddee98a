package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lbsa71/nocomments/internal/engine"
)

// SARIFWriter outputs findings in SARIF v2.1.0 format. Severity is the
// host's business: the single rule ships with a "warning" default that CI
// systems reconfigure per rule ID.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *engine.Report) error {
	sarif := buildSARIF(report)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine  int `json:"startLine"`
	EndLine    int `json:"endLine"`
	CharOffset int `json:"charOffset,omitempty"`
	CharLength int `json:"charLength,omitempty"`
}

type sarifFix struct {
	Description sarifMessage `json:"description"`
}

func buildSARIF(report *engine.Report) sarifLog {
	rule := sarifRule{
		ID:               engine.RuleID,
		Name:             "UnauthorizedComment",
		ShortDescription: sarifMessage{Text: "Comment is not an authorized annotation"},
		DefaultConfig:    sarifDefaultConfig{Level: "warning"},
	}

	var results []sarifResult
	for _, f := range report.Findings {
		result := sarifResult{
			RuleID:  f.RuleID,
			Level:   "warning",
			Message: sarifMessage{Text: f.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.Location.Path},
					Region: sarifRegion{
						StartLine:  f.Location.StartLine,
						EndLine:    f.Location.EndLine,
						CharOffset: f.Location.Start,
						CharLength: f.Location.End - f.Location.Start,
					},
				},
			}},
		}
		for _, fix := range f.Fixes {
			result.Fixes = append(result.Fixes, sarifFix{
				Description: sarifMessage{Text: fixDescription(fix)},
			})
		}
		results = append(results, result)
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           engine.Tool,
						Version:        report.Version,
						InformationURI: "https://github.com/lbsa71/nocomments",
						Rules:          []sarifRule{rule},
					},
				},
				Results: results,
			},
		},
	}
}

func fixDescription(id string) string {
	switch id {
	case "remove":
		return "Remove the comment"
	case "annotate":
		return "Keep the comment with an intent marker"
	case "normalize":
		return "Normalize suppression punctuation to the colon form"
	default:
		return id
	}
}
