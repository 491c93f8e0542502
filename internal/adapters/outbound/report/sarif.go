package report

import (
	"encoding/json"
	"io"

	"github.com/flightlint/flightlint/internal/domain"
)

// The interchange output identifies the tool by this fixed pair.
const (
	ToolName    = "flightlint"
	ToolVersion = "0.1.0"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool                     sarifTool     `json:"tool"`
	Results                  []sarifResult `json:"results"`
	VersionControlProvenance []sarifVCS    `json:"versionControlProvenance,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
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
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

type sarifVCS struct {
	RevisionID string `json:"revisionId"`
}

// WriteSARIF writes the interchange shape: one run per summary, every
// result mapped to exactly one finding with its severity-derived level
// and a physical location. revision, when non-empty, is recorded as
// version-control provenance on each run.
func WriteSARIF(w io.Writer, summaries []domain.Summary, revision string) error {
	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs:    make([]sarifRun, 0, len(summaries)),
	}

	for _, summary := range summaries {
		run := sarifRun{
			Tool:    sarifTool{Driver: sarifDriver{Name: ToolName, Version: ToolVersion}},
			Results: make([]sarifResult, 0, len(summary.Results)),
		}
		if revision != "" {
			run.VersionControlProvenance = []sarifVCS{{RevisionID: revision}}
		}

		for _, r := range summary.Results {
			run.Results = append(run.Results, sarifResult{
				RuleID:  r.RuleID,
				Level:   sarifLevel(r.Severity),
				Message: sarifMessage{Text: r.Message},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: "file://" + r.FilePath},
						Region:           sarifRegion{StartLine: r.Line, StartColumn: r.Column},
					},
				}},
			})
		}

		log.Runs = append(log.Runs, run)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

// sarifLevel derives the SARIF level from the severity's blocking power,
// the same ordering that drives the exit code.
func sarifLevel(s domain.Severity) string {
	if s.Blocking() {
		return "error"
	}
	return "warning"
}
