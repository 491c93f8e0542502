package report

import (
	"encoding/json"
	"io"

	"github.com/flightlint/flightlint/internal/domain"
)

// WriteJSON writes the machine-readable shape: a structurally faithful
// serialization of domain, fileCount and every result field. The output
// is always an array of summaries, one element per rule document, so
// consumers never have to sniff the shape.
func WriteJSON(w io.Writer, summaries []domain.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
