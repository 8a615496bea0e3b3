package renderer

import (
	"encoding/json"
	"io"

	"semvet/pkg/report"
)

// RenderJSON writes the report as indented JSON, for machine consumers.
func RenderJSON(out io.Writer, rpt *report.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rpt)
}
