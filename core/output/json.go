// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"freight-cost/core/types"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes a single estimate as JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.EstimateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// RenderAll writes a batch of estimates as a JSON array
func (f *JSONFormatter) RenderAll(w io.Writer, results []*types.EstimateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
