// Package output provides output formatting for estimate results.
// This package produces human and machine-readable renderings only;
// amounts stay numeric inside the result types themselves.
package output

import (
	"io"

	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for a single estimate
	Render(w io.Writer, result *types.EstimateResult) error

	// RenderAll produces output for a batch of per-tier estimates
	RenderAll(w io.Writer, results []*types.EstimateResult) error
}

// For returns the formatter for a format type
func For(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeOutput, "unknown output format: %s", format)
	}
}
