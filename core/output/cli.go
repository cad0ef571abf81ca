// Package output - CLI table rendering
package output

import (
	"fmt"
	"io"

	"freight-cost/core/types"
)

// CLIFormatter renders a human-readable table
type CLIFormatter struct {
	// ShowDetails includes the per-item basis notes
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render prints the breakdown for a single estimate
func (f *CLIFormatter) Render(w io.Writer, result *types.EstimateResult) error {
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ %-72s │\n",
		fmt.Sprintf("COST BREAKDOWN — %s kg, cargo value $%s", result.WeightKg, result.CargoValue.StringFixed(2)))
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────────────┤")

	for _, item := range result.Items {
		fmt.Fprintf(w, "│ %-50s %21s │\n",
			truncate(item.Label, 50),
			fmt.Sprintf("$%s", item.Amount.StringFixed(2)))
		if f.ShowDetails && item.Basis != "" {
			fmt.Fprintf(w, "│   └─ %-68s │\n", truncate(item.Basis, 68))
		}
	}

	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-50s %21s │\n", "ESTIMATED TOTAL COST",
		fmt.Sprintf("$%s", result.Total.StringFixed(2)))
	fmt.Fprintf(w, "│ %-50s %21s │\n", "COST PER KG",
		fmt.Sprintf("$%s", result.PerKg.StringFixed(4)))
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────────────────────┘")
	return nil
}

// RenderAll prints a totals-by-weight summary table
func (f *CLIFormatter) RenderAll(w io.Writer, results []*types.EstimateResult) error {
	fmt.Fprintln(w, "┌────────────────┬──────────────────────┬──────────────────────┐")
	fmt.Fprintf(w, "│ %-14s │ %-20s │ %-20s │\n", "Weight (kg)", "Total Cost (USD)", "Per kg (USD)")
	fmt.Fprintln(w, "├────────────────┼──────────────────────┼──────────────────────┤")
	for _, r := range results {
		fmt.Fprintf(w, "│ %-14s │ %20s │ %20s │\n",
			r.WeightKg, r.Total.StringFixed(2), r.PerKg.StringFixed(4))
	}
	fmt.Fprintln(w, "└────────────────┴──────────────────────┴──────────────────────┘")
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
