// Package output - Formatter tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"freight-cost/core/types"
)

func sampleResult() *types.EstimateResult {
	result := &types.EstimateResult{
		WeightKg:   decimal.NewFromInt(200),
		CargoValue: decimal.NewFromInt(1000),
		Currency:   types.CurrencyUSD,
		Items: []types.CostLineItem{
			{
				ID:       types.ItemAirFreight,
				Label:    "Air Freight (airport to airport)",
				Kind:     types.KindPerWeight,
				Amount:   decimal.NewFromInt(700),
				Basis:    "interpolated rate per kg * weight",
				Currency: types.CurrencyUSD,
			},
			{
				ID:       types.ItemExportDocs,
				Label:    "Export Documentation",
				Kind:     types.KindFixed,
				Amount:   decimal.NewFromInt(95),
				Currency: types.CurrencyUSD,
			},
		},
	}
	result.Total = result.Sum()
	result.PerKg = result.Total.Div(result.WeightKg)
	return result
}

func TestJSONRenderRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded types.EstimateResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Items) != 2 {
		t.Errorf("expected 2 items after round trip, got %d", len(decoded.Items))
	}
	if !decoded.Total.Equal(decimal.NewFromInt(795)) {
		t.Errorf("expected total 795, got %s", decoded.Total)
	}
}

func TestCLIRenderShowsItemsAndTotal(t *testing.T) {
	var buf bytes.Buffer
	formatter := &CLIFormatter{ShowDetails: true}
	if err := formatter.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Air Freight", "Export Documentation", "$795.00", "interpolated rate"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIRenderAllListsEveryTier(t *testing.T) {
	var buf bytes.Buffer
	results := []*types.EstimateResult{sampleResult(), sampleResult()}
	if err := (&CLIFormatter{}).RenderAll(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(buf.String(), "795.00"); got != 2 {
		t.Errorf("expected 2 tier rows, found %d totals", got)
	}
}

func TestForRejectsUnknownFormat(t *testing.T) {
	if _, err := For("yaml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if f, err := For(""); err != nil || f.Format() != FormatCLI {
		t.Errorf("empty format should default to cli, got %v (err %v)", f, err)
	}
}
