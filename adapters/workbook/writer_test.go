// Package workbook - Workbook writer tests
package workbook

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"freight-cost/core/estimator"
	"freight-cost/core/tariff"
	"freight-cost/core/types"
)

func TestWriteProducesBreakdownAndTotals(t *testing.T) {
	results, err := estimator.New(nil).EstimateAll(tariff.DefaultWeightTiers(), estimator.SharedOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "costing.xlsx")
	if err := Write(path, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue(sheetBreakdown, "A1")
	if err != nil || header != "Cost Component" {
		t.Errorf("expected breakdown header in A1, got %q (err %v)", header, err)
	}
	tierHeader, _ := f.GetCellValue(sheetBreakdown, "C1")
	if tierHeader != "200 kg" {
		t.Errorf("expected first tier column header '200 kg', got %q", tierHeader)
	}

	// First breakdown row is air freight: 3.50 * 200 = 700
	airLabel, _ := f.GetCellValue(sheetBreakdown, "A2")
	if airLabel != "Air Freight (airport to airport)" {
		t.Errorf("expected air freight in first row, got %q", airLabel)
	}
	airValue, _ := f.GetCellValue(sheetBreakdown, "C2")
	if got, err := strconv.ParseFloat(airValue, 64); err != nil || got != 700 {
		t.Errorf("expected numeric 700 in C2, got %q", airValue)
	}

	// Totals sheet: one row per tier plus header
	rows, err := f.GetRows(sheetTotals)
	if err != nil {
		t.Fatalf("failed to read totals sheet: %v", err)
	}
	if len(rows) != len(results)+1 {
		t.Errorf("expected %d totals rows, got %d", len(results)+1, len(rows))
	}
	total, _ := f.GetCellValue(sheetTotals, "B2")
	want := results[0].Total.InexactFloat64()
	if got, err := strconv.ParseFloat(total, 64); err != nil || got != want {
		t.Errorf("expected total %v in B2, got %q", want, total)
	}
}

func TestWriteRejectsEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := Write(path, nil); err == nil {
		t.Fatal("expected an error for an empty result set")
	}
	if err := Write(path, []*types.EstimateResult{}); err == nil {
		t.Fatal("expected an error for an empty result slice")
	}
}
