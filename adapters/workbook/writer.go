// Package workbook writes estimate results to a local xlsx workbook.
// It produces the two tabular sheets a reviewer compares across weight
// tiers: a per-component breakdown and a totals summary. Values are
// written as plain numbers; presentation is left to the consumer.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

const (
	sheetBreakdown = "Cost Breakdown"
	sheetTotals    = "Totals by Weight"
)

// Write renders one column per estimate into a new workbook at path
func Write(path string, results []*types.EstimateResult) error {
	if len(results) == 0 {
		return errors.New(errors.TypeOutput, "no estimates to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeBreakdown(f, results); err != nil {
		return err
	}
	if err := writeTotals(f, results); err != nil {
		return err
	}
	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(errors.TypeOutput, "failed to save workbook", err)
	}
	return nil
}

func writeBreakdown(f *excelize.File, results []*types.EstimateResult) error {
	index, err := f.NewSheet(sheetBreakdown)
	if err != nil {
		return errors.Wrap(errors.TypeOutput, "failed to create breakdown sheet", err)
	}
	f.SetActiveSheet(index)

	header := []interface{}{"Cost Component", "Type"}
	for _, r := range results {
		header = append(header, fmt.Sprintf("%s kg", r.WeightKg))
	}
	if err := setRow(f, sheetBreakdown, 1, header); err != nil {
		return err
	}

	// All results share the same tariff, hence the same item order.
	for i, item := range results[0].Items {
		row := []interface{}{item.Label, string(item.Kind)}
		for _, r := range results {
			cell, ok := r.Item(item.ID)
			if !ok {
				return errors.Newf(errors.TypeOutput, "estimate for %s kg is missing line item %s", r.WeightKg, item.ID)
			}
			row = append(row, cell.Amount.InexactFloat64())
		}
		if err := setRow(f, sheetBreakdown, i+2, row); err != nil {
			return err
		}
	}

	totalRow := []interface{}{"TOTAL", ""}
	for _, r := range results {
		totalRow = append(totalRow, r.Total.InexactFloat64())
	}
	return setRow(f, sheetBreakdown, len(results[0].Items)+2, totalRow)
}

func writeTotals(f *excelize.File, results []*types.EstimateResult) error {
	if _, err := f.NewSheet(sheetTotals); err != nil {
		return errors.Wrap(errors.TypeOutput, "failed to create totals sheet", err)
	}

	if err := setRow(f, sheetTotals, 1, []interface{}{"Weight (kg)", "Total Cost (USD)", "Per kg Cost (USD)"}); err != nil {
		return err
	}
	for i, r := range results {
		row := []interface{}{
			r.WeightKg.InexactFloat64(),
			r.Total.InexactFloat64(),
			r.PerKg.InexactFloat64(),
		}
		if err := setRow(f, sheetTotals, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return errors.Wrap(errors.TypeOutput, "invalid column", err)
		}
		cellRef := fmt.Sprintf("%s%d", name, row)
		if err := f.SetCellValue(sheet, cellRef, value); err != nil {
			return errors.Wrap(errors.TypeOutput, "failed to write cell", err)
		}
	}
	return nil
}
