// Package estimator - Cost breakdown tests
package estimator

import (
	"testing"

	"github.com/shopspring/decimal"

	"freight-cost/core/tariff"
	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

func mustEstimate(t *testing.T, input types.EstimateInput) *types.EstimateResult {
	t.Helper()
	result, err := New(nil).Estimate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func item(t *testing.T, result *types.EstimateResult, id string) types.CostLineItem {
	t.Helper()
	li, ok := result.Item(id)
	if !ok {
		t.Fatalf("result is missing line item %s", id)
	}
	return li
}

func TestAirFreightAtBreakpointUsesQuotedRate(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(200)})

	air := item(t, result, types.ItemAirFreight)
	if !air.Amount.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected 3.50 * 200 = 700, got %s", air.Amount)
	}
}

func TestTotalEqualsSumOfLineItems(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{
		WeightKg:   decimal.NewFromInt(200),
		CargoValue: decimal.NewFromInt(1000),
	})

	if !result.Total.Equal(result.Sum()) {
		t.Errorf("total %s does not equal item sum %s", result.Total, result.Sum())
	}

	// Independently: 700 air + 95 docs + 696.50 inland + 250 airport +
	// 212.50 terminal + 125 handling + 150 clearance + 33.58 MPF
	expected := decimal.NewFromFloat(2262.58)
	if !result.Total.Equal(expected) {
		t.Errorf("expected total %s, got %s", expected, result.Total)
	}

	if len(result.Items) != 12 {
		t.Errorf("expected 12 line items, got %d", len(result.Items))
	}
}

func TestInvoiceLineFreeAllowance(t *testing.T) {
	for _, lines := range []int{0, 1, 3} {
		result := mustEstimate(t, types.EstimateInput{
			WeightKg:     decimal.NewFromInt(500),
			InvoiceLines: lines,
		})
		fee := item(t, result, types.ItemInvoiceLines)
		if !fee.Amount.IsZero() {
			t.Errorf("%d lines should be free, got fee %s", lines, fee.Amount)
		}
	}

	custom := tariff.Default()
	custom.Fees.InvoiceLineFee = decimal.NewFromInt(10)
	result, err := New(custom).Estimate(types.EstimateInput{
		WeightKg:     decimal.NewFromInt(500),
		InvoiceLines: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fee := item(t, result, types.ItemInvoiceLines)
	if !fee.Amount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("5 lines at $10 beyond 3 free should cost 20, got %s", fee.Amount)
	}
}

func TestMPFClamping(t *testing.T) {
	cases := []struct {
		value    int64
		expected float64
	}{
		{1000, 33.58},      // raw 3.464, floored
		{100000, 346.40},   // raw within bounds
		{1000000, 651.50},  // raw 3464, capped
	}

	for _, tc := range cases {
		result := mustEstimate(t, types.EstimateInput{
			WeightKg:   decimal.NewFromInt(500),
			CargoValue: decimal.NewFromInt(tc.value),
		})
		mpf := item(t, result, types.ItemMPF)
		if !mpf.Amount.Equal(decimal.NewFromFloat(tc.expected)) {
			t.Errorf("value %d: expected MPF %v, got %s", tc.value, tc.expected, mpf.Amount)
		}
	}
}

func TestFlagGatedFees(t *testing.T) {
	off := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(500)})
	if fda := item(t, off, types.ItemFDAProcessing); !fda.Amount.IsZero() {
		t.Errorf("FDA fee should be 0 when not required, got %s", fda.Amount)
	}
	if bond := item(t, off, types.ItemBond); !bond.Amount.IsZero() {
		t.Errorf("bond fee should be 0 when not required, got %s", bond.Amount)
	}

	on := mustEstimate(t, types.EstimateInput{
		WeightKg:     decimal.NewFromInt(500),
		CargoValue:   decimal.NewFromInt(1000),
		FDARequired:  true,
		BondRequired: true,
	})
	if fda := item(t, on, types.ItemFDAProcessing); !fda.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected FDA fee 100, got %s", fda.Amount)
	}
	// 6 * (1000/1000) = 6, floored to the 100 minimum
	if bond := item(t, on, types.ItemBond); !bond.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected bond minimum 100, got %s", bond.Amount)
	}
}

func TestBondScalesWithValueAndDuty(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{
		WeightKg:     decimal.NewFromInt(500),
		CargoValue:   decimal.NewFromInt(100000),
		BondRequired: true,
		DutyPercent:  decimal.NewFromInt(5),
	})

	// 6 * 100 + 5% of 100000 = 600 + 5000
	bond := item(t, result, types.ItemBond)
	if !bond.Amount.Equal(decimal.NewFromInt(5600)) {
		t.Errorf("expected bond 5600, got %s", bond.Amount)
	}
}

func TestAirportChargeFloor(t *testing.T) {
	low := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(100)})
	if airport := item(t, low, types.ItemAirportCharges); !airport.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("0.30 * 100 is below the floor, expected 250, got %s", airport.Amount)
	}

	high := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(1000)})
	if airport := item(t, high, types.ItemAirportCharges); !airport.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected 0.30 * 1000 = 300 above the floor, got %s", airport.Amount)
	}
}

func TestCustomsExamCharges(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{
		WeightKg:     decimal.NewFromInt(500),
		CustomsExams: 2,
	})

	exams := item(t, result, types.ItemExamCharges)
	if !exams.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected 2 * 125 = 250, got %s", exams.Amount)
	}
}

func TestCargoValueDefaultsFromWeight(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(200)})

	if !result.CargoValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected default cargo value 200 * 5 = 1000, got %s", result.CargoValue)
	}
}

func TestPerKgCost(t *testing.T) {
	result := mustEstimate(t, types.EstimateInput{WeightKg: decimal.NewFromInt(200)})

	if !result.PerKg.Equal(result.Total.Div(decimal.NewFromInt(200))) {
		t.Errorf("per-kg cost %s does not match total/weight", result.PerKg)
	}
}

func TestInvalidInputFailsFast(t *testing.T) {
	cases := []struct {
		name  string
		input types.EstimateInput
	}{
		{"zero weight", types.EstimateInput{WeightKg: decimal.Zero}},
		{"negative weight", types.EstimateInput{WeightKg: decimal.NewFromInt(-10)}},
		{"negative value", types.EstimateInput{
			WeightKg: decimal.NewFromInt(500), CargoValue: decimal.NewFromInt(-1)}},
		{"negative lines", types.EstimateInput{
			WeightKg: decimal.NewFromInt(500), InvoiceLines: -1}},
		{"negative exams", types.EstimateInput{
			WeightKg: decimal.NewFromInt(500), CustomsExams: -1}},
		{"negative duty", types.EstimateInput{
			WeightKg: decimal.NewFromInt(500), DutyPercent: decimal.NewFromInt(-1)}},
		{"duty over 100", types.EstimateInput{
			WeightKg: decimal.NewFromInt(500), DutyPercent: decimal.NewFromInt(101)}},
	}

	est := New(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := est.Estimate(tc.input)
			if err == nil {
				t.Fatal("expected an input error")
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected TypeInput error, got %v", err)
			}
			if result != nil {
				t.Error("no partial result should be returned on invalid input")
			}
		})
	}
}

func TestEstimateAllComputesIndependentTiers(t *testing.T) {
	weights := tariff.DefaultWeightTiers()
	results, err := New(nil).EstimateAll(weights, SharedOptions{FDARequired: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(weights) {
		t.Fatalf("expected %d results, got %d", len(weights), len(results))
	}
	for i, r := range results {
		if !r.WeightKg.Equal(weights[i]) {
			t.Errorf("result %d: expected weight %s, got %s", i, weights[i], r.WeightKg)
		}
		if !r.Total.Equal(r.Sum()) {
			t.Errorf("result %d: total %s does not equal item sum", i, r.Total)
		}
		if fda := item(t, r, types.ItemFDAProcessing); !fda.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("result %d: shared FDA flag not applied", i)
		}
	}
}

func TestEstimateAllRejectsBadSharedOptions(t *testing.T) {
	_, err := New(nil).EstimateAll(tariff.DefaultWeightTiers(), SharedOptions{InvoiceLines: -1})
	if !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("expected TypeInput error, got %v", err)
	}
}
