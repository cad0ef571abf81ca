// Package estimator computes line-itemized freight cost breakdowns.
// The estimator is a pure function of its input and the static tariff:
// no I/O, no shared mutable state, no side effects.
package estimator

import (
	"github.com/shopspring/decimal"

	"freight-cost/core/tariff"
	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Estimator computes cost breakdowns against a tariff
type Estimator struct {
	tariff *tariff.Tariff
	policy tariff.ExtrapolationPolicy
}

// New creates an estimator with the default out-of-range policy.
// A nil tariff falls back to the built-in quotation.
func New(t *tariff.Tariff) *Estimator {
	return NewWithPolicy(t, tariff.PolicyExtend)
}

// NewWithPolicy creates an estimator with an explicit out-of-range policy
func NewWithPolicy(t *tariff.Tariff, policy tariff.ExtrapolationPolicy) *Estimator {
	if t == nil {
		t = tariff.Default()
	}
	if !policy.Valid() {
		policy = tariff.PolicyExtend
	}
	return &Estimator{tariff: t, policy: policy}
}

// SharedOptions are the non-weight parameters applied to every tier
// of a batch estimate
type SharedOptions struct {
	// CargoValue is the declared cargo value; zero defaults per tier
	CargoValue decimal.Decimal

	// FDARequired indicates whether FDA processing applies
	FDARequired bool

	// BondRequired indicates whether a single-entry bond is needed
	BondRequired bool

	// InvoiceLines is the invoice line count (first lines free per tariff)
	InvoiceLines int

	// CustomsExams is the expected customs exam count
	CustomsExams int

	// DutyPercent is the duty estimate as a percentage of value
	DutyPercent decimal.Decimal
}

// Estimate computes the full cost breakdown for one shipment.
// It fails fast with an input error when a precondition is violated
// and returns no partial result.
func (e *Estimator) Estimate(input types.EstimateInput) (*types.EstimateResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	fees := e.tariff.Fees
	currency := e.tariff.Currency
	weight := input.WeightKg

	value := input.CargoValue
	if value.IsZero() {
		value = weight.Mul(fees.DefaultValuePerKg)
	}

	result := &types.EstimateResult{
		WeightKg:   weight,
		CargoValue: value,
		Currency:   currency,
	}
	add := func(id, label string, kind types.ComponentKind, amount decimal.Decimal, basis string) {
		result.Items = append(result.Items, types.CostLineItem{
			ID:       id,
			Label:    label,
			Kind:     kind,
			Amount:   amount,
			Basis:    basis,
			Currency: currency,
		})
	}

	rate := e.tariff.Brackets.RateAt(weight, e.policy)
	add(types.ItemAirFreight, "Air Freight (airport to airport)", types.KindPerWeight,
		rate.Mul(weight), "interpolated rate per kg * weight")

	add(types.ItemExportDocs, "Export Documentation", types.KindFixed,
		fees.ExportDocumentation, "fixed per shipment")

	inland := fees.InlandBase.Add(fees.InlandAdValoremRate.Mul(value))
	add(types.ItemInlandTransport, "Inland Transport (Brazil)", types.KindAdValorem,
		inland, "base fee + 0.15% of cargo value")

	airport := decimal.Max(fees.AirportPerKg.Mul(weight), fees.AirportMinimum)
	add(types.ItemAirportCharges, "Brazil Airport Charges", types.KindPerWeight,
		airport, "per-kg charge with minimum floor")

	add(types.ItemTerminalFee, "US Airline Terminal Fee", types.KindFixed,
		fees.TerminalFee, "midpoint of quoted range")

	add(types.ItemImportHandling, "US Import Handling Fee", types.KindFixed,
		fees.ImportHandling, "fixed per shipment")

	add(types.ItemCustomsClearance, "US Customs Clearance", types.KindFixed,
		fees.CustomsClearance, "broker base fee")

	billableLines := input.InvoiceLines - fees.FreeInvoiceLines
	if billableLines < 0 {
		billableLines = 0
	}
	add(types.ItemInvoiceLines, "Invoice Line Items", types.KindConditional,
		fees.InvoiceLineFee.Mul(decimal.NewFromInt(int64(billableLines))),
		"per line beyond the free allowance")

	fda := decimal.Zero
	if input.FDARequired {
		fda = fees.FDAProcessing
	}
	add(types.ItemFDAProcessing, "FDA Processing", types.KindConditional,
		fda, "flat fee when FDA clearance required")

	bond := decimal.Zero
	if input.BondRequired {
		duty := input.DutyPercent.Div(hundred).Mul(value)
		raw := fees.BondPerThousand.Mul(value.Div(decimal.NewFromInt(1000))).Add(duty)
		bond = decimal.Max(raw, fees.BondMinimum)
	}
	add(types.ItemBond, "Bond (Single-Entry)", types.KindConditional,
		bond, "per $1000 of value plus duty, with minimum")

	mpf := clamp(fees.MPFRate.Mul(value), fees.MPFMinimum, fees.MPFMaximum)
	add(types.ItemMPF, "MPF (Merchandise Processing Fee)", types.KindAdValorem,
		mpf, "0.3464% of value, clamped to statutory bounds")

	add(types.ItemExamCharges, "US Customs Exam Charges", types.KindConditional,
		fees.ExamFee.Mul(decimal.NewFromInt(int64(input.CustomsExams))),
		"per expected exam")

	result.Total = result.Sum()
	result.PerKg = result.Total.Div(weight)
	return result, nil
}

// EstimateAll computes one independent estimate per weight tier,
// applying the shared options to each.
func (e *Estimator) EstimateAll(weights []decimal.Decimal, shared SharedOptions) ([]*types.EstimateResult, error) {
	results := make([]*types.EstimateResult, 0, len(weights))
	for _, w := range weights {
		result, err := e.Estimate(types.EstimateInput{
			WeightKg:     w,
			CargoValue:   shared.CargoValue,
			FDARequired:  shared.FDARequired,
			BondRequired: shared.BondRequired,
			InvoiceLines: shared.InvoiceLines,
			CustomsExams: shared.CustomsExams,
			DutyPercent:  shared.DutyPercent,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func validate(input types.EstimateInput) error {
	if input.WeightKg.Sign() <= 0 {
		return errors.Inputf("weight must be positive, got %s kg", input.WeightKg)
	}
	if input.CargoValue.Sign() < 0 {
		return errors.Inputf("cargo value must not be negative, got %s", input.CargoValue)
	}
	if input.InvoiceLines < 0 {
		return errors.Inputf("invoice line count must not be negative, got %d", input.InvoiceLines)
	}
	if input.CustomsExams < 0 {
		return errors.Inputf("customs exam count must not be negative, got %d", input.CustomsExams)
	}
	if input.DutyPercent.Sign() < 0 || input.DutyPercent.Cmp(hundred) > 0 {
		return errors.Inputf("duty percentage must be between 0 and 100, got %s", input.DutyPercent)
	}
	return nil
}

func clamp(v, min, max decimal.Decimal) decimal.Decimal {
	if v.Cmp(min) < 0 {
		return min
	}
	if v.Cmp(max) > 0 {
		return max
	}
	return v
}
