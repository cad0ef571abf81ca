// Package tariff holds the carrier rate table and fee schedule.
// All estimation math flows from these values; the estimator
// declares intent, the tariff owns the numbers.
package tariff

import (
	"github.com/shopspring/decimal"

	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

// RateBracket maps a weight breakpoint to a quoted per-kg air rate
type RateBracket struct {
	// WeightKg is the bracket breakpoint in kilograms
	WeightKg decimal.Decimal `json:"weight_kg"`

	// RatePerKg is the quoted air freight rate at this breakpoint
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
}

// RateTable is an ordered list of rate brackets.
// Invariant: breakpoints are strictly increasing.
type RateTable []RateBracket

// Validate checks the rate table invariants
func (t RateTable) Validate() error {
	if len(t) == 0 {
		return errors.New(errors.TypeTariff, "rate table is empty")
	}
	for i, b := range t {
		if b.WeightKg.Sign() <= 0 {
			return errors.Newf(errors.TypeTariff, "bracket %d: breakpoint must be positive, got %s", i, b.WeightKg)
		}
		if b.RatePerKg.Sign() < 0 {
			return errors.Newf(errors.TypeTariff, "bracket %d: rate must not be negative, got %s", i, b.RatePerKg)
		}
		if i > 0 && b.WeightKg.Cmp(t[i-1].WeightKg) <= 0 {
			return errors.Newf(errors.TypeTariff, "bracket %d: breakpoints must be strictly increasing (%s after %s)",
				i, b.WeightKg, t[i-1].WeightKg)
		}
	}
	return nil
}

// FeeSchedule contains every fixed and conditional fee of the quotation
type FeeSchedule struct {
	// ExportDocumentation is a fixed fee per shipment
	ExportDocumentation decimal.Decimal `json:"export_documentation"`

	// InlandBase is the fixed part of the inland transport fee
	InlandBase decimal.Decimal `json:"inland_base"`

	// InlandAdValoremRate is applied to the cargo value (0.0015 = 0.15%)
	InlandAdValoremRate decimal.Decimal `json:"inland_ad_valorem_rate"`

	// AirportPerKg is the origin airport charge per kg
	AirportPerKg decimal.Decimal `json:"airport_per_kg"`

	// AirportMinimum floors the origin airport charge
	AirportMinimum decimal.Decimal `json:"airport_minimum"`

	// TerminalFee is the destination airline terminal fee
	TerminalFee decimal.Decimal `json:"terminal_fee"`

	// ImportHandling is a fixed handling fee per shipment
	ImportHandling decimal.Decimal `json:"import_handling"`

	// CustomsClearance is the customs broker base fee
	CustomsClearance decimal.Decimal `json:"customs_clearance"`

	// FreeInvoiceLines is the number of invoice lines included for free
	FreeInvoiceLines int `json:"free_invoice_lines"`

	// InvoiceLineFee is charged per invoice line beyond the free allowance
	InvoiceLineFee decimal.Decimal `json:"invoice_line_fee"`

	// FDAProcessing applies only when FDA clearance is required
	FDAProcessing decimal.Decimal `json:"fda_processing"`

	// BondMinimum floors the single-entry bond fee
	BondMinimum decimal.Decimal `json:"bond_minimum"`

	// BondPerThousand is the bond rate per $1000 of cargo value
	BondPerThousand decimal.Decimal `json:"bond_per_thousand"`

	// MPFRate is the merchandise processing fee rate (0.003464 = 0.3464%)
	MPFRate decimal.Decimal `json:"mpf_rate"`

	// MPFMinimum is the statutory MPF floor
	MPFMinimum decimal.Decimal `json:"mpf_minimum"`

	// MPFMaximum is the statutory MPF cap
	MPFMaximum decimal.Decimal `json:"mpf_maximum"`

	// ExamFee is charged per customs exam
	ExamFee decimal.Decimal `json:"exam_fee"`

	// DefaultValuePerKg derives a cargo value when none is declared
	DefaultValuePerKg decimal.Decimal `json:"default_value_per_kg"`
}

// Tariff bundles the rate table and fee schedule for one quotation
type Tariff struct {
	// Currency is the quotation currency
	Currency types.Currency `json:"currency"`

	// Brackets is the air freight rate table
	Brackets RateTable `json:"brackets"`

	// Fees is the fee schedule
	Fees FeeSchedule `json:"fees"`
}

// Validate checks the tariff invariants
func (t *Tariff) Validate() error {
	return t.Brackets.Validate()
}

// Default returns the SeaCoast Logistics quotation of November 2025
// (Ilheus to San Francisco, airport to airport).
func Default() *Tariff {
	return &Tariff{
		Currency: types.CurrencyUSD,
		Brackets: RateTable{
			{WeightKg: decimal.NewFromInt(200), RatePerKg: decimal.NewFromFloat(3.50)},
			{WeightKg: decimal.NewFromInt(300), RatePerKg: decimal.NewFromFloat(3.40)},
			{WeightKg: decimal.NewFromInt(500), RatePerKg: decimal.NewFromFloat(3.30)},
			{WeightKg: decimal.NewFromInt(750), RatePerKg: decimal.NewFromFloat(3.30)},
			{WeightKg: decimal.NewFromInt(1000), RatePerKg: decimal.NewFromFloat(3.20)},
		},
		Fees: FeeSchedule{
			ExportDocumentation: decimal.NewFromInt(95),
			InlandBase:          decimal.NewFromInt(695),
			InlandAdValoremRate: decimal.NewFromFloat(0.0015),
			AirportPerKg:        decimal.NewFromFloat(0.30),
			AirportMinimum:      decimal.NewFromInt(250),
			// Airline quotes a 200-225 range; midpoint used.
			TerminalFee:       decimal.NewFromFloat(212.50),
			ImportHandling:    decimal.NewFromInt(125),
			CustomsClearance:  decimal.NewFromInt(150),
			FreeInvoiceLines:  3,
			InvoiceLineFee:    decimal.NewFromInt(5),
			FDAProcessing:     decimal.NewFromInt(100),
			BondMinimum:       decimal.NewFromInt(100),
			BondPerThousand:   decimal.NewFromInt(6),
			MPFRate:           decimal.NewFromFloat(0.003464),
			MPFMinimum:        decimal.NewFromFloat(33.58),
			MPFMaximum:        decimal.NewFromFloat(651.50),
			ExamFee:           decimal.NewFromInt(125),
			DefaultValuePerKg: decimal.NewFromInt(5),
		},
	}
}

// DefaultWeightTiers are the representative shipment weights used for
// comparative cost projection.
func DefaultWeightTiers() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromInt(200),
		decimal.NewFromInt(300),
		decimal.NewFromInt(500),
		decimal.NewFromInt(750),
		decimal.NewFromInt(1000),
	}
}
