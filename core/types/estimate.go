// Package types - Freight estimate types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// ComponentKind classifies how a cost line item is computed
type ComponentKind string

const (
	// KindFixed is a flat per-shipment amount
	KindFixed ComponentKind = "fixed"

	// KindPerWeight scales with the shipment weight
	KindPerWeight ComponentKind = "per_weight"

	// KindAdValorem scales with the declared cargo value
	KindAdValorem ComponentKind = "ad_valorem"

	// KindConditional is gated on a flag or a count threshold
	KindConditional ComponentKind = "conditional"
)

// Line item identifiers, in breakdown order.
const (
	ItemAirFreight       = "air_freight"
	ItemExportDocs       = "export_documentation"
	ItemInlandTransport  = "inland_transport"
	ItemAirportCharges   = "airport_charges"
	ItemTerminalFee      = "terminal_fee"
	ItemImportHandling   = "import_handling"
	ItemCustomsClearance = "customs_clearance"
	ItemInvoiceLines     = "invoice_lines"
	ItemFDAProcessing    = "fda_processing"
	ItemBond             = "bond"
	ItemMPF              = "mpf"
	ItemExamCharges      = "exam_charges"
)

// CostLineItem represents a single named cost component
type CostLineItem struct {
	// ID uniquely identifies this line item
	ID string `json:"id"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Kind classifies how the amount was computed
	Kind ComponentKind `json:"kind"`

	// Amount is the computed cost
	Amount decimal.Decimal `json:"amount"`

	// Basis describes how the amount was calculated
	Basis string `json:"basis,omitempty"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`
}

// EstimateInput contains the user-supplied parameters for one estimate
type EstimateInput struct {
	// WeightKg is the chargeable shipment weight in kilograms
	WeightKg decimal.Decimal `json:"weight_kg"`

	// CargoValue is the declared cargo value in USD.
	// Zero means "not supplied" and defaults to weight times the
	// tariff's per-kg default value.
	CargoValue decimal.Decimal `json:"cargo_value"`

	// FDARequired indicates whether FDA processing applies
	FDARequired bool `json:"fda_required"`

	// BondRequired indicates whether a single-entry bond is needed
	BondRequired bool `json:"bond_required"`

	// InvoiceLines is the number of invoice line items (first 3 free)
	InvoiceLines int `json:"invoice_lines"`

	// CustomsExams is the expected number of customs exams
	CustomsExams int `json:"customs_exams"`

	// DutyPercent is the duty estimate as a percentage of value (0-100)
	DutyPercent decimal.Decimal `json:"duty_percent"`
}

// EstimateResult is the line-itemized breakdown for one weight tier
type EstimateResult struct {
	// WeightKg is the weight the estimate was computed for
	WeightKg decimal.Decimal `json:"weight_kg"`

	// CargoValue is the cargo value used (after defaulting)
	CargoValue decimal.Decimal `json:"cargo_value"`

	// Items contains the ordered cost line items
	Items []CostLineItem `json:"items"`

	// Total is the sum of all line items
	Total decimal.Decimal `json:"total"`

	// PerKg is Total divided by WeightKg
	PerKg decimal.Decimal `json:"per_kg"`

	// Currency is the result currency
	Currency Currency `json:"currency"`
}

// Item returns the line item with the given ID
func (r *EstimateResult) Item(id string) (CostLineItem, bool) {
	for _, item := range r.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CostLineItem{}, false
}

// Sum recomputes the total from the individual line items
func (r *EstimateResult) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Amount)
	}
	return total
}
