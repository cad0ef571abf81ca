// Package hcl loads tariff override files.
// A tariff file replaces the built-in carrier quotation with a newer
// one without rebuilding:
//
//	tariff {
//	  currency = "USD"
//
//	  bracket {
//	    weight_kg   = 200
//	    rate_per_kg = 3.50
//	  }
//
//	  fees {
//	    export_documentation = 95
//	    terminal_fee         = 212.50
//	  }
//	}
//
// Brackets, when present, replace the whole rate table; fee fields
// override individually.
package hcl

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"freight-cost/core/tariff"
	"freight-cost/core/types"
	"freight-cost/internal/errors"
)

type tariffFile struct {
	Tariff *tariffBlock `hcl:"tariff,block"`
}

type tariffBlock struct {
	Currency string         `hcl:"currency,optional"`
	Brackets []bracketBlock `hcl:"bracket,block"`
	Fees     *feesBlock     `hcl:"fees,block"`
}

type bracketBlock struct {
	WeightKg  float64 `hcl:"weight_kg"`
	RatePerKg float64 `hcl:"rate_per_kg"`
}

type feesBlock struct {
	ExportDocumentation *float64 `hcl:"export_documentation,optional"`
	InlandBase          *float64 `hcl:"inland_base,optional"`
	InlandAdValoremRate *float64 `hcl:"inland_ad_valorem_rate,optional"`
	AirportPerKg        *float64 `hcl:"airport_per_kg,optional"`
	AirportMinimum      *float64 `hcl:"airport_minimum,optional"`
	TerminalFee         *float64 `hcl:"terminal_fee,optional"`
	ImportHandling      *float64 `hcl:"import_handling,optional"`
	CustomsClearance    *float64 `hcl:"customs_clearance,optional"`
	FreeInvoiceLines    *int     `hcl:"free_invoice_lines,optional"`
	InvoiceLineFee      *float64 `hcl:"invoice_line_fee,optional"`
	FDAProcessing       *float64 `hcl:"fda_processing,optional"`
	BondMinimum         *float64 `hcl:"bond_minimum,optional"`
	BondPerThousand     *float64 `hcl:"bond_per_thousand,optional"`
	MPFRate             *float64 `hcl:"mpf_rate,optional"`
	MPFMinimum          *float64 `hcl:"mpf_minimum,optional"`
	MPFMaximum          *float64 `hcl:"mpf_maximum,optional"`
	ExamFee             *float64 `hcl:"exam_fee,optional"`
	DefaultValuePerKg   *float64 `hcl:"default_value_per_kg,optional"`
}

// Load parses a tariff file and applies it over the built-in quotation
func Load(path string) (*tariff.Tariff, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Tariff("failed to parse tariff file", diags)
	}

	var parsed tariffFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Tariff("failed to decode tariff file", diags)
	}
	if parsed.Tariff == nil {
		return nil, errors.New(errors.TypeTariff, "tariff file has no tariff block")
	}

	t := tariff.Default()
	if parsed.Tariff.Currency != "" {
		t.Currency = types.Currency(parsed.Tariff.Currency)
	}
	if len(parsed.Tariff.Brackets) > 0 {
		brackets := make(tariff.RateTable, 0, len(parsed.Tariff.Brackets))
		for _, b := range parsed.Tariff.Brackets {
			brackets = append(brackets, tariff.RateBracket{
				WeightKg:  decimal.NewFromFloat(b.WeightKg),
				RatePerKg: decimal.NewFromFloat(b.RatePerKg),
			})
		}
		t.Brackets = brackets
	}
	if parsed.Tariff.Fees != nil {
		applyFees(&t.Fees, parsed.Tariff.Fees)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func applyFees(fees *tariff.FeeSchedule, overrides *feesBlock) {
	setDec := func(dst *decimal.Decimal, src *float64) {
		if src != nil {
			*dst = decimal.NewFromFloat(*src)
		}
	}
	setDec(&fees.ExportDocumentation, overrides.ExportDocumentation)
	setDec(&fees.InlandBase, overrides.InlandBase)
	setDec(&fees.InlandAdValoremRate, overrides.InlandAdValoremRate)
	setDec(&fees.AirportPerKg, overrides.AirportPerKg)
	setDec(&fees.AirportMinimum, overrides.AirportMinimum)
	setDec(&fees.TerminalFee, overrides.TerminalFee)
	setDec(&fees.ImportHandling, overrides.ImportHandling)
	setDec(&fees.CustomsClearance, overrides.CustomsClearance)
	if overrides.FreeInvoiceLines != nil {
		fees.FreeInvoiceLines = *overrides.FreeInvoiceLines
	}
	setDec(&fees.InvoiceLineFee, overrides.InvoiceLineFee)
	setDec(&fees.FDAProcessing, overrides.FDAProcessing)
	setDec(&fees.BondMinimum, overrides.BondMinimum)
	setDec(&fees.BondPerThousand, overrides.BondPerThousand)
	setDec(&fees.MPFRate, overrides.MPFRate)
	setDec(&fees.MPFMinimum, overrides.MPFMinimum)
	setDec(&fees.MPFMaximum, overrides.MPFMaximum)
	setDec(&fees.ExamFee, overrides.ExamFee)
	setDec(&fees.DefaultValuePerKg, overrides.DefaultValuePerKg)
}
