// Package cmd - tiers command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freight-cost/adapters/workbook"
	"freight-cost/core/estimator"
	"freight-cost/internal/logging"
)

var (
	tierWeights  string
	workbookPath string
)

// tiersCmd represents the tiers command
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Compare costs across weight tiers",
	Long: `Compute independent cost estimates for a set of weight tiers and
print a totals-by-weight comparison. With --out, the per-component
breakdown and totals are also written to an xlsx workbook.

Examples:
  freight-cost tiers
  freight-cost tiers --weights 250,400,600 --fda
  freight-cost tiers --bond --duty 5 --out costing.xlsx`,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().StringVar(&tierWeights, "weights", "200,300,500,750,1000", "comma-separated weight tiers in kg")
	tiersCmd.Flags().StringVarP(&workbookPath, "out", "o", "", "write breakdown workbook to this xlsx path")
	tiersCmd.Flags().Float64Var(&cargoValue, "value", 0, "declared cargo value in USD (default weight * $5/kg per tier)")
	tiersCmd.Flags().BoolVar(&fdaRequired, "fda", false, "FDA processing required")
	tiersCmd.Flags().BoolVar(&bondRequired, "bond", false, "single-entry bond required")
	tiersCmd.Flags().IntVar(&invoiceLines, "lines", 0, "invoice line count (first 3 free)")
	tiersCmd.Flags().IntVar(&customsExams, "exams", 0, "expected customs exam count")
	tiersCmd.Flags().Float64Var(&dutyPercent, "duty", 0, "duty estimate as percent of value (0-100)")
	tiersCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	tiersCmd.Flags().StringVarP(&tariffFile, "tariff", "t", "", "tariff override file (HCL)")
	tiersCmd.Flags().StringVar(&rangePolicy, "policy", "", "out-of-range rate policy (extend, clamp)")
}

func runTiers(cmd *cobra.Command, args []string) error {
	weights, err := parseWeights(tierWeights)
	if err != nil {
		return err
	}

	est, err := buildEstimator()
	if err != nil {
		return err
	}

	results, err := est.EstimateAll(weights, estimator.SharedOptions{
		CargoValue:   decimal.NewFromFloat(cargoValue),
		FDARequired:  fdaRequired,
		BondRequired: bondRequired,
		InvoiceLines: invoiceLines,
		CustomsExams: customsExams,
		DutyPercent:  decimal.NewFromFloat(dutyPercent),
	})
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}
	if err := formatter.RenderAll(os.Stdout, results); err != nil {
		return err
	}

	if workbookPath != "" {
		if err := workbook.Write(workbookPath, results); err != nil {
			return err
		}
		logging.Info("workbook written", zap.String("path", workbookPath))
		fmt.Printf("\nWorkbook written to %s\n", workbookPath)
	}
	return nil
}

func parseWeights(list string) ([]decimal.Decimal, error) {
	parts := strings.Split(list, ",")
	weights := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", part, err)
		}
		weights = append(weights, decimal.NewFromFloat(w))
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights given")
	}
	return weights, nil
}
