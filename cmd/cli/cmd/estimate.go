// Package cmd - estimate command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tariffhcl "freight-cost/adapters/hcl"
	"freight-cost/core/estimator"
	"freight-cost/core/output"
	"freight-cost/core/tariff"
	"freight-cost/core/types"
	"freight-cost/internal/config"
	"freight-cost/internal/logging"
)

var (
	weightKg     float64
	cargoValue   float64
	fdaRequired  bool
	bondRequired bool
	invoiceLines int
	customsExams int
	dutyPercent  float64
	outputFormat string
	tariffFile   string
	rangePolicy  string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a single shipment",
	Long: `Compute a line-itemized cost breakdown for one shipment weight.

Air freight is interpolated between the quoted weight brackets; weights
outside the bracket range follow the configured extrapolation policy.

Examples:
  freight-cost estimate --weight 500
  freight-cost estimate --weight 400 --value 2500 --fda
  freight-cost estimate --weight 750 --bond --duty 5 --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64VarP(&weightKg, "weight", "w", 0, "shipment weight in kg (required)")
	estimateCmd.Flags().Float64Var(&cargoValue, "value", 0, "declared cargo value in USD (default weight * $5/kg)")
	estimateCmd.Flags().BoolVar(&fdaRequired, "fda", false, "FDA processing required")
	estimateCmd.Flags().BoolVar(&bondRequired, "bond", false, "single-entry bond required")
	estimateCmd.Flags().IntVar(&invoiceLines, "lines", 0, "invoice line count (first 3 free)")
	estimateCmd.Flags().IntVar(&customsExams, "exams", 0, "expected customs exam count")
	estimateCmd.Flags().Float64Var(&dutyPercent, "duty", 0, "duty estimate as percent of value (0-100)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&tariffFile, "tariff", "t", "", "tariff override file (HCL)")
	estimateCmd.Flags().StringVar(&rangePolicy, "policy", "", "out-of-range rate policy (extend, clamp)")
	_ = estimateCmd.MarkFlagRequired("weight")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	est, err := buildEstimator()
	if err != nil {
		return err
	}

	input := types.EstimateInput{
		WeightKg:     decimal.NewFromFloat(weightKg),
		CargoValue:   decimal.NewFromFloat(cargoValue),
		FDARequired:  fdaRequired,
		BondRequired: bondRequired,
		InvoiceLines: invoiceLines,
		CustomsExams: customsExams,
		DutyPercent:  decimal.NewFromFloat(dutyPercent),
	}

	result, err := est.Estimate(input)
	if err != nil {
		return err
	}
	logging.Debug("estimate computed",
		zap.String("weight_kg", result.WeightKg.String()),
		zap.String("total", result.Total.String()))

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

// buildEstimator assembles an estimator from the tariff and policy flags,
// falling back to the configured defaults.
func buildEstimator() (*estimator.Estimator, error) {
	cfg := config.Get()

	path := tariffFile
	if path == "" {
		path = cfg.Tariff.Path
	}

	t := tariff.Default()
	if path != "" {
		loaded, err := tariffhcl.Load(path)
		if err != nil {
			return nil, err
		}
		t = loaded
		logging.Debug("tariff loaded", zap.String("path", path))
	}

	policy := cfg.Tariff.ExtrapolationPolicy
	if rangePolicy != "" {
		policy = tariff.ExtrapolationPolicy(rangePolicy)
	}

	return estimator.NewWithPolicy(t, policy), nil
}

func resolveFormatter() (output.Formatter, error) {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	formatter, err := output.For(output.Format(format))
	if err != nil {
		return nil, err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowDetails = config.Get().Output.ShowDetails
	}
	return formatter, nil
}
