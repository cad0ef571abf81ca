// Package tariff - Rate interpolation
package tariff

import "github.com/shopspring/decimal"

// ExtrapolationPolicy controls how rates are derived for weights
// outside the bracket range
type ExtrapolationPolicy string

const (
	// PolicyExtend extrapolates using the slope of the nearest two brackets
	PolicyExtend ExtrapolationPolicy = "extend"

	// PolicyClamp holds the nearest bracket's rate flat
	PolicyClamp ExtrapolationPolicy = "clamp"
)

// Valid reports whether the policy is a known value
func (p ExtrapolationPolicy) Valid() bool {
	return p == PolicyExtend || p == PolicyClamp
}

// RateAt returns the per-kg air freight rate for the given weight.
//
// Exact breakpoint matches return the quoted rate directly. Weights
// between two breakpoints are linearly interpolated. Weights outside
// the bracket range follow the extrapolation policy; the result is
// always numerically defined for positive weights.
func (t RateTable) RateAt(weightKg decimal.Decimal, policy ExtrapolationPolicy) decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	if len(t) == 1 {
		return t[0].RatePerKg
	}

	lowest, highest := t[0], t[len(t)-1]
	switch {
	case weightKg.Cmp(lowest.WeightKg) < 0:
		if policy == PolicyClamp {
			return lowest.RatePerKg
		}
		return interpolate(weightKg, t[0], t[1])
	case weightKg.Cmp(highest.WeightKg) > 0:
		if policy == PolicyClamp {
			return highest.RatePerKg
		}
		return interpolate(weightKg, t[len(t)-2], t[len(t)-1])
	}

	for i, b := range t {
		if weightKg.Equal(b.WeightKg) {
			return b.RatePerKg
		}
		if i > 0 && weightKg.Cmp(b.WeightKg) < 0 {
			return interpolate(weightKg, t[i-1], b)
		}
	}

	// Unreachable once the range checks above have passed
	return highest.RatePerKg
}

// interpolate computes r1 + (w - w1)/(w2 - w1) * (r2 - r1)
func interpolate(w decimal.Decimal, lo, hi RateBracket) decimal.Decimal {
	span := hi.WeightKg.Sub(lo.WeightKg)
	fraction := w.Sub(lo.WeightKg).Div(span)
	return lo.RatePerKg.Add(fraction.Mul(hi.RatePerKg.Sub(lo.RatePerKg)))
}
