package calculator

import (
	"math"

	"wheelscan/internal/domain"
	"wheelscan/internal/util"
)

// Heuristic valuation models. None of these are exact financial theory -
// they are screening approximations with deliberately conservative
// parameters, and every one of them yields nil instead of guessing when a
// required input is missing.

// DCF parameters. One consistent set: 70% haircut on observed earnings
// growth capped at 15%, 4% default when growth is unknown or negative,
// discount rate tiered by market cap, 2.5% terminal growth.
const (
	dcfGrowthHaircut  = 0.70
	dcfGrowthCap      = 0.15
	dcfDefaultGrowth  = 0.04
	dcfTerminalGrowth = 0.025
	dcfStage1Decay    = 0.85
	dcfPriceCapMult   = 3.0
)

// Smaller issuers carry a higher required return.
func dcfDiscountRate(marketCap *float64) float64 {
	if marketCap == nil {
		return 0.12
	}
	switch {
	case *marketCap > 200e9:
		return 0.10
	case *marketCap > 50e9:
		return 0.11
	case *marketCap > 10e9:
		return 0.12
	default:
		return 0.14
	}
}

// DcfValue runs a two-stage (5+5 year) discounted free-cash-flow model.
// Stage one decays the initial growth rate geometrically; stage two walks
// it linearly down to the terminal rate; a Gordon-growth terminal value
// covers everything past year ten. The result is capped at 3x the current
// price to suppress blow-ups when the discount rate barely clears the
// terminal rate.
func DcfValue(q domain.Quote) *float64 {
	if q.FreeCashFlow == nil || q.SharesOutstanding == nil {
		return nil
	}
	if *q.FreeCashFlow <= 0 || *q.SharesOutstanding <= 0 {
		return nil
	}
	fcfPerShare := *q.FreeCashFlow / *q.SharesOutstanding

	growthRate := dcfDefaultGrowth
	if q.EarningsGrowth != nil && *q.EarningsGrowth > 0 {
		growthRate = math.Min(*q.EarningsGrowth*dcfGrowthHaircut, dcfGrowthCap)
	}

	discountRate := dcfDiscountRate(q.MarketCap)
	if discountRate <= dcfTerminalGrowth {
		// perpetuity formula is undefined below the terminal rate
		return nil
	}

	currentFcf := fcfPerShare
	yearGrowth := growthRate
	totalPv := 0.0

	// stage 1: high growth, decaying geometrically
	for year := 1; year <= 5; year++ {
		yearGrowth = growthRate * math.Pow(dcfStage1Decay, float64(year-1))
		currentFcf *= 1 + yearGrowth
		totalPv += currentFcf / math.Pow(1+discountRate, float64(year))
	}

	// stage 2: linear glide from stage-1 exit growth down to terminal
	exitGrowth := yearGrowth
	for year := 6; year <= 10; year++ {
		yearsLeft := float64(10 - year)
		yearGrowth = dcfTerminalGrowth + (exitGrowth-dcfTerminalGrowth)*(yearsLeft/5)
		currentFcf *= 1 + yearGrowth
		totalPv += currentFcf / math.Pow(1+discountRate, float64(year))
	}

	terminalFcf := currentFcf * (1 + dcfTerminalGrowth)
	terminalValue := terminalFcf / (discountRate - dcfTerminalGrowth)
	totalPv += terminalValue / math.Pow(1+discountRate, 10)

	if q.CurrentPrice > 0 && totalPv > q.CurrentPrice*dcfPriceCapMult {
		totalPv = q.CurrentPrice * dcfPriceCapMult
	}

	return util.CleanFloat(&totalPv)
}

// multipleRule is one sub-path of the earnings/revenue multiple model.
// Exactly one executes per symbol: the first whose preconditions hold.
type multipleRule struct {
	applies func(q domain.Quote) bool
	value   func(q domain.Quote) float64
}

var multipleRules = []multipleRule{
	// forward earnings at a discounted forward multiple
	{
		applies: func(q domain.Quote) bool {
			return q.ForwardEps != nil && *q.ForwardEps > 0
		},
		value: func(q domain.Quote) float64 {
			fairPe := 20.0
			if q.ForwardPE != nil && *q.ForwardPE > 0 {
				fairPe = *q.ForwardPE * 0.60
			}
			return *q.ForwardEps * fairPe
		},
	},
	// trailing earnings, multiple capped at 45
	{
		applies: func(q domain.Quote) bool {
			return q.TrailingEps != nil && *q.TrailingEps > 0
		},
		value: func(q domain.Quote) float64 {
			fairPe := 20.0
			if q.ForwardPE != nil && *q.ForwardPE > 0 {
				fairPe = *q.ForwardPE * 1.05
			} else if q.TrailingPE != nil && *q.TrailingPE > 0 {
				fairPe = math.Min(*q.TrailingPE*1.05, 45)
			}
			return *q.TrailingEps * fairPe
		},
	},
	// pre-profit names: revenue per share at a growth-tiered P/S
	{
		applies: func(q domain.Quote) bool {
			return q.PriceToSales != nil && q.RevenueGrowth != nil &&
				q.TotalRevenue != nil && *q.TotalRevenue > 0 &&
				q.SharesOutstanding != nil && *q.SharesOutstanding > 0
		},
		value: func(q domain.Quote) float64 {
			revenuePerShare := *q.TotalRevenue / *q.SharesOutstanding
			growth := *q.RevenueGrowth
			targetPs := 2.0
			switch {
			case growth > 1.0:
				targetPs = 8
			case growth > 0.5:
				targetPs = 5
			case growth > 0.25:
				targetPs = 3
			}
			return revenuePerShare * targetPs
		},
	},
	// asset-heavy fallback: book value at a capped P/B
	{
		applies: func(q domain.Quote) bool {
			return q.BookValuePerShare != nil && *q.BookValuePerShare > 0
		},
		value: func(q domain.Quote) float64 {
			targetPb := 1.5
			if q.PriceToBook != nil && *q.PriceToBook > 0 {
				targetPb = math.Min(*q.PriceToBook, 3.0)
			}
			return *q.BookValuePerShare * targetPb
		},
	},
}

// MultipleValue applies the earnings-or-revenue multiple model. Sub-paths
// are tried in strict order; nil when no precondition holds.
func MultipleValue(q domain.Quote) *float64 {
	for _, rule := range multipleRules {
		if rule.applies(q) {
			v := rule.value(q)
			return util.CleanFloat(&v)
		}
	}
	return nil
}

// GrahamNumber is the classic sqrt(22.5 * EPS * BVPS) bound. Informational
// only - it never participates in the blend.
func GrahamNumber(q domain.Quote) *float64 {
	if q.TrailingEps == nil || *q.TrailingEps <= 0 {
		return nil
	}
	if q.BookValuePerShare == nil || *q.BookValuePerShare <= 0 {
		return nil
	}
	v := math.Sqrt(22.5 * *q.TrailingEps * *q.BookValuePerShare)
	return util.CleanFloat(&v)
}

// Blend weights: the DCF carries more signal than a single multiple, so it
// gets double weight. Weights renormalize by whatever actually produced a
// positive value.
const (
	blendDcfWeight      = 0.50
	blendMultipleWeight = 0.25
	analystTargetFactor = 0.85
)

type IntrinsicValue struct {
	Dcf              *float64
	Multiple         *float64
	Graham           *float64
	Fair             *float64
	RelativeValuePct *float64
}

// Valuation computes every model plus the blended fair value for a symbol.
// When neither model converges it falls back to a haircut analyst mean
// target; when that too is absent, Fair and RelativeValuePct stay nil.
func Valuation(q domain.Quote) IntrinsicValue {
	out := IntrinsicValue{
		Dcf:      DcfValue(q),
		Multiple: MultipleValue(q),
		Graham:   GrahamNumber(q),
	}

	weightedSum := 0.0
	totalWeight := 0.0
	if out.Dcf != nil && *out.Dcf > 0 {
		weightedSum += *out.Dcf * blendDcfWeight
		totalWeight += blendDcfWeight
	}
	if out.Multiple != nil && *out.Multiple > 0 {
		weightedSum += *out.Multiple * blendMultipleWeight
		totalWeight += blendMultipleWeight
	}

	if totalWeight > 0 {
		out.Fair = util.FloatPointer(weightedSum / totalWeight)
	} else if q.AnalystTargetMean != nil && *q.AnalystTargetMean > 0 {
		out.Fair = util.FloatPointer(*q.AnalystTargetMean * analystTargetFactor)
	}
	out.Fair = util.CleanFloat(out.Fair)

	// negative means the market is pricing below our fair value estimate
	if out.Fair != nil && *out.Fair > 0 {
		rel := (q.CurrentPrice - *out.Fair) / *out.Fair * 100
		out.RelativeValuePct = util.CleanFloat(&rel)
	}

	return out
}
