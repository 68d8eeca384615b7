package domain

import (
	"time"
)

type Strategy string

const (
	StrategyCoveredCall    Strategy = "Covered Call"
	StrategyCashSecuredPut Strategy = "Cash-Secured Put"
)

// Quote is a point-in-time snapshot of a symbol's price and fundamentals.
// Every field except Symbol and CurrentPrice may be missing upstream, so
// they are pointers - nil means the provider didn't have it, which is not
// the same as zero. A 0.0 dividend yield is a real value.
type Quote struct {
	Symbol       string
	CurrentPrice float64

	TrailingPE    *float64
	ForwardPE     *float64
	PriceToBook   *float64
	PegRatio      *float64
	PriceToSales  *float64
	MarketCap     *float64
	DividendYield *float64
	EvToEbitda    *float64

	AnalystTargetMean *float64
	AnalystTargetLow  *float64
	AnalystTargetHigh *float64
	NumAnalysts       *int

	TrailingEps       *float64
	ForwardEps        *float64
	BookValuePerShare *float64
	FreeCashFlow      *float64
	SharesOutstanding *float64
	EarningsGrowth    *float64
	RevenueGrowth     *float64
	TotalRevenue      *float64
}

// OptionContract is a single listed contract row from a chain. Bid/ask are
// frequently zero outside market hours; volume and open interest may be
// missing entirely for illiquid strikes.
type OptionContract struct {
	Strike            float64
	Bid               float64
	Ask               float64
	LastPrice         float64
	Volume            *int
	OpenInterest      *int
	ImpliedVolatility *float64
}

// OptionChain holds both sides of a chain for one expiration, in the order
// the provider returned them.
type OptionChain struct {
	Symbol     string
	Expiration string
	Calls      []OptionContract
	Puts       []OptionContract
}

// Enrichment is best-effort context from the secondary provider. Either
// field may be absent; an empty Enrichment is still valid.
type Enrichment struct {
	// implied vol as a percentage of historical vol (100 = trading at HV)
	IVPercentile *float64
	// most recent first, at most 3
	Headlines []string
}

// ValuationSnapshot carries the ratio set and model outputs shared by both
// strategy rows of a symbol. Nil means the model declined to produce a
// number, not that the value is zero.
type ValuationSnapshot struct {
	PeRatio       *float64 `json:"pe_ratio" csv:"pe_ratio"`
	PbRatio       *float64 `json:"pb_ratio" csv:"pb_ratio"`
	PegRatio      *float64 `json:"peg_ratio" csv:"peg_ratio"`
	PsRatio       *float64 `json:"ps_ratio" csv:"ps_ratio"`
	MarketCap     *float64 `json:"market_cap" csv:"market_cap"`
	DividendYield *float64 `json:"dividend_yield" csv:"dividend_yield"`
	EvEbitda      *float64 `json:"ev_ebitda" csv:"ev_ebitda"`

	DcfValue     *float64 `json:"dcf_intrinsic_value" csv:"dcf_intrinsic_value"`
	FairValue    *float64 `json:"fair_value" csv:"fair_value"`
	GrahamNumber *float64 `json:"graham_number" csv:"graham_number"`

	AnalystTarget *float64 `json:"analyst_target" csv:"analyst_target"`
	AnalystLow    *float64 `json:"analyst_low" csv:"analyst_low"`
	AnalystHigh   *float64 `json:"analyst_high" csv:"analyst_high"`
	NumAnalysts   *int     `json:"num_analysts" csv:"num_analysts"`

	RelativeValuePct *float64 `json:"relative_value_pct" csv:"relative_value_pct"`
}

// AnalysisResult is one sellable-contract candidate. Constructed exactly
// once per symbol/strategy pair per invocation and never mutated after.
type AnalysisResult struct {
	Symbol           string   `json:"symbol" csv:"symbol"`
	Strategy         Strategy `json:"strategy" csv:"strategy"`
	CurrentPrice     float64  `json:"current_price" csv:"current_price"`
	StrikePrice      float64  `json:"strike_price" csv:"strike_price"`
	ExpirationDate   string   `json:"expiration_date" csv:"expiration_date"`
	DaysToExpiration int      `json:"days_to_expiration" csv:"days_to_expiration"`

	PremiumPerShare  float64 `json:"premium_per_share" csv:"premium_per_share"`
	PremiumTotal     float64 `json:"premium_total" csv:"premium_total"`
	CapitalRequired  float64 `json:"capital_required" csv:"capital_required"`
	ReturnPercentage float64 `json:"return_percentage" csv:"return_percentage"`

	Volume            *int     `json:"volume" csv:"volume"`
	OpenInterest      *int     `json:"open_interest" csv:"open_interest"`
	ImpliedVolatility *float64 `json:"implied_volatility" csv:"implied_volatility"`
	IVReason          string   `json:"iv_reason" csv:"iv_reason"`

	ValuationSnapshot
}

// AnalysisReport is the (results, errors) pair handed verbatim to callers.
// Results are sorted descending by return percentage. A symbol may appear
// in both maps - one tradable side plus an advisory about the missing side.
type AnalysisReport struct {
	Results []AnalysisResult  `json:"results"`
	Errors  map[string]string `json:"errors"`
}

// ExpirationOf parses an ISO chain expiration date. Dates are treated as
// UTC calendar days, matching the provider's format.
func ExpirationOf(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
