package calculator

import (
	"testing"

	"wheelscan/internal/domain"
	"wheelscan/internal/util"

	"github.com/stretchr/testify/require"
)

func TestDcfValue(t *testing.T) {
	t.Run("default growth mega cap", func(t *testing.T) {
		// $1/share FCF, no growth figure (4% default), 10% discount tier
		q := domain.Quote{
			CurrentPrice:      100,
			FreeCashFlow:      util.FloatPointer(1e9),
			SharesOutstanding: util.FloatPointer(1e9),
			MarketCap:         util.FloatPointer(300e9),
		}

		got := DcfValue(q)
		require.NotNil(t, got)
		require.InDelta(t, 13.9054, *got, 0.001)
	})

	t.Run("growth haircut and cap applied", func(t *testing.T) {
		// 30% observed growth -> 70% haircut is 21%, capped at 15%;
		// $5B market cap lands in the 14% discount tier
		q := domain.Quote{
			CurrentPrice:      100,
			FreeCashFlow:      util.FloatPointer(1e9),
			SharesOutstanding: util.FloatPointer(1e9),
			MarketCap:         util.FloatPointer(5e9),
			EarningsGrowth:    util.FloatPointer(0.30),
		}

		got := DcfValue(q)
		require.NotNil(t, got)
		require.InDelta(t, 13.3806, *got, 0.001)
	})

	t.Run("capped at 3x current price", func(t *testing.T) {
		q := domain.Quote{
			CurrentPrice:      2,
			FreeCashFlow:      util.FloatPointer(1e9),
			SharesOutstanding: util.FloatPointer(1e9),
			MarketCap:         util.FloatPointer(300e9),
		}

		got := DcfValue(q)
		require.NotNil(t, got)
		require.Equal(t, 6.0, *got)
	})

	t.Run("unknown when required inputs missing or non-positive", func(t *testing.T) {
		base := domain.Quote{
			CurrentPrice:      100,
			FreeCashFlow:      util.FloatPointer(1e9),
			SharesOutstanding: util.FloatPointer(1e9),
		}

		noFcf := base
		noFcf.FreeCashFlow = nil
		require.Nil(t, DcfValue(noFcf))

		negFcf := base
		negFcf.FreeCashFlow = util.FloatPointer(-1e9)
		require.Nil(t, DcfValue(negFcf))

		zeroShares := base
		zeroShares.SharesOutstanding = util.FloatPointer(0)
		require.Nil(t, DcfValue(zeroShares))
	})
}

func TestMultipleValue(t *testing.T) {
	t.Run("forward eps with forward pe", func(t *testing.T) {
		q := domain.Quote{
			ForwardEps: util.FloatPointer(5),
			ForwardPE:  util.FloatPointer(30),
		}
		got := MultipleValue(q)
		require.NotNil(t, got)
		// 5 * (30 * 0.60)
		require.InDelta(t, 90, *got, 0.0001)
	})

	t.Run("forward eps without multiple defaults to 20x", func(t *testing.T) {
		q := domain.Quote{ForwardEps: util.FloatPointer(5)}
		got := MultipleValue(q)
		require.NotNil(t, got)
		require.InDelta(t, 100, *got, 0.0001)
	})

	t.Run("trailing eps caps the multiple at 45", func(t *testing.T) {
		q := domain.Quote{
			TrailingEps: util.FloatPointer(2),
			TrailingPE:  util.FloatPointer(80),
		}
		got := MultipleValue(q)
		require.NotNil(t, got)
		require.InDelta(t, 90, *got, 0.0001)
	})

	t.Run("pre-profit names fall to revenue multiple", func(t *testing.T) {
		q := domain.Quote{
			PriceToSales:      util.FloatPointer(12),
			RevenueGrowth:     util.FloatPointer(0.60),
			TotalRevenue:      util.FloatPointer(2e9),
			SharesOutstanding: util.FloatPointer(1e9),
		}
		got := MultipleValue(q)
		require.NotNil(t, got)
		// $2 revenue/share at the >50% growth tier (5x)
		require.InDelta(t, 10, *got, 0.0001)
	})

	t.Run("book value is the last resort", func(t *testing.T) {
		q := domain.Quote{
			BookValuePerShare: util.FloatPointer(10),
			PriceToBook:       util.FloatPointer(5),
		}
		got := MultipleValue(q)
		require.NotNil(t, got)
		// P/B capped at 3.0
		require.InDelta(t, 30, *got, 0.0001)
	})

	t.Run("zero-valued fields are present, not missing", func(t *testing.T) {
		// a real 0.0 forward EPS must not match the positive-EPS path,
		// but must also not be confused with an absent field
		q := domain.Quote{
			ForwardEps:        util.FloatPointer(0),
			BookValuePerShare: util.FloatPointer(10),
		}
		got := MultipleValue(q)
		require.NotNil(t, got)
		require.InDelta(t, 15, *got, 0.0001)
	})

	t.Run("nothing known", func(t *testing.T) {
		require.Nil(t, MultipleValue(domain.Quote{}))
	})
}

func TestGrahamNumber(t *testing.T) {
	t.Run("classic bound", func(t *testing.T) {
		q := domain.Quote{
			TrailingEps:       util.FloatPointer(4),
			BookValuePerShare: util.FloatPointer(10),
		}
		got := GrahamNumber(q)
		require.NotNil(t, got)
		require.InDelta(t, 30, *got, 0.0001)
	})

	t.Run("requires positive earnings and book value", func(t *testing.T) {
		require.Nil(t, GrahamNumber(domain.Quote{TrailingEps: util.FloatPointer(4)}))
		require.Nil(t, GrahamNumber(domain.Quote{
			TrailingEps:       util.FloatPointer(-4),
			BookValuePerShare: util.FloatPointer(10),
		}))
	})
}

func TestValuation(t *testing.T) {
	t.Run("blend renormalizes by present weights", func(t *testing.T) {
		// only the multiple model converges, so the blend equals it
		q := domain.Quote{
			CurrentPrice: 80,
			ForwardEps:   util.FloatPointer(5),
		}
		v := Valuation(q)

		require.Nil(t, v.Dcf)
		require.NotNil(t, v.Fair)
		require.InDelta(t, 100, *v.Fair, 0.0001)
		require.NotNil(t, v.RelativeValuePct)
		require.InDelta(t, -20, *v.RelativeValuePct, 0.0001)
	})

	t.Run("both models blend 2:1", func(t *testing.T) {
		q := domain.Quote{
			CurrentPrice:      10,
			FreeCashFlow:      util.FloatPointer(1e9),
			SharesOutstanding: util.FloatPointer(1e9),
			MarketCap:         util.FloatPointer(300e9),
			ForwardEps:        util.FloatPointer(5),
		}
		v := Valuation(q)

		require.NotNil(t, v.Dcf)
		require.NotNil(t, v.Multiple)
		require.NotNil(t, v.Fair)
		expected := (*v.Dcf*0.50 + *v.Multiple*0.25) / 0.75
		require.InDelta(t, expected, *v.Fair, 0.0001)
	})

	t.Run("falls back to haircut analyst target", func(t *testing.T) {
		q := domain.Quote{
			CurrentPrice:      90,
			AnalystTargetMean: util.FloatPointer(100),
		}
		v := Valuation(q)

		require.NotNil(t, v.Fair)
		require.InDelta(t, 85, *v.Fair, 0.0001)
	})

	t.Run("fully unknown leaves fair value and relative value unset", func(t *testing.T) {
		v := Valuation(domain.Quote{CurrentPrice: 50})
		require.Nil(t, v.Fair)
		require.Nil(t, v.RelativeValuePct)
	})
}
