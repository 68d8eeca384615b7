package calculator

import (
	"math"
	"testing"

	"wheelscan/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPremiumPerShare(t *testing.T) {
	t.Run("bid wins when positive", func(t *testing.T) {
		got := PremiumPerShare(domain.OptionContract{Bid: 2.50, Ask: 2.70, LastPrice: 2.40})
		require.Equal(t, 2.50, got)
	})

	t.Run("zero bid falls to midpoint", func(t *testing.T) {
		got := PremiumPerShare(domain.OptionContract{Bid: 0, Ask: 4.00, LastPrice: 1.00})
		require.Equal(t, 2.00, got)
	})

	t.Run("no quotes falls to last trade", func(t *testing.T) {
		got := PremiumPerShare(domain.OptionContract{Bid: 0, Ask: 0, LastPrice: 1.25})
		require.Equal(t, 1.25, got)
	})

	t.Run("nothing at all yields zero", func(t *testing.T) {
		got := PremiumPerShare(domain.OptionContract{})
		require.Equal(t, 0.0, got)
	})

	t.Run("garbage upstream never leaks NaN", func(t *testing.T) {
		got := PremiumPerShare(domain.OptionContract{LastPrice: math.NaN()})
		require.Equal(t, 0.0, got)
	})
}

func TestEconomics(t *testing.T) {
	t.Run("covered call capital uses current price", func(t *testing.T) {
		econ := Economics(
			domain.StrategyCoveredCall,
			domain.OptionContract{Strike: 100, Bid: 2.50},
			100,
		)

		require.Equal(t, 250.0, econ.PremiumTotal)
		require.Equal(t, 10_000.0, econ.CapitalRequired)
		require.InDelta(t, 2.500, econ.ReturnPercentage, 0.001)
	})

	t.Run("cash-secured put capital uses strike", func(t *testing.T) {
		econ := Economics(
			domain.StrategyCashSecuredPut,
			domain.OptionContract{Strike: 95, Bid: 3.00},
			100,
		)

		require.Equal(t, 300.0, econ.PremiumTotal)
		require.Equal(t, 9_500.0, econ.CapitalRequired)
		require.InDelta(t, 3.158, econ.ReturnPercentage, 0.001)
	})

	t.Run("zero capital guards the return", func(t *testing.T) {
		econ := Economics(
			domain.StrategyCashSecuredPut,
			domain.OptionContract{Strike: 0, Bid: 1.00},
			0,
		)
		require.Equal(t, 0.0, econ.ReturnPercentage)
	})
}
