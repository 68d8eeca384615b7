package calculator

import (
	"testing"
	"time"

	"wheelscan/internal/domain"
	"wheelscan/internal/util"

	"github.com/stretchr/testify/require"
)

func TestSelectExpiration(t *testing.T) {
	t.Run("picks closest to target date", func(t *testing.T) {
		today := util.NewDate(2024, 1, 1)
		candidates := []string{"2024-01-15", "2024-02-01", "2024-02-20"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)

		// target 2024-01-31: diffs are 16, 1 and 20 days
		require.Equal(t, "2024-02-01", got)
	})

	t.Run("equidistant candidates resolve to the first encountered", func(t *testing.T) {
		today := util.NewDate(2024, 1, 1)
		// both 5 days from the 2024-01-31 target
		candidates := []string{"2024-01-26", "2024-02-05"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)
		require.Equal(t, "2024-01-26", got)
	})

	t.Run("preserves provider order, not sorted order", func(t *testing.T) {
		today := util.NewDate(2024, 1, 1)
		candidates := []string{"2024-02-05", "2024-01-26"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)
		require.Equal(t, "2024-02-05", got)
	})

	t.Run("time of day never influences the pick", func(t *testing.T) {
		// 15 vs 16 calendar days out; an afternoon clock must not tip
		// the comparison toward the later date
		today := util.NewDate(2024, 1, 1).Add(14 * time.Hour)
		candidates := []string{"2024-01-16", "2024-02-16"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)
		require.Equal(t, "2024-01-16", got)
	})

	t.Run("ties stay ties under a partial-day clock", func(t *testing.T) {
		today := util.NewDate(2024, 1, 1).Add(14 * time.Hour)
		candidates := []string{"2024-01-26", "2024-02-05"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)
		require.Equal(t, "2024-01-26", got)
	})

	t.Run("unparseable dates are skipped", func(t *testing.T) {
		today := util.NewDate(2024, 1, 1)
		candidates := []string{"garbage", "2024-02-01"}

		got, err := SelectExpiration(candidates, today, 30)
		require.NoError(t, err)
		require.Equal(t, "2024-02-01", got)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := SelectExpiration(nil, util.NewDate(2024, 1, 1), 30)
		require.ErrorIs(t, err, domain.ErrNoOptionsAvailable)
	})

	t.Run("nothing parseable", func(t *testing.T) {
		_, err := SelectExpiration([]string{"x", "y"}, util.NewDate(2024, 1, 1), 30)
		require.ErrorIs(t, err, domain.ErrNoSuitableExpiration)
	})
}

func TestDaysToExpiration(t *testing.T) {
	t.Run("calendar days", func(t *testing.T) {
		got, err := DaysToExpiration("2024-02-01", util.NewDate(2024, 1, 1))
		require.NoError(t, err)
		require.Equal(t, 31, got)
	})

	t.Run("stale expiration goes negative", func(t *testing.T) {
		got, err := DaysToExpiration("2024-01-01", util.NewDate(2024, 1, 5))
		require.NoError(t, err)
		require.Equal(t, -4, got)
	})
}

func TestSelectATMContract(t *testing.T) {
	contracts := []domain.OptionContract{
		{Strike: 90},
		{Strike: 100},
		{Strike: 110},
	}

	t.Run("closest strike wins", func(t *testing.T) {
		got := SelectATMContract(contracts, 98.50)
		require.NotNil(t, got)
		require.Equal(t, 100.0, got.Strike)
	})

	t.Run("equidistant strikes resolve to the first encountered", func(t *testing.T) {
		got := SelectATMContract(contracts, 95)
		require.NotNil(t, got)
		require.Equal(t, 90.0, got.Strike)
	})

	t.Run("empty side", func(t *testing.T) {
		require.Nil(t, SelectATMContract(nil, 100))
	})
}
