package calculator

import (
	"math"
	"time"

	"wheelscan/internal/domain"
)

// SelectExpiration picks the expiration closest to today+targetDays,
// comparing whole calendar days - the time of day on the clock must never
// influence the choice. The provider's ordering is the tie-break: we
// iterate in the given order and only replace on a strictly smaller
// difference, so the first of two equidistant dates wins.
func SelectExpiration(expirations []string, today time.Time, targetDays int) (string, error) {
	if len(expirations) == 0 {
		return "", domain.ErrNoOptionsAvailable
	}

	targetDate := utcMidnight(today).AddDate(0, 0, targetDays)

	best := ""
	minDiff := math.MaxFloat64
	for _, expStr := range expirations {
		expDate, err := domain.ExpirationOf(expStr)
		if err != nil {
			continue
		}
		diff := math.Abs(expDate.Sub(targetDate).Hours() / 24)
		if diff < minDiff {
			minDiff = diff
			best = expStr
		}
	}

	if best == "" {
		return "", domain.ErrNoSuitableExpiration
	}
	return best, nil
}

// DaysToExpiration is plain calendar arithmetic against the selected date.
// It can go negative if the chain is stale; we report what the math says.
func DaysToExpiration(expiration string, today time.Time) (int, error) {
	expDate, err := domain.ExpirationOf(expiration)
	if err != nil {
		return 0, err
	}
	return int(expDate.Sub(utcMidnight(today)).Hours() / 24), nil
}

func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SelectATMContract finds the row whose strike is nearest the current
// price. Calls and puts are resolved independently by the caller, so the
// two sides of a symbol may land on different strikes.
func SelectATMContract(contracts []domain.OptionContract, currentPrice float64) *domain.OptionContract {
	var best *domain.OptionContract
	minDiff := math.MaxFloat64
	for i := range contracts {
		diff := math.Abs(contracts[i].Strike - currentPrice)
		if diff < minDiff {
			minDiff = diff
			best = &contracts[i]
		}
	}
	return best
}
