package domain

import (
	"errors"
	"strings"
)

// Per-symbol failure modes. These terminate one symbol's pipeline and end
// up as a human-readable entry in AnalysisReport.Errors - they are never
// returned from the batch call itself.
var (
	ErrNoPriceData          = errors.New("no price data available")
	ErrNoOptionsAvailable   = errors.New("no options available")
	ErrNoChainData          = errors.New("no option data for expiration")
	ErrNoSuitableExpiration = errors.New("no suitable expiration")
	ErrNoStrikeNearPrice    = errors.New("no call or put strikes available near price")
)

// IsRateLimited reports whether an upstream error looks like a 429. Yahoo
// surfaces these as plain text, so string matching is the best we get.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}
