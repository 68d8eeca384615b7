package calculator

import (
	"wheelscan/internal/domain"
	"wheelscan/internal/util"
)

const SharesPerContract = 100

// premiumRule is one step of the executable-premium precedence chain.
// Rules run top to bottom and the first whose precondition holds wins,
// which keeps the ordering auditable and testable on its own.
type premiumRule struct {
	applies func(c domain.OptionContract) bool
	value   func(c domain.OptionContract) float64
}

// The bid is money on the table right now, so it beats the theoretical
// midpoint, which in turn beats a possibly stale last trade.
var premiumRules = []premiumRule{
	{
		applies: func(c domain.OptionContract) bool { return c.Bid > 0 },
		value:   func(c domain.OptionContract) float64 { return c.Bid },
	},
	{
		applies: func(c domain.OptionContract) bool { return c.Ask > 0 && c.Bid >= 0 },
		value:   func(c domain.OptionContract) float64 { return (c.Bid + c.Ask) / 2 },
	},
	{
		applies: func(c domain.OptionContract) bool { return true },
		value:   func(c domain.OptionContract) float64 { return c.LastPrice },
	},
}

// PremiumPerShare resolves the executable premium for one contract.
func PremiumPerShare(c domain.OptionContract) float64 {
	for _, rule := range premiumRules {
		if rule.applies(c) {
			return util.CleanScalar(rule.value(c))
		}
	}
	return 0
}

type ContractEconomics struct {
	PremiumPerShare  float64
	PremiumTotal     float64
	CapitalRequired  float64
	ReturnPercentage float64
}

// Economics prices one short contract. Covered calls tie up 100 shares at
// the current price; cash-secured puts reserve cash at the strike.
func Economics(strategy domain.Strategy, contract domain.OptionContract, currentPrice float64) ContractEconomics {
	perShare := PremiumPerShare(contract)
	total := perShare * SharesPerContract

	capital := currentPrice * SharesPerContract
	if strategy == domain.StrategyCashSecuredPut {
		capital = contract.Strike * SharesPerContract
	}

	returnPct := 0.0
	if capital > 0 {
		returnPct = total / capital * 100
	}

	return ContractEconomics{
		PremiumPerShare:  util.CleanScalar(perShare),
		PremiumTotal:     util.CleanScalar(total),
		CapitalRequired:  util.CleanScalar(capital),
		ReturnPercentage: util.CleanScalar(returnPct),
	}
}
