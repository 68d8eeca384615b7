package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wheelscan/internal/calculator"
	"wheelscan/internal/domain"
	"wheelscan/internal/logger"
	"wheelscan/internal/repository"
	"wheelscan/internal/util"
)

// AnalysisApp orchestrates the per-symbol pipeline: fetch market data,
// select an expiration and ATM strikes, price the premium, run the
// valuation models and emit ranked results. One symbol's failure never
// aborts the batch - it becomes an entry in the errors map.
type AnalysisApp interface {
	AnalyzeSymbols(ctx context.Context, symbols []string, targetDays int) (*domain.AnalysisReport, error)
}

const DefaultTargetDays = 30

func NewAnalysisApp(
	marketDataRepository repository.MarketDataRepository,
	enrichmentRepository repository.EnrichmentRepository,
) AnalysisApp {
	return &analysisAppHandler{
		MarketDataRepository: marketDataRepository,
		EnrichmentRepository: enrichmentRepository,
		now:                  time.Now,
		sleep:                time.Sleep,
	}
}

type analysisAppHandler struct {
	MarketDataRepository repository.MarketDataRepository
	EnrichmentRepository repository.EnrichmentRepository

	// injectable for deterministic tests
	now   func() time.Time
	sleep func(time.Duration)
}

func (h *analysisAppHandler) AnalyzeSymbols(ctx context.Context, symbols []string, targetDays int) (*domain.AnalysisReport, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols provided")
	}
	if targetDays <= 0 {
		targetDays = DefaultTargetDays
	}

	if err := h.EnrichmentRepository.Connect(); err != nil {
		// enrichment is optional; log and carry on without it
		log.Warnf("enrichment source unavailable: %v", err)
	}

	report := &domain.AnalysisReport{
		Results: []domain.AnalysisResult{},
		Errors:  map[string]string{},
	}

	for idx, symbol := range symbols {
		results, warning, err := h.analyzeSymbol(ctx, symbol, targetDays)
		if err != nil {
			log.Warnf("skipping %s: %v", symbol, err)
			report.Errors[symbol] = errorMessage(err)
		} else {
			report.Results = append(report.Results, results...)
			if warning != "" {
				// advisory only - the symbol still produced one side
				report.Errors[symbol] = warning
			}
		}

		// stay under the provider's rate limits; scale gently with batch
		// size and skip the pause after the final symbol
		if idx < len(symbols)-1 {
			h.sleep(throttleInterval(len(symbols)))
		}
	}

	sort.SliceStable(report.Results, func(i, j int) bool {
		return report.Results[i].ReturnPercentage > report.Results[j].ReturnPercentage
	})

	return report, nil
}

// analyzeSymbol walks one symbol through the pipeline. It returns up to
// two results (one per strategy) plus an optional advisory warning when
// only one side of the chain was tradable.
func (h *analysisAppHandler) analyzeSymbol(ctx context.Context, symbol string, targetDays int) ([]domain.AnalysisResult, string, error) {
	today := h.now().UTC()

	// Fetching
	quote, err := h.MarketDataRepository.GetQuote(ctx, symbol)
	if err != nil {
		return nil, "", err
	}

	expirations, err := h.MarketDataRepository.ListExpirations(ctx, symbol)
	if err != nil {
		return nil, "", err
	}

	// Selecting
	expiration, err := calculator.SelectExpiration(expirations, today, targetDays)
	if err != nil {
		return nil, "", fmt.Errorf("%w (~%d days)", err, targetDays)
	}
	dte, err := calculator.DaysToExpiration(expiration, today)
	if err != nil {
		return nil, "", err
	}

	chain, err := h.MarketDataRepository.GetOptionChain(ctx, symbol, expiration)
	if err != nil {
		return nil, "", err
	}

	atmCall := calculator.SelectATMContract(chain.Calls, quote.CurrentPrice)
	atmPut := calculator.SelectATMContract(chain.Puts, quote.CurrentPrice)
	if atmCall == nil && atmPut == nil {
		return nil, "", fmt.Errorf("%w $%.2f", domain.ErrNoStrikeNearPrice, quote.CurrentPrice)
	}

	warning := ""
	if atmCall == nil {
		warning = fmt.Sprintf("No call option near $%.2f; using put strike $%.2f", quote.CurrentPrice, atmPut.Strike)
	} else if atmPut == nil {
		warning = fmt.Sprintf("No put option near $%.2f; using call strike $%.2f", quote.CurrentPrice, atmCall.Strike)
	}

	// Valuing
	valuation := calculator.Valuation(*quote)
	snapshot := buildSnapshot(*quote, valuation)

	enrichment := h.EnrichmentRepository.GetEnrichment(ctx, symbol, atmImpliedVol(atmCall, atmPut))
	ivReason := calculator.AppendIVPercentile(
		calculator.ClassifyCatalyst(enrichment.Headlines),
		enrichment.IVPercentile,
	)

	// Emitting
	results := []domain.AnalysisResult{}
	if atmCall != nil {
		results = append(results, buildResult(
			domain.StrategyCoveredCall, *quote, *atmCall, expiration, dte, ivReason, snapshot,
		))
	}
	if atmPut != nil {
		results = append(results, buildResult(
			domain.StrategyCashSecuredPut, *quote, *atmPut, expiration, dte, ivReason, snapshot,
		))
	}

	return results, warning, nil
}

func buildResult(
	strategy domain.Strategy,
	quote domain.Quote,
	contract domain.OptionContract,
	expiration string,
	dte int,
	ivReason string,
	snapshot domain.ValuationSnapshot,
) domain.AnalysisResult {
	econ := calculator.Economics(strategy, contract, quote.CurrentPrice)

	return domain.AnalysisResult{
		Symbol:           quote.Symbol,
		Strategy:         strategy,
		CurrentPrice:     util.CleanScalar(quote.CurrentPrice),
		StrikePrice:      util.CleanScalar(contract.Strike),
		ExpirationDate:   expiration,
		DaysToExpiration: dte,

		PremiumPerShare:  econ.PremiumPerShare,
		PremiumTotal:     econ.PremiumTotal,
		CapitalRequired:  econ.CapitalRequired,
		ReturnPercentage: econ.ReturnPercentage,

		Volume:            contract.Volume,
		OpenInterest:      contract.OpenInterest,
		ImpliedVolatility: util.CleanFloat(contract.ImpliedVolatility),
		IVReason:          ivReason,

		ValuationSnapshot: snapshot,
	}
}

func buildSnapshot(quote domain.Quote, valuation calculator.IntrinsicValue) domain.ValuationSnapshot {
	peRatio := quote.TrailingPE
	if peRatio == nil {
		peRatio = quote.ForwardPE
	}

	return domain.ValuationSnapshot{
		PeRatio:       util.CleanFloat(peRatio),
		PbRatio:       util.CleanFloat(quote.PriceToBook),
		PegRatio:      util.CleanFloat(quote.PegRatio),
		PsRatio:       util.CleanFloat(quote.PriceToSales),
		MarketCap:     util.CleanFloat(quote.MarketCap),
		DividendYield: util.CleanFloat(quote.DividendYield),
		EvEbitda:      util.CleanFloat(quote.EvToEbitda),

		DcfValue:     util.CleanFloat(valuation.Dcf),
		FairValue:    util.CleanFloat(valuation.Fair),
		GrahamNumber: util.CleanFloat(valuation.Graham),

		AnalystTarget: util.CleanFloat(quote.AnalystTargetMean),
		AnalystLow:    util.CleanFloat(quote.AnalystTargetLow),
		AnalystHigh:   util.CleanFloat(quote.AnalystTargetHigh),
		NumAnalysts:   quote.NumAnalysts,

		RelativeValuePct: util.CleanFloat(valuation.RelativeValuePct),
	}
}

// the call side's IV is preferred; either works for the HV ratio
func atmImpliedVol(atmCall, atmPut *domain.OptionContract) *float64 {
	if atmCall != nil && atmCall.ImpliedVolatility != nil && *atmCall.ImpliedVolatility > 0 {
		return atmCall.ImpliedVolatility
	}
	if atmPut != nil && atmPut.ImpliedVolatility != nil && *atmPut.ImpliedVolatility > 0 {
		return atmPut.ImpliedVolatility
	}
	return nil
}

func throttleInterval(symbolCount int) time.Duration {
	scaled := symbolCount
	if scaled > 10 {
		scaled = 10
	}
	return time.Duration(float64(time.Second) * (0.5 + float64(scaled)*0.1))
}

// errorMessage keeps the taxonomy's human-readable phrasing for known
// failure modes and wraps everything else generically.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoPriceData):
		return "No price data available"
	case errors.Is(err, domain.ErrNoOptionsAvailable):
		return "No options available"
	case errors.Is(err, domain.ErrNoChainData),
		errors.Is(err, domain.ErrNoSuitableExpiration),
		errors.Is(err, domain.ErrNoStrikeNearPrice):
		return sentenceCase(err.Error())
	default:
		return fmt.Sprintf("Analysis error: %s", err.Error())
	}
}

// the taxonomy's sentinels are lowercase Go style; the report speaks in
// sentence case
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
