package repository

import (
	"context"
	"fmt"
	"time"

	"wheelscan/internal/domain"
	"wheelscan/internal/logger"
	"wheelscan/internal/util"
	"wheelscan/pkg/yahoo"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/options"
)

type MarketDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	ListExpirations(ctx context.Context, symbol string) ([]string, error)
	GetOptionChain(ctx context.Context, symbol string, expiration string) (*domain.OptionChain, error)
}

const chainMaxRetries = 3

func NewMarketDataRepository(fundamentalsClient *yahoo.Client) MarketDataRepository {
	return &yahooMarketDataHandler{
		FundamentalsClient: fundamentalsClient,
		sleep:              time.Sleep,
	}
}

type yahooMarketDataHandler struct {
	FundamentalsClient *yahoo.Client
	// injectable so retry backoff is instant under test
	sleep func(time.Duration)
}

// GetQuote merges the quote-endpoint snapshot with quoteSummary
// fundamentals. The fundamentals half is best-effort: a symbol with no
// quoteSummary data still gets a usable Quote, just with more unknowns.
func (h *yahooMarketDataHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	log := logger.FromContext(ctx)

	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if eq == nil {
		return nil, domain.ErrNoPriceData
	}

	currentPrice := eq.RegularMarketPrice
	if currentPrice <= 0 {
		currentPrice = eq.RegularMarketPreviousClose
	}
	if currentPrice <= 0 {
		return nil, domain.ErrNoPriceData
	}

	q := &domain.Quote{
		Symbol:            symbol,
		CurrentPrice:      currentPrice,
		TrailingPE:        positiveOrNil(eq.TrailingPE),
		ForwardPE:         positiveOrNil(eq.ForwardPE),
		PriceToBook:       positiveOrNil(eq.PriceToBook),
		MarketCap:         positiveOrNil(float64(eq.MarketCap)),
		TrailingEps:       nonZeroOrNil(eq.EpsTrailingTwelveMonths),
		ForwardEps:        nonZeroOrNil(eq.EpsForward),
		BookValuePerShare: positiveOrNil(eq.BookValue),
		SharesOutstanding: positiveOrNil(float64(eq.SharesOutstanding)),
	}

	fundamentals, err := h.FundamentalsClient.GetFundamentals(symbol)
	if err != nil {
		log.Warnf("no quoteSummary fundamentals for %s: %v", symbol, err)
		return q, nil
	}

	// quoteSummary is the richer source - prefer it wherever present
	q.TrailingPE = coalesce(fundamentals.TrailingPE, q.TrailingPE)
	q.ForwardPE = coalesce(fundamentals.ForwardPE, q.ForwardPE)
	q.PriceToBook = coalesce(fundamentals.PriceToBook, q.PriceToBook)
	q.PegRatio = fundamentals.PegRatio
	q.PriceToSales = fundamentals.PriceToSales
	q.MarketCap = coalesce(fundamentals.MarketCap, q.MarketCap)
	q.DividendYield = fundamentals.DividendYield
	q.EvToEbitda = fundamentals.EvToEbitda
	q.AnalystTargetMean = fundamentals.TargetMeanPrice
	q.AnalystTargetLow = fundamentals.TargetLowPrice
	q.AnalystTargetHigh = fundamentals.TargetHighPrice
	if fundamentals.NumAnalysts != nil {
		q.NumAnalysts = util.IntPointer(int(*fundamentals.NumAnalysts))
	}
	q.TrailingEps = coalesce(fundamentals.TrailingEps, q.TrailingEps)
	q.ForwardEps = coalesce(fundamentals.ForwardEps, q.ForwardEps)
	q.BookValuePerShare = coalesce(fundamentals.BookValue, q.BookValuePerShare)
	q.FreeCashFlow = fundamentals.FreeCashFlow
	q.SharesOutstanding = coalesce(fundamentals.SharesOutstanding, q.SharesOutstanding)
	q.EarningsGrowth = fundamentals.EarningsGrowth
	q.RevenueGrowth = fundamentals.RevenueGrowth
	q.TotalRevenue = fundamentals.TotalRevenue

	return q, nil
}

// ListExpirations returns the chain's expiration dates in Yahoo's own
// ordering - downstream tie-breaks depend on that order surviving.
func (h *yahooMarketDataHandler) ListExpirations(ctx context.Context, symbol string) ([]string, error) {
	iter := options.GetStraddle(symbol)
	// the iterator is lazy; pull once so meta is populated
	iter.Next()
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get options for %s: %w", symbol, err)
	}

	meta := iter.Meta()
	if meta == nil || len(meta.AllExpirationDates) == 0 {
		return nil, domain.ErrNoOptionsAvailable
	}

	expirations := make([]string, 0, len(meta.AllExpirationDates))
	for _, ts := range meta.AllExpirationDates {
		expirations = append(expirations, time.Unix(int64(ts), 0).UTC().Format(time.DateOnly))
	}
	return expirations, nil
}

// GetOptionChain fetches both sides of the chain for one expiration.
// Yahoo rate-limits chain fetches aggressively, so 429s get up to three
// bounded retries with increasing backoff; anything else fails fast.
func (h *yahooMarketDataHandler) GetOptionChain(ctx context.Context, symbol string, expiration string) (*domain.OptionChain, error) {
	log := logger.FromContext(ctx)

	expDate, err := domain.ExpirationOf(expiration)
	if err != nil {
		return nil, fmt.Errorf("bad expiration %q: %w", expiration, err)
	}

	return retryRateLimited(h.sleep, func(wait time.Duration) {
		log.Warnf("rate limited fetching %s %s chain, retrying in %s", symbol, expiration, wait)
	}, func() (*domain.OptionChain, error) {
		return h.fetchChain(symbol, expiration, expDate)
	})
}

// retryRateLimited is a bounded retry state machine: at most three
// re-attempts, sleeping 2+attempt seconds between them, and only for
// rate-limit errors. Everything else propagates on the spot.
func retryRateLimited(
	sleep func(time.Duration),
	onRetry func(time.Duration),
	fetch func() (*domain.OptionChain, error),
) (*domain.OptionChain, error) {
	attempt := 0
	for {
		chain, err := fetch()
		if err == nil {
			return chain, nil
		}
		if !domain.IsRateLimited(err) || attempt >= chainMaxRetries {
			return nil, err
		}
		wait := time.Duration(2+attempt) * time.Second
		onRetry(wait)
		sleep(wait)
		attempt++
	}
}

func (h *yahooMarketDataHandler) fetchChain(symbol, expiration string, expDate time.Time) (*domain.OptionChain, error) {
	iter := options.GetStraddleP(&options.Params{
		UnderlyingSymbol: symbol,
		Expiration:       datetime.New(&expDate),
	})

	chain := &domain.OptionChain{
		Symbol:     symbol,
		Expiration: expiration,
	}
	for iter.Next() {
		straddle := iter.Straddle()
		if straddle == nil {
			continue
		}
		if straddle.Call != nil {
			chain.Calls = append(chain.Calls, contractFromYahoo(straddle.Call))
		}
		if straddle.Put != nil {
			chain.Puts = append(chain.Puts, contractFromYahoo(straddle.Put))
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get %s chain for %s: %w", expiration, symbol, err)
	}

	if len(chain.Calls) == 0 && len(chain.Puts) == 0 {
		return nil, fmt.Errorf("%w %s", domain.ErrNoChainData, expiration)
	}
	return chain, nil
}

func contractFromYahoo(c *finance.Contract) domain.OptionContract {
	return domain.OptionContract{
		Strike:            c.Strike,
		Bid:               c.Bid,
		Ask:               c.Ask,
		LastPrice:         c.LastPrice,
		Volume:            util.IntPointer(c.Volume),
		OpenInterest:      util.IntPointer(c.OpenInterest),
		ImpliedVolatility: util.FloatPointer(c.ImpliedVolatility),
	}
}

// Yahoo reports absent ratios as zero; for strictly-positive metrics the
// zero is indistinguishable from missing, so treat it as missing.
func positiveOrNil(f float64) *float64 {
	if f <= 0 {
		return nil
	}
	return &f
}

// EPS can legitimately be negative, so only exact zero reads as absent.
func nonZeroOrNil(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func coalesce(preferred, fallback *float64) *float64 {
	if preferred != nil {
		return preferred
	}
	return fallback
}
