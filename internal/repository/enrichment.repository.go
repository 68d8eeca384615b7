package repository

import (
	"context"
	"math"
	"sync"
	"time"

	"wheelscan/internal/domain"
	"wheelscan/internal/logger"
	"wheelscan/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/montanaflynn/stats"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// EnrichmentRepository is the optional secondary data source: recent news
// headlines and an implied-vs-historical volatility ratio. Everything here
// is best-effort - a dead connection or a lookup failure degrades to an
// empty Enrichment, never to a symbol error.
type EnrichmentRepository interface {
	Connect() error
	IsHealthy() bool
	Reset()
	GetEnrichment(ctx context.Context, symbol string, impliedVol *float64) domain.Enrichment
}

// the whole enrichment lookup gets this budget; a hung upstream must not
// stall the batch
const enrichmentTimeout = 2 * time.Second

const (
	histVolLookbackDays = 90
	tradingDaysPerYear  = 252
	maxHeadlines        = 3
)

func NewEnrichmentRepository(apiKey, apiSecret, endpoint string) EnrichmentRepository {
	return &alpacaEnrichmentHandler{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		endpoint:  endpoint,
	}
}

type alpacaEnrichmentHandler struct {
	apiKey    string
	apiSecret string
	endpoint  string

	// lazily established and idempotently re-established; the mutex keeps
	// a concurrent caller from racing the reconnect
	mu     sync.Mutex
	client *marketdata.Client
}

// Connect lazily builds the news client. Missing credentials are not an
// error here - the handle just stays unhealthy and lookups degrade.
func (h *alpacaEnrichmentHandler) Connect() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client != nil {
		return nil
	}
	if h.apiKey == "" || h.apiSecret == "" {
		return nil
	}

	h.client = marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    h.apiKey,
		APISecret: h.apiSecret,
		BaseURL:   h.endpoint,
	})
	return nil
}

func (h *alpacaEnrichmentHandler) IsHealthy() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.client != nil
}

func (h *alpacaEnrichmentHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.client = nil
}

// GetEnrichment runs the headline and volatility lookups under a hard
// deadline. Whatever finished in time is returned; the rest stays unknown.
func (h *alpacaEnrichmentHandler) GetEnrichment(ctx context.Context, symbol string, impliedVol *float64) domain.Enrichment {
	log := logger.FromContext(ctx)

	done := make(chan domain.Enrichment, 1)
	go func() {
		done <- domain.Enrichment{
			IVPercentile: h.ivPercentile(symbol, impliedVol),
			Headlines:    h.headlines(symbol),
		}
	}()

	select {
	case enrichment := <-done:
		return enrichment
	case <-time.After(enrichmentTimeout):
		log.Warnf("enrichment for %s timed out after %s", symbol, enrichmentTimeout)
		return domain.Enrichment{}
	case <-ctx.Done():
		return domain.Enrichment{}
	}
}

func (h *alpacaEnrichmentHandler) headlines(symbol string) []string {
	if err := h.Connect(); err != nil {
		return nil
	}
	h.mu.Lock()
	client := h.client
	h.mu.Unlock()
	if client == nil {
		return nil
	}

	news, err := client.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{symbol},
		TotalLimit: maxHeadlines,
	})
	if err != nil {
		// a failed lookup may mean a stale session - drop the handle so
		// the next call reconnects
		logger.Debug("news lookup failed for %s: %v", symbol, err)
		h.Reset()
		return nil
	}

	headlines := make([]string, 0, len(news))
	for _, item := range news {
		if item.Headline != "" {
			headlines = append(headlines, item.Headline)
		}
	}
	return headlines
}

// ivPercentile is implied vol over realized vol, as a percentage. Realized
// vol comes from ~90 calendar days of daily closes, annualized.
func (h *alpacaEnrichmentHandler) ivPercentile(symbol string, impliedVol *float64) *float64 {
	if impliedVol == nil || *impliedVol <= 0 {
		return nil
	}

	histVol := historicalVolatility(symbol)
	if histVol == nil || *histVol <= 0 {
		return nil
	}

	pct := *impliedVol / *histVol * 100
	return util.CleanFloat(&pct)
}

func historicalVolatility(symbol string) *float64 {
	end := time.Now()
	start := end.AddDate(0, 0, -histVolLookbackDays)
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	closes := []float64{}
	for iter.Next() {
		closes = append(closes, iter.Bar().AdjClose.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		logger.Debug("chart lookup failed for %s: %v", symbol, err)
		return nil
	}
	if len(closes) < 2 {
		return nil
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}
	if len(returns) < 2 {
		return nil
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil
	}

	annualized := stdev * math.Sqrt(tradingDaysPerYear)
	return util.CleanFloat(&annualized)
}
