package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wheelscan/internal/logger"
)

// Client pulls the quoteSummary fundamentals that the quote endpoint does
// not carry: cash flow, growth rates and analyst targets. Unofficial API,
// so it gets a browser user agent and gentle retry handling.
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

const defaultBaseUrl = "https://query2.finance.yahoo.com"

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		HttpClient: httpClient,
		BaseUrl:    defaultBaseUrl,
	}
}

// value is Yahoo's {"raw": n, "fmt": "..."} number wrapper. Missing fields
// arrive as empty objects, so Raw stays nil rather than zero.
type value struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

type financialData struct {
	TargetMeanPrice         value `json:"targetMeanPrice"`
	TargetLowPrice          value `json:"targetLowPrice"`
	TargetHighPrice         value `json:"targetHighPrice"`
	NumberOfAnalystOpinions value `json:"numberOfAnalystOpinions"`
	FreeCashflow            value `json:"freeCashflow"`
	EarningsGrowth          value `json:"earningsGrowth"`
	RevenueGrowth           value `json:"revenueGrowth"`
	TotalRevenue            value `json:"totalRevenue"`
}

type keyStatistics struct {
	TrailingEps        value `json:"trailingEps"`
	ForwardEps         value `json:"forwardEps"`
	PegRatio           value `json:"pegRatio"`
	BookValue          value `json:"bookValue"`
	PriceToBook        value `json:"priceToBook"`
	SharesOutstanding  value `json:"sharesOutstanding"`
	EnterpriseToEbitda value `json:"enterpriseToEbitda"`
}

type summaryDetail struct {
	TrailingPE                   value `json:"trailingPE"`
	ForwardPE                    value `json:"forwardPE"`
	PriceToSalesTrailing12Months value `json:"priceToSalesTrailing12Months"`
	MarketCap                    value `json:"marketCap"`
	DividendYield                value `json:"dividendYield"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			FinancialData        financialData `json:"financialData"`
			DefaultKeyStatistics keyStatistics `json:"defaultKeyStatistics"`
			SummaryDetail        summaryDetail `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Fundamentals is the flattened quoteSummary payload. Every field is
// optional - Yahoo omits whatever it doesn't have for a symbol.
type Fundamentals struct {
	TrailingPE    *float64
	ForwardPE     *float64
	PriceToBook   *float64
	PegRatio      *float64
	PriceToSales  *float64
	MarketCap     *float64
	DividendYield *float64
	EvToEbitda    *float64

	TargetMeanPrice *float64
	TargetLowPrice  *float64
	TargetHighPrice *float64
	NumAnalysts     *float64

	TrailingEps       *float64
	ForwardEps        *float64
	BookValue         *float64
	FreeCashFlow      *float64
	SharesOutstanding *float64
	EarningsGrowth    *float64
	RevenueGrowth     *float64
	TotalRevenue      *float64
}

func (c *Client) GetFundamentals(symbol string) (*Fundamentals, error) {
	url := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=financialData,defaultKeyStatistics,summaryDetail",
		c.BaseUrl, symbol,
	)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; wheelscan/1.0)")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("yahoo quoteSummary rate limited for %s", symbol)
		return nil, fmt.Errorf("quoteSummary %s: 429 too many requests", symbol)
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("quoteSummary %s failed with status code %d: %s", symbol, response.StatusCode, string(responseBytes))
	}

	var responseJson quoteSummaryResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	if e := responseJson.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("quoteSummary %s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(responseJson.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary %s: empty result", symbol)
	}

	r := responseJson.QuoteSummary.Result[0]
	return &Fundamentals{
		TrailingPE:    r.SummaryDetail.TrailingPE.Raw,
		ForwardPE:     r.SummaryDetail.ForwardPE.Raw,
		PriceToBook:   r.DefaultKeyStatistics.PriceToBook.Raw,
		PegRatio:      r.DefaultKeyStatistics.PegRatio.Raw,
		PriceToSales:  r.SummaryDetail.PriceToSalesTrailing12Months.Raw,
		MarketCap:     r.SummaryDetail.MarketCap.Raw,
		DividendYield: r.SummaryDetail.DividendYield.Raw,
		EvToEbitda:    r.DefaultKeyStatistics.EnterpriseToEbitda.Raw,

		TargetMeanPrice: r.FinancialData.TargetMeanPrice.Raw,
		TargetLowPrice:  r.FinancialData.TargetLowPrice.Raw,
		TargetHighPrice: r.FinancialData.TargetHighPrice.Raw,
		NumAnalysts:     r.FinancialData.NumberOfAnalystOpinions.Raw,

		TrailingEps:       r.DefaultKeyStatistics.TrailingEps.Raw,
		ForwardEps:        r.DefaultKeyStatistics.ForwardEps.Raw,
		BookValue:         r.DefaultKeyStatistics.BookValue.Raw,
		FreeCashFlow:      r.FinancialData.FreeCashflow.Raw,
		SharesOutstanding: r.DefaultKeyStatistics.SharesOutstanding.Raw,
		EarningsGrowth:    r.FinancialData.EarningsGrowth.Raw,
		RevenueGrowth:     r.FinancialData.RevenueGrowth.Raw,
		TotalRevenue:      r.FinancialData.TotalRevenue.Raw,
	}, nil
}
