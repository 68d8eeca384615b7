package yahoo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const quoteSummaryFixture = `{
	"quoteSummary": {
		"result": [{
			"financialData": {
				"targetMeanPrice": {"raw": 210.5, "fmt": "210.50"},
				"freeCashflow": {"raw": 90000000000, "fmt": "90B"},
				"earningsGrowth": {"raw": 0.12, "fmt": "12.00%"},
				"numberOfAnalystOpinions": {"raw": 38, "fmt": "38"}
			},
			"defaultKeyStatistics": {
				"forwardEps": {"raw": 7.25, "fmt": "7.25"},
				"trailingEps": {},
				"sharesOutstanding": {"raw": 15000000000, "fmt": "15B"}
			},
			"summaryDetail": {
				"forwardPE": {"raw": 27.1, "fmt": "27.10"},
				"dividendYield": {"raw": 0.0, "fmt": "0.00%"}
			}
		}],
		"error": null
	}
}`

func TestGetFundamentals(t *testing.T) {
	t.Run("flattens raw values and keeps absent fields nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Contains(t, r.URL.Path, "/v10/finance/quoteSummary/AAPL")
			w.Write([]byte(quoteSummaryFixture))
		}))
		defer server.Close()

		client := NewClient(server.Client())
		client.BaseUrl = server.URL

		got, err := client.GetFundamentals("AAPL")
		require.NoError(t, err)

		require.NotNil(t, got.TargetMeanPrice)
		require.Equal(t, 210.5, *got.TargetMeanPrice)
		require.NotNil(t, got.ForwardEps)
		require.Equal(t, 7.25, *got.ForwardEps)

		// empty wrapper object means missing, not zero
		require.Nil(t, got.TrailingEps)

		// a real 0.0 must survive as a present value
		require.NotNil(t, got.DividendYield)
		require.Equal(t, 0.0, *got.DividendYield)

		require.Equal(t, "", cmp.Diff(38.0, *got.NumAnalysts))
	})

	t.Run("429 surfaces as a rate limit error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
		}))
		defer server.Close()

		client := NewClient(server.Client())
		client.BaseUrl = server.URL

		_, err := client.GetFundamentals("AAPL")
		require.Error(t, err)
		require.Contains(t, err.Error(), "429")
	})

	t.Run("provider error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
		}))
		defer server.Close()

		client := NewClient(server.Client())
		client.BaseUrl = server.URL

		_, err := client.GetFundamentals("NOPE")
		require.Error(t, err)
		require.Contains(t, err.Error(), "No data found")
	})
}
