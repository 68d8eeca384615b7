package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wheelscan/internal/domain"
	"wheelscan/internal/util"

	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := util.NewDate(2024, 2, 1)
	require.Equal(t, "option_analysis_20240201_000000.csv", FileName(now))
}

func TestWriteCSV(t *testing.T) {
	results := []domain.AnalysisResult{
		{
			Symbol:           "NVDA",
			Strategy:         domain.StrategyCoveredCall,
			CurrentPrice:     100,
			StrikePrice:      100,
			ExpirationDate:   "2024-02-01",
			DaysToExpiration: 31,
			PremiumPerShare:  2.50,
			PremiumTotal:     250,
			CapitalRequired:  10000,
			ReturnPercentage: 2.5,
			ValuationSnapshot: domain.ValuationSnapshot{
				FairValue: util.FloatPointer(123.45),
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, results))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "symbol")
	require.Contains(t, lines[0], "return_percentage")
	require.Contains(t, lines[0], "fair_value")
	require.Contains(t, lines[1], "NVDA")
	require.Contains(t, lines[1], "Covered Call")
	require.Contains(t, lines[1], "123.45")
}

func TestPrintReport(t *testing.T) {
	report := &domain.AnalysisReport{
		Results: []domain.AnalysisResult{
			{
				Symbol:           "NVDA",
				Strategy:         domain.StrategyCashSecuredPut,
				CurrentPrice:     100,
				StrikePrice:      100,
				ExpirationDate:   "2024-02-01",
				DaysToExpiration: 31,
				PremiumTotal:     300,
				ReturnPercentage: 3,
			},
		},
		Errors: map[string]string{
			"BAD": "No price data available",
		},
	}

	var buf bytes.Buffer
	PrintReport(&buf, report)

	out := buf.String()
	require.Contains(t, out, "NVDA")
	require.Contains(t, out, "Cash-Secured Put")
	require.Contains(t, out, "3.000%")
	require.Contains(t, out, "1 stocks, 1 opportunities found")
	require.Contains(t, out, "BAD: No price data available")
}
