package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"wheelscan/internal/domain"

	"github.com/gocarina/gocsv"
)

// FileName builds the timestamped name each scan run writes to.
func FileName(now time.Time) string {
	return fmt.Sprintf("option_analysis_%s.csv", now.Format("20060102_150405"))
}

// WriteCSV dumps the full result set, valuation columns included, to path.
func WriteCSV(path string, results []domain.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&results, f); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// PrintReport renders the ranked table plus a failure summary for terminal
// use. Results are printed in the order they arrive, which the analysis
// app has already sorted by return.
func PrintReport(w io.Writer, report *domain.AnalysisReport) {
	fmt.Fprintf(w, "%-7s %-17s %10s %10s %12s %5s %9s %9s\n",
		"SYMBOL", "STRATEGY", "PRICE", "STRIKE", "EXPIRATION", "DTE", "PREMIUM", "RETURN")

	for _, r := range report.Results {
		fmt.Fprintf(w, "%-7s %-17s %10s %10s %12s %5d %9s %8.3f%%\n",
			r.Symbol,
			r.Strategy,
			fmt.Sprintf("$%.2f", r.CurrentPrice),
			fmt.Sprintf("$%.2f", r.StrikePrice),
			r.ExpirationDate,
			r.DaysToExpiration,
			fmt.Sprintf("$%.2f", r.PremiumTotal),
			r.ReturnPercentage,
		)
	}

	symbols := map[string]bool{}
	for _, r := range report.Results {
		symbols[r.Symbol] = true
	}
	fmt.Fprintf(w, "\nAnalysis complete: %d stocks, %d opportunities found\n",
		len(symbols), len(report.Results))

	if len(report.Errors) > 0 {
		failed := make([]string, 0, len(report.Errors))
		for symbol := range report.Errors {
			failed = append(failed, symbol)
		}
		sort.Strings(failed)

		fmt.Fprintf(w, "Failed to analyze %d symbols:\n", len(failed))
		for _, symbol := range failed {
			fmt.Fprintf(w, "  - %s: %s\n", symbol, report.Errors[symbol])
		}
	}
}
