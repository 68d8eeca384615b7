package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"wheelscan/cmd"
	"wheelscan/internal/app"
	"wheelscan/internal/export"
	"wheelscan/internal/logger"

	"github.com/spf13/cobra"
)

// defaultUniverse is the watchlist scanned when no symbols are given.
var defaultUniverse = []string{
	"NVDA", "MSFT", "GOOG", "MU", "LLY", "RDDT", "SMCI", "MSTR",
	"TSLA", "AVGO", "NVO", "XOM", "MARA", "COIN", "AMZN", "AMD",
	"NNE", "AAPL", "ASTS", "ORCL",
}

var rootCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rank covered-call and cash-secured-put premiums near a target expiration",
	RunE: func(c *cobra.Command, args []string) error {
		symbols, _ := c.Flags().GetStringSlice("symbols")
		targetDays, _ := c.Flags().GetInt("target-days")
		csvPath, _ := c.Flags().GetString("csv")
		noCsv, _ := c.Flags().GetBool("no-csv")

		if len(symbols) == 0 {
			symbols = defaultUniverse
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

		fmt.Printf("Analyzing %d symbols (~%d days to expiration)\n\n", len(symbols), targetDays)
		report, err := apiHandler.AnalysisApp.AnalyzeSymbols(ctx, symbols, targetDays)
		if err != nil {
			return err
		}

		export.PrintReport(os.Stdout, report)

		if noCsv {
			return nil
		}
		if csvPath == "" {
			csvPath = export.FileName(time.Now())
		}
		if err := export.WriteCSV(csvPath, report.Results); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s\n", csvPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringSlice("symbols", nil, "symbols to scan (default: built-in watchlist)")
	rootCmd.Flags().Int("target-days", app.DefaultTargetDays, "target days to expiration")
	rootCmd.Flags().String("csv", "", "csv output path (default: timestamped file in cwd)")
	rootCmd.Flags().Bool("no-csv", false, "print the table only, skip the csv export")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
