package cmd

import (
	"fmt"

	"wheelscan/api"
	"wheelscan/internal/app"
	"wheelscan/internal/repository"
	"wheelscan/internal/util"
	"wheelscan/pkg/yahoo"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	yahooClient := yahoo.NewClient(nil)
	marketDataRepository := repository.NewMarketDataRepository(yahooClient)
	enrichmentRepository := repository.NewEnrichmentRepository(
		secrets.Alpaca.ApiKey,
		secrets.Alpaca.ApiSecret,
		secrets.Alpaca.Endpoint,
	)

	analysisApp := app.NewAnalysisApp(marketDataRepository, enrichmentRepository)

	return &api.ApiHandler{
		AnalysisApp: analysisApp,
	}, nil
}
