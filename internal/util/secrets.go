package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	Alpaca AlpacaSecrets `json:"alpaca"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

// LoadSecrets reads provider credentials. The file is optional on purpose:
// the engine runs fine without Alpaca keys, it just loses news enrichment.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("WHEELSCAN_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("WHEELSCAN_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{
		Alpaca: AlpacaSecrets{
			ApiKey:    os.Getenv("ALPACA_API_KEY"),
			ApiSecret: os.Getenv("ALPACA_API_SECRET"),
		},
	}

	f, err := os.ReadFile(secretsFile)
	if os.IsNotExist(err) {
		return &secrets, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
