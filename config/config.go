package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server and the upstream data providers.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	BCB_BASE_URL=https://api.bcb.gov.br/dados/serie/bcdata.sgs
//	SIDRA_BASE_URL=https://apisidra.ibge.gov.br/values
//	FOCUS_BASE_URL=https://olinda.bcb.gov.br/olinda/servico/Expectativas/versao/v1/odata
//	BCB_TIMEOUT_SECONDS=30
//	SIDRA_TIMEOUT_SECONDS=20
//	FOCUS_TIMEOUT_SECONDS=15
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // External data provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines base URLs and per-client timeouts for the public
// APIs the dashboard aggregates. Each upstream carries its own bounded
// timeout so one slow provider does not block the others being fetched in
// the same dashboard view.
type UpstreamConfig struct {
	BCBBaseURL   string
	SidraBaseURL string
	FocusBaseURL string

	BCBTimeout   time.Duration
	SidraTimeout time.Duration
	FocusTimeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All services should import this package and read from
// AppConfig instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("BCB_BASE_URL", "https://api.bcb.gov.br/dados/serie/bcdata.sgs")
	viper.SetDefault("SIDRA_BASE_URL", "https://apisidra.ibge.gov.br/values")
	viper.SetDefault("FOCUS_BASE_URL", "https://olinda.bcb.gov.br/olinda/servico/Expectativas/versao/v1/odata")

	viper.SetDefault("BCB_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SIDRA_TIMEOUT_SECONDS", 20)
	viper.SetDefault("FOCUS_TIMEOUT_SECONDS", 15)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BCBBaseURL:   viper.GetString("BCB_BASE_URL"),
			SidraBaseURL: viper.GetString("SIDRA_BASE_URL"),
			FocusBaseURL: viper.GetString("FOCUS_BASE_URL"),
			BCBTimeout:   time.Duration(viper.GetInt("BCB_TIMEOUT_SECONDS")) * time.Second,
			SidraTimeout: time.Duration(viper.GetInt("SIDRA_TIMEOUT_SECONDS")) * time.Second,
			FocusTimeout: time.Duration(viper.GetInt("FOCUS_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BCBBaseURL == "" {
		missing = append(missing, "BCB_BASE_URL")
	}
	if AppConfig.Upstream.SidraBaseURL == "" {
		missing = append(missing, "SIDRA_BASE_URL")
	}
	if AppConfig.Upstream.FocusBaseURL == "" {
		missing = append(missing, "FOCUS_BASE_URL")
	}
	if AppConfig.Upstream.BCBTimeout <= 0 {
		missing = append(missing, "BCB_TIMEOUT_SECONDS")
	}
	if AppConfig.Upstream.SidraTimeout <= 0 {
		missing = append(missing, "SIDRA_TIMEOUT_SECONDS")
	}
	if AppConfig.Upstream.FocusTimeout <= 0 {
		missing = append(missing, "FOCUS_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
