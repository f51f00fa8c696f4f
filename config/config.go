package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, Postgres, upstream data sources, the breadth
// computation, and the refresh schedule.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=marketpulse
//	SYMBOLS_URL=https://en.wikipedia.org/wiki/List_of_S%26P_500_companies
//	TREASURY_CSV_URL=https://home.treasury.gov/.../daily-treasury-rates.csv
//	REFRESH_CRON=0 22 * * 1-5
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Sources  SourcesConfig  // Upstream data source endpoints
	Breadth  BreadthConfig  // Breadth computation parameters
	Refresh  RefreshConfig  // Cache TTLs and scheduled refresh
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// SourcesConfig holds the endpoints the refresh pipeline pulls data from.
// Empty values fall back to the well-known public URLs; tests point them at
// local httptest servers.
type SourcesConfig struct {
	SymbolsURL     string // Constituent roster page
	YahooBaseURL   string // Price history API base
	TreasuryCSVURL string // Daily treasury par yield CSV
}

// BreadthConfig holds parameters of the breadth computation.
type BreadthConfig struct {
	ShortWindow int // Trailing window of the short moving average (default 20)
	LongWindow  int // Trailing window of the long moving average (default 60)
	HistoryDays int // How far back to request price history (default 2008)
	Parallel    int // Concurrent price downloads (0 = NumCPU)
}

// RefreshConfig holds cache TTLs and the cron expression of the scheduled
// refresh.
type RefreshConfig struct {
	SymbolsTTL time.Duration // Roster cache lifetime (default 168h)
	PricesTTL  time.Duration // Breadth history cache lifetime (default 6h)
	CurveTTL   time.Duration // Yield curve cache lifetime (default 1h)
	CronSpec   string        // Cron expression for the schedule run mode
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "marketpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("SYMBOLS_URL", "")
	viper.SetDefault("YAHOO_BASE_URL", "")
	viper.SetDefault("TREASURY_CSV_URL", "")

	viper.SetDefault("BREADTH_SHORT_WINDOW", 20)
	viper.SetDefault("BREADTH_LONG_WINDOW", 60)
	viper.SetDefault("PRICE_HISTORY_DAYS", 2008)
	viper.SetDefault("DOWNLOAD_PARALLEL", 0)

	viper.SetDefault("SYMBOLS_TTL_HOURS", 168)
	viper.SetDefault("PRICES_TTL_HOURS", 6)
	viper.SetDefault("CURVE_TTL_HOURS", 1)
	// Weekday evenings, after the treasury publishes the daily rates.
	viper.SetDefault("REFRESH_CRON", "0 22 * * 1-5")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Sources: SourcesConfig{
			SymbolsURL:     viper.GetString("SYMBOLS_URL"),
			YahooBaseURL:   viper.GetString("YAHOO_BASE_URL"),
			TreasuryCSVURL: viper.GetString("TREASURY_CSV_URL"),
		},
		Breadth: BreadthConfig{
			ShortWindow: viper.GetInt("BREADTH_SHORT_WINDOW"),
			LongWindow:  viper.GetInt("BREADTH_LONG_WINDOW"),
			HistoryDays: viper.GetInt("PRICE_HISTORY_DAYS"),
			Parallel:    viper.GetInt("DOWNLOAD_PARALLEL"),
		},
		Refresh: RefreshConfig{
			SymbolsTTL: time.Duration(viper.GetInt("SYMBOLS_TTL_HOURS")) * time.Hour,
			PricesTTL:  time.Duration(viper.GetInt("PRICES_TTL_HOURS")) * time.Hour,
			CurveTTL:   time.Duration(viper.GetInt("CURVE_TTL_HOURS")) * time.Hour,
			CronSpec:   viper.GetString("REFRESH_CRON"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

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
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Breadth.ShortWindow <= 0 || AppConfig.Breadth.LongWindow <= AppConfig.Breadth.ShortWindow {
		missing = append(missing, "BREADTH_SHORT_WINDOW/BREADTH_LONG_WINDOW")
	}
	if AppConfig.Refresh.CronSpec == "" {
		missing = append(missing, "REFRESH_CRON")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
