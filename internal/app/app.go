package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/config"
	"github.com/guttosm/marketpulse/internal/api"
	"github.com/guttosm/marketpulse/internal/breadth"
	"github.com/guttosm/marketpulse/internal/marketdata"
	"github.com/guttosm/marketpulse/internal/service"
	"github.com/guttosm/marketpulse/internal/storage"
	"github.com/guttosm/marketpulse/internal/symbols"
	"github.com/guttosm/marketpulse/internal/treasury"
)

// App bundles the wired components the different run modes need.
//
// Fields:
//   - Router: the configured Gin engine, used by the api mode.
//   - Breadth: the breadth service, refreshed by the update and schedule modes.
//   - Updater: the treasury refresher, driven by the update and schedule modes.
type App struct {
	Router  *gin.Engine
	Breadth service.BreadthService
	Updater *treasury.Updater
}

// InitializeApp sets up all application dependencies and returns the wired
// App, a cleanup function for graceful shutdown, and any error encountered
// during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (CurveRepository).
//   - Builds the ingestion pipeline: roster provider, price downloader,
//     breadth aggregator, treasury updater.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router and registers health probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*App, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (responsible for DB access)
	curveRepo := storage.NewCurveRepository(db)

	// Ingestion pipeline
	provider := symbols.NewWikipediaProvider(cfg.Sources.SymbolsURL)
	fetcher := marketdata.NewYahooFetcher(cfg.Sources.YahooBaseURL)
	downloader := marketdata.NewDownloader(fetcher, cfg.Breadth.Parallel)
	aggregator := breadth.NewAggregator(cfg.Breadth.ShortWindow, cfg.Breadth.LongWindow)
	updater := treasury.NewUpdater(cfg.Sources.TreasuryCSVURL, curveRepo)

	// Service layer (business logic)
	breadthSvc := service.NewBreadthService(provider, downloader, aggregator, service.BreadthConfig{
		SymbolsTTL:  cfg.Refresh.SymbolsTTL,
		HistoryTTL:  cfg.Refresh.PricesTTL,
		HistoryDays: cfg.Breadth.HistoryDays,
	})
	curveSvc := service.NewCurveService(curveRepo, cfg.Refresh.CurveTTL)

	// HTTP handler layer and router
	handler := api.NewHandler(breadthSvc, curveSvc)
	router := api.NewRouter(handler)

	// Register health and readiness probes
	api.NewHealthHandler(db.Ping).Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return &App{
		Router:  router,
		Breadth: breadthSvc,
		Updater: updater,
	}, cleanup, nil
}
