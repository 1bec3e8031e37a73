package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/skauts-stats/external/skautsapi"
	"github.com/riskibarqy/skauts-stats/internal/config"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/skauts-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/skauts-stats/internal/observability"
	idgen "github.com/riskibarqy/skauts-stats/internal/platform/id"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
)

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP    *http.Server
	closers []func() error
}

// Close releases backend resources. It does not stop the HTTP server.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	classifier, err := config.LoadClassifier(cfg.ClassifierKeywordsFile)
	if err != nil {
		return nil, fmt.Errorf("load classifier keywords: %w", err)
	}

	metrics := observability.NewMetrics()
	out := &Server{}

	var repos Repositories
	switch cfg.FetcherBackend {
	case config.FetcherBackendAPI:
		repos = apiRepositories(cfg, logger, metrics.CircuitStateListener())
		logger.Info("entity fetcher ready", "backend", cfg.FetcherBackend, "base_url", cfg.SkautsAPIBaseURL, "breaker", skautsapi.BreakerName)
	case config.FetcherBackendPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out.closers = append(out.closers, db.Close)
		repos = postgresRepositories(db)
		logger.Info("entity fetcher ready", "backend", cfg.FetcherBackend, "db_name", postgres.DatabaseName(cfg.DBURL))
	default:
		repos = memoryRepositories(memory.SeedDataset())
		logger.Info("entity fetcher ready", "backend", config.FetcherBackendMemory)
	}

	opts := usecase.ComputeOptions{
		Classifier: classifier,
		Workers:    cfg.FanoutMaxWorkers,
		TopN:       cfg.RankingTopN,
		Passes:     usecase.NewPassRunner(resilience.NewPassTracker(), idgen.NewUUIDGenerator(), metrics, logger),
		Logger:     logger,
	}

	handler := httpapi.NewHandler(
		usecase.NewDashboardService(repos.Organizations, repos.Players, repos.Matches, repos.Championships, repos.Teams, repos.EventTypes, repos.Events, opts),
		usecase.NewMatchDetailService(repos.Matches, repos.Teams, repos.TeamPlayers, repos.Players, repos.EventTypes, repos.Events, opts),
		usecase.NewMatchListService(repos.Matches, repos.Teams, repos.Championships, opts),
		usecase.NewRosterService(repos.Teams, repos.TeamPlayers, repos.Players, repos.Roles, opts),
		usecase.NewPrizeService(repos.Players, repos.Prizes, opts),
		logger,
	)

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = metrics.Handler()
	}
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metricsHandler)

	out.HTTP = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return out, nil
}
