package app

import (
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/boxscore/external/boxscoreapi"
	"github.com/riskibarqy/boxscore/internal/config"
	"github.com/riskibarqy/boxscore/internal/domain/player"
	"github.com/riskibarqy/boxscore/internal/interfaces/httpapi"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
	"github.com/riskibarqy/boxscore/internal/platform/resilience"
	"github.com/riskibarqy/boxscore/internal/usecase"
)

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP *http.Server
	pool *ants.Pool
}

// Close releases the latest-game worker pool. Call it after the HTTP server
// stopped accepting requests.
func (s *Server) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Release()
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	source := boxscoreapi.NewClient(boxscoreapi.ClientConfig{
		BaseURL:    cfg.BoxscoreBaseURL,
		Timeout:    cfg.BoxscoreTimeout,
		MaxRetries: cfg.BoxscoreMaxRetries,
		Logger:     logger.Named("boxscoreapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.BoxscoreCircuitEnabled,
			FailureThreshold: cfg.BoxscoreCircuitFailureCount,
			OpenTimeout:      cfg.BoxscoreCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.BoxscoreCircuitHalfOpenMaxReq,
		},
	})

	pool, err := ants.NewPool(cfg.LatestGameConcurrency)
	if err != nil {
		return nil, fmt.Errorf("create latest game worker pool: %w", err)
	}

	resolver := usecase.NewLatestGameResolver(source, pool, logger.Named("latest_game"))
	gameQuerySvc := usecase.NewGameQueryService(source)
	playerSvc := usecase.NewPlayerService(source, resolver, gameQuerySvc, player.ImageResolver{
		BaseURL:  cfg.PlayerImageBaseURL,
		Fallback: cfg.PlayerFallbackImage,
	}, logger)

	handler := httpapi.NewHandler(playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		pool: pool,
	}, nil
}
