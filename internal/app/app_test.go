package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/boxscore/internal/config"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                        config.EnvDev,
		HTTPAddr:                      ":0",
		CORSAllowedOrigins:            []string{"*"},
		ReadTimeout:                   time.Second,
		WriteTimeout:                  time.Second,
		BoxscoreBaseURL:               "http://127.0.0.1:0",
		BoxscoreTimeout:               time.Second,
		BoxscoreCircuitFailureCount:   5,
		BoxscoreCircuitOpenTimeout:    time.Second,
		BoxscoreCircuitHalfOpenMaxReq: 1,
		LatestGameConcurrency:         4,
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer srv.Close()

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
