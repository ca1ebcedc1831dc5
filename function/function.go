// Package function exposes the NewsNugget API as a Google Cloud Function.
//
// The function serves the same routes as the standalone API server, so
// POST /api/v1/analyze and friends work unchanged behind the function URL.
package function

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/seenimoa/newsnugget/api"
	"github.com/seenimoa/newsnugget/internal/config"
	"github.com/seenimoa/newsnugget/internal/logging"
	"github.com/seenimoa/newsnugget/internal/nugget"
)

func init() {
	functions.HTTP("AnalyzeArticle", AnalyzeArticle)
}

var (
	setupOnce sync.Once
	handler   http.Handler
	setupErr  error
)

// AnalyzeArticle is the HTTP entry point. Configuration is loaded from the
// environment on the first request and reused by warm instances.
func AnalyzeArticle(w http.ResponseWriter, r *http.Request) {
	h, err := setup()
	if err != nil {
		logger := slog.New(slog.NewTextHandler(funcframework.LogWriter(r.Context()), nil))
		logger.Error("function setup failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.ServeHTTP(w, r)
}

func setup() (http.Handler, error) {
	setupOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			setupErr = err
			return
		}
		logger, err := logging.New(cfg.Logging, funcframework.LogWriter(context.Background()))
		if err != nil {
			setupErr = err
			return
		}
		svc := nugget.FromConfig(cfg, logger)
		handler = api.NewServer(cfg, svc, logger).Router()
	})
	return handler, setupErr
}
