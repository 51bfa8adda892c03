// Package server wires the HTTP router, its middleware stack and the
// listener lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/config"
	"github.com/georgemunganga/stockroom-api/internal/modules/auth"
	"github.com/georgemunganga/stockroom-api/internal/modules/health"
	"github.com/georgemunganga/stockroom-api/internal/modules/inventory"
	"github.com/georgemunganga/stockroom-api/internal/modules/user"
)

const maxBodyBytes = 100 << 10

// Deps are the services mounted on the router.
type Deps struct {
	Config    config.ServerConfig
	Logger    *zap.Logger
	Inventory inventory.Service
	Users     user.Service
	Auth      auth.Service
	Started   time.Time
}

// NewRouter builds the router with the full middleware stack and all routes.
func NewRouter(d Deps) *chi.Mux {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(requestLogger(d.Logger))
	router.Use(recoverer(d.Logger))
	router.Use(secureHeaders()...)
	if d.Config.RateLimit > 0 && d.Config.RateWindow > 0 {
		router.Use(rateLimiter(d.Config.RateLimit, d.Config.RateWindow))
	}
	router.Use(corsHandler(d.Config.CORSOrigin))
	router.Use(middleware.RequestSize(maxBodyBytes))
	router.Use(middleware.Compress(5))

	inventory.NewHandler(d.Inventory, d.Logger).RegisterRoutes(router)
	user.NewHandler(d.Users, d.Logger).RegisterRoutes(router)
	auth.NewHandler(d.Auth, d.Logger).RegisterRoutes(router)
	health.NewHandler(d.Started).RegisterRoutes(router)

	router.NotFound(staticHandler(d.Config.StaticDir))
	return router
}

// staticHandler serves the built frontend for GET and HEAD requests that
// match no API route. Paths without a file fall back to a JSON 404.
func staticHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) || strings.HasPrefix(r.URL.Path, "/api") {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
			return
		}
		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(name); err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
			return
		}
		files.ServeHTTP(w, r)
	}
}

// Run serves handler on the configured port until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context, cfg config.ServerConfig, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
