// Package http exposes the analytics engine as a small JSON API consumed by
// the dashboard frontend.
package http

import (
	"log/slog"
	"net/http"
	"time"

	applog "budgetlens/internal/log"
	"budgetlens/internal/services"
)

// requestTimeout bounds handler work per request.
const requestTimeout = 7 * time.Second

type Server struct {
	http.Server
	dashboard *services.DashboardService
	snapshots *services.SnapshotService

	// trendMonths is the default window for the trend endpoints.
	trendMonths int
}

func NewServer(addr string, dashboard *services.DashboardService, snapshots *services.SnapshotService, trendMonths int) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		dashboard:   dashboard,
		snapshots:   snapshots,
		trendMonths: trendMonths,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleHealth)

	mux.HandleFunc("/api/spending/breakdown", s.withRequestLog(s.handleSpendingBreakdown))
	mux.HandleFunc("/api/spending/categories", s.withRequestLog(s.handleSpendingByCategory))
	mux.HandleFunc("/api/trends/categories", s.withRequestLog(s.handleCategoryTrends))
	mux.HandleFunc("/api/trends/types", s.withRequestLog(s.handleTypeTrends))
	mux.HandleFunc("/api/networth/history", s.withRequestLog(s.handleNetWorthHistory))
	mux.HandleFunc("/api/networth/window", s.withRequestLog(s.handleNetWorthWindow))
	mux.HandleFunc("/api/networth/snapshot", s.withRequestLog(s.handleCaptureSnapshot))

	return s
}

// withRequestLog logs each request with method, path, status, and duration.
// Client errors log at warn, server errors at error.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next(sw, r)

		level := slog.LevelInfo
		switch {
		case sw.status >= 500:
			level = slog.LevelError
		case sw.status >= 400:
			level = slog.LevelWarn
		}

		applog.FromContext(r.Context()).Log(r.Context(), level, "Request handled",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, sw.status,
			applog.FieldDuration, time.Since(start).Milliseconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
