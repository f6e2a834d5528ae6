package http

import (
	"context"
	"net/http"

	"budgetlens/internal/core"
	applog "budgetlens/internal/log"
)

// handleSpendingBreakdown returns the 4-way spending partition for a month.
// Query: month (YYYY-MM-01, optional, defaults to the current month).
func (s *Server) handleSpendingBreakdown(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	breakdown, err := s.dashboard.Breakdown(ctx, month)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Spending breakdown failed",
			applog.FieldMonth, month, applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "spending data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

// handleSpendingByCategory returns flat per-category shares for a month.
func (s *Server) handleSpendingByCategory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	shares, err := s.dashboard.SpendingByCategory(ctx, month)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Spending by category failed",
			applog.FieldMonth, month, applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "spending data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, shares)
}

// handleCategoryTrends returns per-category trend data and chart points.
// Query: months (1-36, defaults to the configured trend window).
func (s *Server) handleCategoryTrends(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	months, ok := parseMonths(w, r, s.trendMonths)
	if !ok {
		return
	}

	trends, err := s.dashboard.CategoryTrends(ctx, months)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Category trends failed",
			applog.FieldMonths, months, applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "trend data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": trends.Categories,
		"chart_data": trends.Chart,
	})
}

// handleTypeTrends returns per-spending-type chart points.
func (s *Server) handleTypeTrends(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	months, ok := parseMonths(w, r, s.trendMonths)
	if !ok {
		return
	}

	points, err := s.dashboard.TypeTrends(ctx, months)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Type trends failed",
			applog.FieldMonths, months, applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "trend data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"chart_data": points})
}

// handleNetWorthHistory serves GET (full history) and DELETE (clear).
func (s *Server) handleNetWorthHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	switch r.Method {
	case http.MethodGet:
		snapshots := s.snapshots.History(ctx)
		if snapshots == nil {
			snapshots = []core.NetWorthSnapshot{}
		}
		writeJSON(w, http.StatusOK, snapshots)
	case http.MethodDelete:
		s.snapshots.Clear(ctx)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleNetWorthWindow returns snapshots from the last N calendar months.
// Query: months (default 12).
func (s *Server) handleNetWorthWindow(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	months, ok := parseMonths(w, r, 12)
	if !ok {
		return
	}

	snapshots := s.snapshots.Window(ctx, months)
	if snapshots == nil {
		snapshots = []core.NetWorthSnapshot{}
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// handleCaptureSnapshot records a net-worth snapshot for today.
func (s *Server) handleCaptureSnapshot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	snap, err := s.snapshots.Capture(ctx)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Snapshot capture failed", applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "account data unavailable")
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}
