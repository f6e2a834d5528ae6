package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"budgetlens/internal/core"
)

// maxTrendMonths caps how far back a single request may reach.
const maxTrendMonths = 36

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// parseMonth reads the optional month query parameter and validates it as a
// YYYY-MM-01 key. Empty means "current month" and is passed through.
func parseMonth(w http.ResponseWriter, r *http.Request) (string, bool) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		return "", true
	}
	t, err := time.Parse(core.MonthKeyLayout, month)
	if err != nil || t.Day() != 1 {
		writeError(w, http.StatusUnprocessableEntity, "month must be a YYYY-MM-01 key")
		return "", false
	}
	return month, true
}

// parseMonths reads the optional months query parameter.
func parseMonths(w http.ResponseWriter, r *http.Request, defaultValue int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("months"))
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxTrendMonths {
		writeError(w, http.StatusUnprocessableEntity, "months must be between 1 and 36")
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
