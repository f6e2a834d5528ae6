// Package core holds the plain domain types and month-key helpers shared by
// the analytics engine, the history store, and the HTTP layer.
package core

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the canonical month key format used by the upstream
// budget API: the first day of the month, YYYY-MM-01.
const MonthKeyLayout = "2006-01-02"

// MonthKey normalizes a time to its calendar-month key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-01", t.Year(), int(t.Month()))
}

// CurrentMonth returns the month key for now.
func CurrentMonth(now time.Time) string {
	return MonthKey(now)
}

// LastNMonths returns n month keys, most recent first, walking back one
// calendar month at a time from now.
func LastNMonths(now time.Time, n int) []string {
	months := make([]string, 0, n)
	for i := 0; i < n; i++ {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		months = append(months, MonthKey(m))
	}
	return months
}

// MonthLabel returns a short display label for a month key, e.g. "Jan".
// Unparseable keys are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("Jan")
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
