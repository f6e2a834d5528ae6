package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetlens/internal/analytics"
	"budgetlens/internal/budget/memory"
	"budgetlens/internal/core"
)

type failingReader struct{}

func (failingReader) MonthCategories(context.Context, string) ([]core.CategoryRecord, error) {
	return nil, errors.New("upstream unavailable")
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func newTestDashboard(store *memory.Store) *DashboardService {
	svc := NewDashboardService(store, analytics.DefaultClassifier(), time.Minute)
	svc.now = fixedNow
	return svc
}

func TestBreakdownDefaultsToCurrentMonth(t *testing.T) {
	store := memory.New(map[string][]core.CategoryRecord{
		"2026-03-01": {{ID: "a", GroupName: "Living", Activity: -1000}},
	}, nil)
	svc := newTestDashboard(store)

	got, err := svc.Breakdown(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Living.Total != 1000 || got.GrandTotal != 1000 {
		t.Fatalf("got %+v", got)
	}
}

func TestBreakdownIsCached(t *testing.T) {
	store := memory.New(map[string][]core.CategoryRecord{
		"2026-01-01": {{ID: "a", GroupName: "Living", Activity: -1000}},
	}, nil)
	svc := newTestDashboard(store)
	ctx := context.Background()

	first, err := svc.Breakdown(ctx, "2026-01-01")
	if err != nil {
		t.Fatal(err)
	}

	// A change upstream must not show before the TTL expires.
	store.SetMonth("2026-01-01", []core.CategoryRecord{{ID: "a", GroupName: "Living", Activity: -9000}})

	second, err := svc.Breakdown(ctx, "2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if second.GrandTotal != first.GrandTotal {
		t.Fatalf("cache miss: %d != %d", second.GrandTotal, first.GrandTotal)
	}
}

func TestBreakdownPropagatesReaderError(t *testing.T) {
	svc := NewDashboardService(failingReader{}, analytics.DefaultClassifier(), time.Minute)

	if _, err := svc.Breakdown(context.Background(), "2026-01-01"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCategoryTrendsWindow(t *testing.T) {
	store := memory.New(map[string][]core.CategoryRecord{
		"2026-03-01": {{ID: "food", Name: "Food", GroupName: "Living", Activity: -100}},
		"2026-02-01": {{ID: "food", Name: "Food", GroupName: "Living", Activity: -200}},
		"2026-01-01": {{ID: "food", Name: "Food", GroupName: "Living", Activity: -300}},
	}, nil)
	svc := newTestDashboard(store)

	got, err := svc.CategoryTrends(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 1 {
		t.Fatalf("categories = %d", len(got.Categories))
	}
	cat := got.Categories[0]
	if cat.Average != 200 || cat.CurrentMonth != 100 || cat.Trend != -50 {
		t.Fatalf("got %+v", cat)
	}
	if len(got.Chart) != 3 || got.Chart[0].Month != "2026-01-01" {
		t.Fatalf("chart = %+v", got.Chart)
	}
}

func TestTypeTrends(t *testing.T) {
	store := memory.New(map[string][]core.CategoryRecord{
		"2026-03-01": {
			{ID: "a", GroupName: "Living", Activity: -100},
			{ID: "b", GroupName: "Nonsense", Activity: -500},
		},
	}, nil)
	svc := newTestDashboard(store)

	got, err := svc.TypeTrends(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("points = %d", len(got))
	}
	last := got[len(got)-1]
	if last.Month != "2026-03-01" || last.Living != 100 {
		t.Fatalf("last point = %+v", last)
	}
}

func TestSpendingByCategoryService(t *testing.T) {
	store := memory.New(map[string][]core.CategoryRecord{
		"2026-03-01": {
			{ID: "a", Name: "Food", GroupName: "Living", Activity: -750},
			{ID: "b", Name: "Gas", GroupName: "Living", Activity: -250},
		},
	}, nil)
	svc := newTestDashboard(store)

	got, err := svc.SpendingByCategory(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Percentage != 75 {
		t.Fatalf("got %+v", got)
	}
}
