package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetlens/internal/analytics"
	"budgetlens/internal/budget"
	"budgetlens/internal/cache"
	"budgetlens/internal/core"
)

// cacheSize bounds each view cache; a dashboard only ever looks at a handful
// of months or windows at once.
const cacheSize = 32

// DashboardService produces the derived spending views from the injected
// budget reader, memoizing results per month or window.
type DashboardService struct {
	reader     budget.MonthReader
	classifier *analytics.Classifier

	breakdowns cache.Cache[core.SpendingBreakdown]
	byCategory cache.Cache[[]core.SpendingByCategory]
	trends     cache.Cache[analytics.CategoryTrends]
	typeTrends cache.Cache[[]core.MonthlySpendingTypePoint]

	now func() time.Time
}

func NewDashboardService(reader budget.MonthReader, classifier *analytics.Classifier, ttl time.Duration) *DashboardService {
	return &DashboardService{
		reader:     reader,
		classifier: classifier,
		breakdowns: cache.NewLRUCache[core.SpendingBreakdown](cacheSize, ttl),
		byCategory: cache.NewLRUCache[[]core.SpendingByCategory](cacheSize, ttl),
		trends:     cache.NewLRUCache[analytics.CategoryTrends](cacheSize, ttl),
		typeTrends: cache.NewLRUCache[[]core.MonthlySpendingTypePoint](cacheSize, ttl),
		now:        time.Now,
	}
}

// Breakdown classifies one month's spending. An empty month key means the
// current month.
func (s *DashboardService) Breakdown(ctx context.Context, month string) (core.SpendingBreakdown, error) {
	month = s.normalizeMonth(month)

	if cached, ok := s.breakdowns.Get(month); ok {
		return cached, nil
	}

	records, err := s.reader.MonthCategories(ctx, month)
	if err != nil {
		return core.SpendingBreakdown{}, fmt.Errorf("fetch month %s: %w", month, err)
	}

	breakdown := s.classifier.Classify(records)
	s.breakdowns.Set(month, breakdown)
	return breakdown, nil
}

// SpendingByCategory returns the flat per-category shares for one month.
func (s *DashboardService) SpendingByCategory(ctx context.Context, month string) ([]core.SpendingByCategory, error) {
	month = s.normalizeMonth(month)

	if cached, ok := s.byCategory.Get(month); ok {
		return cached, nil
	}

	records, err := s.reader.MonthCategories(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("fetch month %s: %w", month, err)
	}

	shares := analytics.SpendingByCategory(records)
	s.byCategory.Set(month, shares)
	return shares, nil
}

// CategoryTrends aggregates per-category spending over the last months.
func (s *DashboardService) CategoryTrends(ctx context.Context, months int) (analytics.CategoryTrends, error) {
	key := "cat:" + strconv.Itoa(months)
	if cached, ok := s.trends.Get(key); ok {
		return cached, nil
	}

	requested := core.LastNMonths(s.now(), months)
	periods, err := s.fetchPeriods(ctx, requested)
	if err != nil {
		return analytics.CategoryTrends{}, err
	}

	result := analytics.AggregateCategoryTrends(periods, requested)
	s.trends.Set(key, result)
	return result, nil
}

// TypeTrends aggregates per-type spending over the last months.
func (s *DashboardService) TypeTrends(ctx context.Context, months int) ([]core.MonthlySpendingTypePoint, error) {
	key := "type:" + strconv.Itoa(months)
	if cached, ok := s.typeTrends.Get(key); ok {
		return cached, nil
	}

	requested := core.LastNMonths(s.now(), months)
	periods, err := s.fetchPeriods(ctx, requested)
	if err != nil {
		return nil, err
	}

	result := s.classifier.AggregateTypeTrends(periods, requested)
	s.typeTrends.Set(key, result)
	return result, nil
}

// fetchPeriods loads every requested month concurrently, preserving the
// newest-first order of the keys.
func (s *DashboardService) fetchPeriods(ctx context.Context, months []string) ([]analytics.MonthRecords, error) {
	periods := make([]analytics.MonthRecords, len(months))

	g, ctx := errgroup.WithContext(ctx)
	for i, month := range months {
		g.Go(func() error {
			records, err := s.reader.MonthCategories(ctx, month)
			if err != nil {
				return fmt.Errorf("fetch month %s: %w", month, err)
			}
			periods[i] = analytics.MonthRecords{Month: month, Categories: records}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return periods, nil
}

func (s *DashboardService) normalizeMonth(month string) string {
	if month == "" {
		return core.CurrentMonth(s.now())
	}
	return month
}
