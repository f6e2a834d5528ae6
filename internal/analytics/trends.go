package analytics

import (
	"sort"

	"budgetlens/internal/core"
)

// chartCategoryLimit caps how many categories appear in the chart series.
// The full category list is returned regardless.
const chartCategoryLimit = 5

type (
	// MonthRecords pairs a month key with the category records fetched for
	// it. Callers supply one entry per requested month, newest first.
	MonthRecords struct {
		Month      string
		Categories []core.CategoryRecord
	}

	// CategoryTrends is the result of aggregating spending across months.
	CategoryTrends struct {
		Categories []core.CategoryTrendData
		Chart      []core.MonthlyTrendPoint
	}
)

// AggregateCategoryTrends merges per-category activity across the requested
// months into time series, averages, and trend deltas.
//
// A category's average divides by the months it actually appeared in, not
// the full window, so an expense seen twice in six months is not diluted to
// a sixth of its size. CurrentMonth is the amount in requestedMonths[0] (the
// most recent month), and trend is the current month's percentage deviation
// from the average, 0 when the average is 0.
func AggregateCategoryTrends(periods []MonthRecords, requestedMonths []string) CategoryTrends {
	byID := make(map[string]*core.CategoryTrendData)
	order := make([]string, 0, 16)

	for _, period := range periods {
		for _, rec := range period.Categories {
			if !rec.Qualifies() {
				continue
			}
			amount := rec.Activity.Abs()
			cat, ok := byID[rec.ID]
			if !ok {
				cat = &core.CategoryTrendData{
					CategoryID:        rec.ID,
					CategoryName:      rec.Name,
					CategoryGroupName: rec.Group(),
				}
				byID[rec.ID] = cat
				order = append(order, rec.ID)
			}
			cat.MonthlyData = append(cat.MonthlyData, core.MonthlyAmount{
				Month:  period.Month,
				Amount: amount,
			})
			cat.Total += amount
		}
	}

	var currentMonth string
	if len(requestedMonths) > 0 {
		currentMonth = requestedMonths[0]
	}

	categories := make([]core.CategoryTrendData, 0, len(order))
	for _, id := range order {
		cat := byID[id]
		cat.Average = float64(cat.Total) / float64(len(cat.MonthlyData))
		for _, m := range cat.MonthlyData {
			if m.Month == currentMonth {
				cat.CurrentMonth = m.Amount
				break
			}
		}
		if cat.Average > 0 {
			cat.Trend = (float64(cat.CurrentMonth) - cat.Average) / cat.Average * 100
		}
		categories = append(categories, *cat)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total > categories[j].Total
	})

	return CategoryTrends{
		Categories: categories,
		Chart:      buildChart(categories, requestedMonths),
	}
}

// buildChart emits one point per month in chronological order, carrying the
// top categories' amounts keyed by category ID.
func buildChart(categories []core.CategoryTrendData, requestedMonths []string) []core.MonthlyTrendPoint {
	top := categories
	if len(top) > chartCategoryLimit {
		top = top[:chartCategoryLimit]
	}

	points := make([]core.MonthlyTrendPoint, 0, len(requestedMonths))
	for i := len(requestedMonths) - 1; i >= 0; i-- {
		month := requestedMonths[i]
		point := core.MonthlyTrendPoint{
			Month:      month,
			MonthLabel: core.MonthLabel(month),
			Series:     make(map[string]core.Milliunits, len(top)),
		}
		for _, cat := range top {
			var amount core.Milliunits
			for _, m := range cat.MonthlyData {
				if m.Month == month {
					amount = m.Amount
					break
				}
			}
			point.Series[cat.CategoryID] = amount
		}
		points = append(points, point)
	}
	return points
}
