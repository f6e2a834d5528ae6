package analytics

import "budgetlens/internal/core"

// AggregateTypeTrends buckets each month's qualifying spending by spending
// type. Records classifying as Other are dropped from this view entirely.
// Points come back in chronological order, oldest first.
func (c *Classifier) AggregateTypeTrends(periods []MonthRecords, requestedMonths []string) []core.MonthlySpendingTypePoint {
	totals := make(map[string]*core.MonthlySpendingTypePoint, len(requestedMonths))
	for _, month := range requestedMonths {
		totals[month] = &core.MonthlySpendingTypePoint{
			Month:      month,
			MonthLabel: core.MonthLabel(month),
		}
	}

	for _, period := range periods {
		point, ok := totals[period.Month]
		if !ok {
			continue
		}
		for _, rec := range period.Categories {
			if !rec.Qualifies() {
				continue
			}
			amount := rec.Activity.Abs()
			switch c.TypeOf(rec.Group()) {
			case core.SpendingLiving:
				point.Living += amount
			case core.SpendingFixed:
				point.Fixed += amount
			case core.SpendingCreditCards:
				point.CreditCards += amount
			}
		}
	}

	points := make([]core.MonthlySpendingTypePoint, 0, len(requestedMonths))
	for i := len(requestedMonths) - 1; i >= 0; i-- {
		points = append(points, *totals[requestedMonths[i]])
	}
	return points
}
