// Package analytics transforms raw budget records into the derived views the
// dashboard renders: spending breakdowns, per-category trends, and per-type
// trends. Everything here is a pure function over already-fetched data;
// upstream fetching and persistence live elsewhere.
package analytics

import (
	"sort"

	"budgetlens/internal/core"
)

// Classifier maps category group names to spending types through a static
// table. Group names not in the table classify as Other.
type Classifier struct {
	groups map[string]core.SpendingType
}

// NewClassifier builds a classifier from per-type group name lists.
func NewClassifier(living, fixed, creditCards []string) *Classifier {
	groups := make(map[string]core.SpendingType, len(living)+len(fixed)+len(creditCards))
	for _, g := range living {
		groups[g] = core.SpendingLiving
	}
	for _, g := range fixed {
		groups[g] = core.SpendingFixed
	}
	for _, g := range creditCards {
		groups[g] = core.SpendingCreditCards
	}
	return &Classifier{groups: groups}
}

// DefaultClassifier returns the stock group table.
func DefaultClassifier() *Classifier {
	return NewClassifier(
		[]string{"Living"},
		[]string{"Fixed", "CASA NUOVA", "RAINY DAYS"},
		[]string{"Credit Card Payments"},
	)
}

// TypeOf resolves a group name to its spending type.
func (c *Classifier) TypeOf(groupName string) core.SpendingType {
	if t, ok := c.groups[groupName]; ok {
		return t
	}
	return core.SpendingOther
}

// Classify partitions one month's category records into the four spending
// buckets. Only qualifying records (visible, not deleted, negative activity)
// count. An empty input yields an all-zero breakdown, never an error.
func (c *Classifier) Classify(records []core.CategoryRecord) core.SpendingBreakdown {
	var breakdown core.SpendingBreakdown

	for _, rec := range records {
		if !rec.Qualifies() {
			continue
		}
		group := rec.Group()
		typ := c.TypeOf(group)
		amount := rec.Activity.Abs()

		bucket := breakdown.BucketFor(typ)
		bucket.Categories = append(bucket.Categories, core.CategorySpending{
			ID:        rec.ID,
			Name:      rec.Name,
			GroupName: group,
			Amount:    amount,
			Type:      typ,
		})
		bucket.Total += amount
		breakdown.GrandTotal += amount
	}

	for _, typ := range []core.SpendingType{core.SpendingLiving, core.SpendingFixed, core.SpendingCreditCards, core.SpendingOther} {
		bucket := breakdown.BucketFor(typ)
		sort.SliceStable(bucket.Categories, func(i, j int) bool {
			return bucket.Categories[i].Amount > bucket.Categories[j].Amount
		})
		if breakdown.GrandTotal > 0 {
			bucket.Percentage = float64(bucket.Total) / float64(breakdown.GrandTotal) * 100
		}
	}

	return breakdown
}

// SpendingByCategory returns each qualifying category's share of the month's
// total spending, sorted descending by amount.
func SpendingByCategory(records []core.CategoryRecord) []core.SpendingByCategory {
	var total core.Milliunits
	qualifying := make([]core.CategoryRecord, 0, len(records))
	for _, rec := range records {
		if rec.Qualifies() {
			qualifying = append(qualifying, rec)
			total += rec.Activity.Abs()
		}
	}

	out := make([]core.SpendingByCategory, 0, len(qualifying))
	for _, rec := range qualifying {
		amount := rec.Activity.Abs()
		entry := core.SpendingByCategory{
			CategoryID:        rec.ID,
			CategoryName:      rec.Name,
			CategoryGroupName: rec.Group(),
			Amount:            amount,
		}
		if total > 0 {
			entry.Percentage = float64(amount) / float64(total) * 100
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}
