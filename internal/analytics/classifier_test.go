package analytics

import (
	"math"
	"testing"

	"budgetlens/internal/core"
)

func TestClassifyBreakdown(t *testing.T) {
	records := []core.CategoryRecord{
		{ID: "c1", Name: "Groceries", GroupName: "Living", Activity: -5000},
		{ID: "c2", Name: "Rent", GroupName: "Fixed", Activity: -3000},
		{ID: "c3", Name: "Misc", GroupName: "Unknown", Activity: -2000},
		{ID: "c4", Name: "Refund", GroupName: "Living", Activity: 100}, // income, excluded
	}

	got := DefaultClassifier().Classify(records)

	if got.Living.Total != 5000 {
		t.Fatalf("living total = %d", got.Living.Total)
	}
	if len(got.Living.Categories) != 1 {
		t.Fatalf("living categories = %d", len(got.Living.Categories))
	}
	if got.Fixed.Total != 3000 {
		t.Fatalf("fixed total = %d", got.Fixed.Total)
	}
	if got.Other.Total != 2000 {
		t.Fatalf("other total = %d", got.Other.Total)
	}
	if got.CreditCards.Total != 0 {
		t.Fatalf("credit cards total = %d", got.CreditCards.Total)
	}
	if got.GrandTotal != 10000 {
		t.Fatalf("grand total = %d", got.GrandTotal)
	}
	if got.Living.Percentage != 50 || got.Fixed.Percentage != 30 || got.Other.Percentage != 20 {
		t.Fatalf("percentages = %v %v %v", got.Living.Percentage, got.Fixed.Percentage, got.Other.Percentage)
	}
}

func TestClassifyPartitionCompleteness(t *testing.T) {
	records := []core.CategoryRecord{
		{ID: "a", GroupName: "Living", Activity: -1234},
		{ID: "b", GroupName: "CASA NUOVA", Activity: -777},
		{ID: "c", GroupName: "RAINY DAYS", Activity: -1},
		{ID: "d", GroupName: "Credit Card Payments", Activity: -99999},
		{ID: "e", GroupName: "Whatever", Activity: -500},
		{ID: "f", GroupName: "Living", Activity: -500, Hidden: true},
	}

	got := DefaultClassifier().Classify(records)

	sum := got.Living.Total + got.Fixed.Total + got.CreditCards.Total + got.Other.Total
	if sum != got.GrandTotal {
		t.Fatalf("bucket totals %d != grand total %d", sum, got.GrandTotal)
	}

	pctSum := got.Living.Percentage + got.Fixed.Percentage + got.CreditCards.Percentage + got.Other.Percentage
	if math.Abs(pctSum-100) > 1e-6 {
		t.Fatalf("percentages sum to %v", pctSum)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	got := DefaultClassifier().Classify(nil)

	if got.GrandTotal != 0 {
		t.Fatalf("grand total = %d", got.GrandTotal)
	}
	for _, bucket := range []core.SpendingBucket{got.Living, got.Fixed, got.CreditCards, got.Other} {
		if bucket.Total != 0 || bucket.Percentage != 0 || len(bucket.Categories) != 0 {
			t.Fatalf("expected empty bucket, got %+v", bucket)
		}
	}
}

func TestClassifySortsCategoriesDescending(t *testing.T) {
	records := []core.CategoryRecord{
		{ID: "small", GroupName: "Living", Activity: -100},
		{ID: "big", GroupName: "Living", Activity: -900},
		{ID: "mid", GroupName: "Living", Activity: -500},
	}

	got := DefaultClassifier().Classify(records)

	cats := got.Living.Categories
	if cats[0].ID != "big" || cats[1].ID != "mid" || cats[2].ID != "small" {
		t.Fatalf("unexpected order: %v %v %v", cats[0].ID, cats[1].ID, cats[2].ID)
	}
}

func TestClassifyUncategorizedFallback(t *testing.T) {
	got := DefaultClassifier().Classify([]core.CategoryRecord{
		{ID: "x", Name: "Mystery", Activity: -42},
	})

	if len(got.Other.Categories) != 1 {
		t.Fatalf("other categories = %d", len(got.Other.Categories))
	}
	if got.Other.Categories[0].GroupName != core.UncategorizedGroup {
		t.Fatalf("group = %q", got.Other.Categories[0].GroupName)
	}
}

func TestTypeOfIsConfiguration(t *testing.T) {
	cls := NewClassifier([]string{"Daily"}, []string{"Bills"}, nil)

	cases := map[string]core.SpendingType{
		"Daily":  core.SpendingLiving,
		"Bills":  core.SpendingFixed,
		"Living": core.SpendingOther, // not in this table
	}
	for group, want := range cases {
		if got := cls.TypeOf(group); got != want {
			t.Fatalf("TypeOf(%q) = %q, want %q", group, got, want)
		}
	}
}

func TestSpendingByCategory(t *testing.T) {
	records := []core.CategoryRecord{
		{ID: "a", Name: "Food", GroupName: "Living", Activity: -6000},
		{ID: "b", Name: "Gas", GroupName: "Living", Activity: -2000},
		{ID: "c", Name: "Hidden", GroupName: "Living", Activity: -2000, Hidden: true},
	}

	got := SpendingByCategory(records)

	if len(got) != 2 {
		t.Fatalf("entries = %d", len(got))
	}
	if got[0].CategoryID != "a" || got[0].Percentage != 75 {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].Percentage != 25 {
		t.Fatalf("second = %+v", got[1])
	}
}

func TestSpendingByCategoryZeroTotal(t *testing.T) {
	got := SpendingByCategory([]core.CategoryRecord{{ID: "a", Activity: 500}})
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}
