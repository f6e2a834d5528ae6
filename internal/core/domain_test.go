package core

import (
	"testing"
	"time"
)

func TestCategoryRecordQualifies(t *testing.T) {
	cases := []struct {
		rec CategoryRecord
		ok  bool
	}{
		{CategoryRecord{Activity: -5000}, true},
		{CategoryRecord{Activity: 100}, false},  // income
		{CategoryRecord{Activity: 0}, false},    // no activity
		{CategoryRecord{Activity: -5000, Hidden: true}, false},
		{CategoryRecord{Activity: -5000, Deleted: true}, false},
	}
	for i, tc := range cases {
		if got := tc.rec.Qualifies(); got != tc.ok {
			t.Fatalf("case %d: Qualifies() = %v, want %v", i, got, tc.ok)
		}
	}
}

func TestCategoryRecordGroupFallback(t *testing.T) {
	if got := (CategoryRecord{GroupName: "Living"}).Group(); got != "Living" {
		t.Fatalf("Group() = %q", got)
	}
	if got := (CategoryRecord{}).Group(); got != UncategorizedGroup {
		t.Fatalf("Group() = %q, want %q", got, UncategorizedGroup)
	}
}

func TestNewSnapshot(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	accounts := []AccountSummary{
		{ID: "a", Name: "Checking", Type: "checking", Balance: 500_000},
		{ID: "b", Name: "Savings", Type: "savings", Balance: 1_200_000},
		{ID: "c", Name: "Card", Type: "creditCard", Balance: -300_000},
	}

	snap := NewSnapshot(date, accounts)

	if snap.Assets != 1_700_000 {
		t.Fatalf("assets = %d", snap.Assets)
	}
	if snap.Liabilities != -300_000 {
		t.Fatalf("liabilities = %d", snap.Liabilities)
	}
	if snap.NetWorth != 1_400_000 {
		t.Fatalf("net worth = %d", snap.NetWorth)
	}
	if len(snap.Accounts) != 3 {
		t.Fatalf("accounts = %d", len(snap.Accounts))
	}
	if !snap.Date.Equal(date) {
		t.Fatalf("date = %v", snap.Date)
	}
}

func TestComputeChange(t *testing.T) {
	cases := []struct {
		current, previous Milliunits
		amount            Milliunits
		percentage        float64
	}{
		{5000, 4000, 1000, 25},
		{1000, 0, 1000, 0}, // zero previous never divides
		{3000, -4000, 7000, 175},
		{4000, 4000, 0, 0},
	}
	for i, tc := range cases {
		got := ComputeChange(tc.current, tc.previous)
		if got.Amount != tc.amount {
			t.Fatalf("case %d: amount = %d, want %d", i, got.Amount, tc.amount)
		}
		if got.Percentage != tc.percentage {
			t.Fatalf("case %d: percentage = %v, want %v", i, got.Percentage, tc.percentage)
		}
	}
}

func TestSpendingTypeLabels(t *testing.T) {
	for _, typ := range []SpendingType{SpendingLiving, SpendingFixed, SpendingCreditCards, SpendingOther} {
		if typ.Label() == "" || typ.Description() == "" {
			t.Fatalf("missing label or description for %q", typ)
		}
	}
}

func TestMilliunitsCurrency(t *testing.T) {
	if got := Milliunits(12_340).Currency(); got != 12.34 {
		t.Fatalf("Currency() = %v", got)
	}
	if got := Milliunits(-500).Abs(); got != 500 {
		t.Fatalf("Abs() = %v", got)
	}
}
