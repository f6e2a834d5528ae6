package core

import "time"

const (
	SpendingLiving      SpendingType = "living"
	SpendingFixed       SpendingType = "fixed"
	SpendingCreditCards SpendingType = "creditCards"
	SpendingOther       SpendingType = "other"
)

// UncategorizedGroup is the fallback group name for records without one.
const UncategorizedGroup = "Uncategorized"

type (
	// SpendingType partitions spending into broad buckets.
	SpendingType string

	// Milliunits is an amount in the smallest currency subunit times 1000,
	// matching the upstream budget API representation.
	Milliunits int64

	// CategoryRecord is a single category row as delivered by the upstream
	// budget API for one month. Activity is negative for spending.
	CategoryRecord struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		GroupName string     `json:"group_name"`
		Activity  Milliunits `json:"activity"`
		Hidden    bool       `json:"hidden"`
		Deleted   bool       `json:"deleted"`
	}

	// AccountSummary is an account row at fetch time. Positive balances are
	// assets, negative balances liabilities. Type only drives presentation.
	AccountSummary struct {
		ID       string     `json:"id"`
		Name     string     `json:"name"`
		Type     string     `json:"type"`
		Balance  Milliunits `json:"balance"`
		OnBudget bool       `json:"on_budget"`
	}

	// CategorySpending is one qualifying category after classification.
	// Amount is the absolute value of the record's activity.
	CategorySpending struct {
		ID        string       `json:"id"`
		Name      string       `json:"name"`
		GroupName string       `json:"group_name"`
		Amount    Milliunits   `json:"amount"`
		Type      SpendingType `json:"type"`
	}

	// SpendingBucket holds one spending type's share of a month.
	SpendingBucket struct {
		Total      Milliunits         `json:"total"`
		Categories []CategorySpending `json:"categories"`
		Percentage float64            `json:"percentage"`
	}

	// SpendingBreakdown is the 4-way partition of one month's spending.
	// The four bucket totals always sum to GrandTotal.
	SpendingBreakdown struct {
		Living      SpendingBucket `json:"living"`
		Fixed       SpendingBucket `json:"fixed"`
		CreditCards SpendingBucket `json:"credit_cards"`
		Other       SpendingBucket `json:"other"`
		GrandTotal  Milliunits     `json:"grand_total"`
	}

	// SpendingByCategory is a flat per-category share of one month's total.
	SpendingByCategory struct {
		CategoryID        string     `json:"category_id"`
		CategoryName      string     `json:"category_name"`
		CategoryGroupName string     `json:"category_group_name"`
		Amount            Milliunits `json:"amount"`
		Percentage        float64    `json:"percentage"`
	}

	// MonthlyAmount is one month's spending for a single category.
	MonthlyAmount struct {
		Month  string     `json:"month"`
		Amount Milliunits `json:"amount"`
	}

	// CategoryTrendData aggregates one category across the requested months.
	// Average divides by the number of months the category actually appeared
	// in, not the full window, so irregular expenses are not diluted.
	CategoryTrendData struct {
		CategoryID        string          `json:"category_id"`
		CategoryName      string          `json:"category_name"`
		CategoryGroupName string          `json:"category_group_name"`
		MonthlyData       []MonthlyAmount `json:"monthly_data"`
		Total             Milliunits      `json:"total"`
		Average           float64         `json:"average"`
		CurrentMonth      Milliunits      `json:"current_month"`
		Trend             float64         `json:"trend"`
	}

	// MonthlyTrendPoint is one chart point. Series is keyed by category ID;
	// display names are resolved by the caller from the category list so
	// same-named categories never collide.
	MonthlyTrendPoint struct {
		Month      string                `json:"month"`
		MonthLabel string                `json:"month_label"`
		Series     map[string]Milliunits `json:"series"`
	}

	// MonthlySpendingTypePoint is one chart point of per-type totals.
	// Other is intentionally absent from this view.
	MonthlySpendingTypePoint struct {
		Month       string     `json:"month"`
		MonthLabel  string     `json:"month_label"`
		Living      Milliunits `json:"living"`
		Fixed       Milliunits `json:"fixed"`
		CreditCards Milliunits `json:"credit_cards"`
	}

	// SnapshotAccount is an account balance embedded in a snapshot.
	SnapshotAccount struct {
		ID      string     `json:"id"`
		Name    string     `json:"name"`
		Balance Milliunits `json:"balance"`
		Type    string     `json:"type"`
	}

	// NetWorthSnapshot is a point-in-time capture of all account balances.
	// Liabilities is negative or zero, so NetWorth = Assets + Liabilities.
	NetWorthSnapshot struct {
		Date        time.Time         `json:"date"`
		Assets      Milliunits        `json:"assets"`
		Liabilities Milliunits        `json:"liabilities"`
		NetWorth    Milliunits        `json:"netWorth"`
		Accounts    []SnapshotAccount `json:"accounts"`
	}

	// Change is a delta between two amounts.
	Change struct {
		Amount     Milliunits `json:"amount"`
		Percentage float64    `json:"percentage"`
	}
)

// Currency returns the amount in whole currency units for display.
// Use milliunits for arithmetic to avoid floating-point drift.
func (m Milliunits) Currency() float64 {
	return float64(m) / 1000.0
}

// Abs returns the absolute value.
func (m Milliunits) Abs() Milliunits {
	if m < 0 {
		return -m
	}
	return m
}

// Qualifies reports whether the record participates in classification and
// aggregation: visible, not deleted, and actual spending (negative activity).
func (c CategoryRecord) Qualifies() bool {
	return !c.Hidden && !c.Deleted && c.Activity < 0
}

// Group returns the record's group name, falling back to UncategorizedGroup.
func (c CategoryRecord) Group() string {
	if c.GroupName == "" {
		return UncategorizedGroup
	}
	return c.GroupName
}

// BucketFor returns the bucket holding the given spending type.
func (b *SpendingBreakdown) BucketFor(t SpendingType) *SpendingBucket {
	switch t {
	case SpendingLiving:
		return &b.Living
	case SpendingFixed:
		return &b.Fixed
	case SpendingCreditCards:
		return &b.CreditCards
	default:
		return &b.Other
	}
}

// Label returns a human-readable label for the spending type.
func (t SpendingType) Label() string {
	switch t {
	case SpendingLiving:
		return "Living Expenses"
	case SpendingFixed:
		return "Savings & Investments"
	case SpendingCreditCards:
		return "Credit Card Payments"
	default:
		return "Other"
	}
}

// Description returns a short explanation of the spending type.
func (t SpendingType) Description() string {
	switch t {
	case SpendingLiving:
		return "Actual spending on daily life"
	case SpendingFixed:
		return "Money going to savings & investments"
	case SpendingCreditCards:
		return "Paying off previous spending"
	default:
		return "Uncategorized spending"
	}
}

// NewSnapshot builds a net-worth snapshot from the given accounts.
// Assets sums positive balances, Liabilities sums negative balances and
// stays negative or zero.
func NewSnapshot(date time.Time, accounts []AccountSummary) NetWorthSnapshot {
	snap := NetWorthSnapshot{
		Date:     date,
		Accounts: make([]SnapshotAccount, 0, len(accounts)),
	}
	for _, acc := range accounts {
		if acc.Balance > 0 {
			snap.Assets += acc.Balance
		} else {
			snap.Liabilities += acc.Balance
		}
		snap.Accounts = append(snap.Accounts, SnapshotAccount{
			ID:      acc.ID,
			Name:    acc.Name,
			Balance: acc.Balance,
			Type:    acc.Type,
		})
	}
	snap.NetWorth = snap.Assets + snap.Liabilities
	return snap
}

// ComputeChange returns the delta between two amounts. The percentage is
// relative to the absolute previous value and 0 when previous is 0.
func ComputeChange(current, previous Milliunits) Change {
	delta := current - previous
	change := Change{Amount: delta}
	if previous != 0 {
		change.Percentage = float64(delta) / float64(previous.Abs()) * 100
	}
	return change
}
