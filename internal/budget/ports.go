// Package budget defines the inbound data ports the analytics engine
// consumes. The engine never talks to the external budget API itself; a
// concrete reader is injected at startup and supplies already-fetched
// records.
package budget

import (
	"context"

	"budgetlens/internal/core"
)

type (
	// MonthReader supplies the category records for one month key.
	MonthReader interface {
		// MonthCategories returns the records for the given YYYY-MM-01 key.
		// A month with no data yields an empty slice, not an error.
		MonthCategories(ctx context.Context, month string) ([]core.CategoryRecord, error)
	}

	// AccountReader supplies the current account balances.
	AccountReader interface {
		Accounts(ctx context.Context) ([]core.AccountSummary, error)
	}
)
