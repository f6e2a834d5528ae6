package sheets

import (
	"context"

	"budgetlens/internal/core"
)

// SnapshotAppender exports one net-worth snapshot to an external sheet.
type SnapshotAppender interface {
	// AppendSnapshot appends the snapshot and returns a row reference.
	AppendSnapshot(ctx context.Context, snap core.NetWorthSnapshot) (rowRef string, err error)
}
