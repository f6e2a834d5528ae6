// Package worker exports captured net-worth snapshots to an external sheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetlens/internal/amqp"
	"budgetlens/internal/core"
	"budgetlens/internal/history"
	"budgetlens/internal/sheets"
)

// ExportWorker resolves snapshot messages against the history store and
// appends the snapshot to the configured sheet.
type ExportWorker struct {
	store    *history.Store
	appender sheets.SnapshotAppender
}

func NewExportWorker(store *history.Store, appender sheets.SnapshotAppender) *ExportWorker {
	return &ExportWorker{
		store:    store,
		appender: appender,
	}
}

// HandleSnapshotMessage processes one snapshot message from AMQP. A message
// whose day no longer exists in the store is dropped, not requeued; the
// snapshot was overwritten or trimmed and there is nothing left to export.
func (w *ExportWorker) HandleSnapshotMessage(ctx context.Context, msg *amqp.SnapshotMessage) error {
	day, err := time.Parse("2006-01-02", msg.Day)
	if err != nil {
		slog.WarnContext(ctx, "Dropping snapshot message with bad day key",
			"day", msg.Day, "error", err)
		return nil
	}

	snap, ok := w.findSnapshot(ctx, day)
	if !ok {
		slog.WarnContext(ctx, "No snapshot stored for day, dropping message", "day", msg.Day)
		return nil
	}

	if w.appender == nil {
		slog.WarnContext(ctx, "No sheet appender configured, skipping export", "day", msg.Day)
		return nil
	}

	ref, err := w.appender.AppendSnapshot(ctx, snap)
	if err != nil {
		return fmt.Errorf("export snapshot for %s: %w", msg.Day, err)
	}

	slog.InfoContext(ctx, "Snapshot exported",
		"day", msg.Day,
		"net_worth", snap.NetWorth,
		"sheets_ref", ref)

	return nil
}

func (w *ExportWorker) findSnapshot(ctx context.Context, day time.Time) (core.NetWorthSnapshot, bool) {
	for _, snap := range w.store.History(ctx) {
		if core.SameDay(snap.Date, day) {
			return snap, true
		}
	}
	return core.NetWorthSnapshot{}, false
}
