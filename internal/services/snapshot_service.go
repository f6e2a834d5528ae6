package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetlens/internal/amqp"
	"budgetlens/internal/budget"
	"budgetlens/internal/core"
	"budgetlens/internal/history"
)

// SnapshotService captures net-worth snapshots from current account balances
// and records them in the history store. Each successful capture also
// publishes an export message; publish failures never fail the capture, the
// snapshot is already persisted locally.
type SnapshotService struct {
	accounts   budget.AccountReader
	store      *history.Store
	amqpClient *amqp.Client
	now        func() time.Time
}

func NewSnapshotService(accounts budget.AccountReader, store *history.Store, amqpClient *amqp.Client) *SnapshotService {
	return &SnapshotService{
		accounts:   accounts,
		store:      store,
		amqpClient: amqpClient,
		now:        time.Now,
	}
}

// Capture fetches current balances, builds a snapshot, and upserts it into
// today's history slot.
func (s *SnapshotService) Capture(ctx context.Context) (core.NetWorthSnapshot, error) {
	accounts, err := s.accounts.Accounts(ctx)
	if err != nil {
		return core.NetWorthSnapshot{}, fmt.Errorf("fetch accounts: %w", err)
	}

	snap := core.NewSnapshot(s.now(), accounts)
	s.store.Save(ctx, snap)

	if err := s.publishExportMessage(ctx, snap); err != nil {
		slog.ErrorContext(ctx, "Failed to publish snapshot message",
			"day", snap.Date.Format("2006-01-02"), "error", err)
	}

	return snap, nil
}

// History returns the full persisted snapshot log.
func (s *SnapshotService) History(ctx context.Context) []core.NetWorthSnapshot {
	return s.store.History(ctx)
}

// Window returns the snapshots from the last monthsBack calendar months.
func (s *SnapshotService) Window(ctx context.Context, monthsBack int) []core.NetWorthSnapshot {
	return s.store.Window(ctx, monthsBack)
}

// Clear removes the persisted snapshot log.
func (s *SnapshotService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
}

func (s *SnapshotService) publishExportMessage(ctx context.Context, snap core.NetWorthSnapshot) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping snapshot message")
		return nil
	}

	msg := amqp.NewSnapshotMessage(snap.Date.Format("2006-01-02"), int64(snap.NetWorth))
	return s.amqpClient.PublishSnapshot(ctx, msg)
}

// Close releases the AMQP connection if one was configured.
func (s *SnapshotService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close snapshot service: %w", err)
		}
	}
	return nil
}
