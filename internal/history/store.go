// Package history keeps a rolling log of daily net-worth snapshots. The
// upstream budget API has no historical endpoint, so the dashboard records
// one snapshot per visit and this store owns the persisted collection.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"budgetlens/internal/core"
)

// MaxSnapshots caps the persisted collection at roughly a year of dailies.
const MaxSnapshots = 365

// Storage persists the snapshot collection as a single named JSON record.
// Implementations must make Write atomic with respect to Read: a reader
// sees either the previous collection or the new one, never a partial.
type Storage interface {
	// Read returns the raw record and whether it exists.
	Read(ctx context.Context) (data []byte, ok bool, err error)

	// Write replaces the record.
	Write(ctx context.Context, data []byte) error

	// Clear removes the record.
	Clear(ctx context.Context) error
}

// Store applies the snapshot lifecycle on top of a Storage: upsert by
// calendar day, ascending sort, retention trimming. Persistence failures are
// logged and swallowed so the dashboard stays usable with zero history.
//
// Save is a read-modify-write without locking or version checks. Two
// concurrent writers race and the last one wins silently; acceptable for a
// single-user tool.
type Store struct {
	storage Storage
	max     int
	now     func() time.Time
}

// NewStore builds a store over the given storage, which may be nil when no
// persistence medium is available. A nil-storage store reads empty and
// drops writes.
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		max:     MaxSnapshots,
		now:     time.Now,
	}
}

// History returns the full persisted collection. Absent, unreadable, or
// corrupt storage all yield an empty slice, never an error.
func (s *Store) History(ctx context.Context) []core.NetWorthSnapshot {
	if s.storage == nil {
		return nil
	}

	data, ok, err := s.storage.Read(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Reading net worth history failed, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var snapshots []core.NetWorthSnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		slog.WarnContext(ctx, "Stored net worth history is corrupt, starting empty", "error", err)
		return nil
	}
	return snapshots
}

// Save upserts the candidate into today's slot. An existing snapshot for the
// current calendar date is replaced in place; otherwise the candidate is
// appended. Either way its date is stamped to now, the collection is
// re-sorted ascending and trimmed to the most recent MaxSnapshots entries.
func (s *Store) Save(ctx context.Context, snap core.NetWorthSnapshot) {
	if s.storage == nil {
		slog.DebugContext(ctx, "No snapshot storage available, skipping save")
		return
	}

	now := s.now()
	snap.Date = now

	snapshots := s.History(ctx)
	replaced := false
	for i := range snapshots {
		if core.SameDay(snapshots[i].Date, now) {
			snapshots[i] = snap
			replaced = true
			break
		}
	}
	if !replaced {
		snapshots = append(snapshots, snap)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})
	if len(snapshots) > s.max {
		snapshots = snapshots[len(snapshots)-s.max:]
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		slog.ErrorContext(ctx, "Marshaling net worth history failed", "error", err)
		return
	}
	if err := s.storage.Write(ctx, data); err != nil {
		slog.WarnContext(ctx, "Persisting net worth history failed", "error", err,
			"snapshots", len(snapshots))
		return
	}

	slog.InfoContext(ctx, "Net worth snapshot saved",
		"net_worth", snap.NetWorth,
		"replaced_today", replaced,
		"snapshots", len(snapshots))
}

// Window returns the persisted snapshots dated within the last monthsBack
// calendar months.
func (s *Store) Window(ctx context.Context, monthsBack int) []core.NetWorthSnapshot {
	cutoff := s.now().AddDate(0, -monthsBack, 0)

	snapshots := s.History(ctx)
	out := make([]core.NetWorthSnapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if !snap.Date.Before(cutoff) {
			out = append(out, snap)
		}
	}
	return out
}

// Clear removes all persisted snapshots.
func (s *Store) Clear(ctx context.Context) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Clear(ctx); err != nil {
		slog.WarnContext(ctx, "Clearing net worth history failed", "error", err)
	}
}
