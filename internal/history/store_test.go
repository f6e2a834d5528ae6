package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetlens/internal/core"
	"budgetlens/internal/history/memory"
)

type failingStorage struct{}

func (failingStorage) Read(context.Context) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}
func (failingStorage) Write(context.Context, []byte) error { return errors.New("storage unavailable") }
func (failingStorage) Clear(context.Context) error         { return errors.New("storage unavailable") }

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore(memory.New())
	store.now = func() time.Time { return now }
	return store, &now
}

func snapshotWorth(worth core.Milliunits) core.NetWorthSnapshot {
	return core.NetWorthSnapshot{Assets: worth, NetWorth: worth}
}

func TestSaveAppendsAndStampsDate(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()

	snap := snapshotWorth(1000)
	snap.Date = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC) // caller-supplied date is ignored
	store.Save(ctx, snap)

	got := store.History(ctx)
	if len(got) != 1 {
		t.Fatalf("history = %d entries", len(got))
	}
	if !got[0].Date.Equal(*now) {
		t.Fatalf("date = %v, want %v", got[0].Date, *now)
	}
}

func TestSameDayWriteOverwrites(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, snapshotWorth(1000))
	*now = now.Add(4 * time.Hour) // later the same day
	store.Save(ctx, snapshotWorth(2000))

	got := store.History(ctx)
	if len(got) != 1 {
		t.Fatalf("history = %d entries, want 1", len(got))
	}
	if got[0].NetWorth != 2000 {
		t.Fatalf("net worth = %d, want the second snapshot's value", got[0].NetWorth)
	}
}

func TestRetentionBound(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()

	start := *now
	for i := 0; i < 400; i++ {
		*now = start.AddDate(0, 0, i)
		store.Save(ctx, snapshotWorth(core.Milliunits(i)))
	}

	got := store.History(ctx)
	if len(got) != MaxSnapshots {
		t.Fatalf("history = %d entries, want %d", len(got), MaxSnapshots)
	}
	// Oldest entries dropped first: the first retained snapshot is day 35.
	if got[0].NetWorth != 35 {
		t.Fatalf("first retained = %d, want 35", got[0].NetWorth)
	}
	if got[len(got)-1].NetWorth != 399 {
		t.Fatalf("last retained = %d, want 399", got[len(got)-1].NetWorth)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("history not sorted ascending at %d", i)
		}
	}
}

func TestWindow(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()

	start := *now
	for i := 0; i < 10; i++ {
		*now = start.AddDate(0, 0, i*30)
		store.Save(ctx, snapshotWorth(core.Milliunits(i)))
	}

	got := store.Window(ctx, 3)
	if len(got) == 0 {
		t.Fatal("window is empty")
	}
	cutoff := now.AddDate(0, -3, 0)
	for _, snap := range got {
		if snap.Date.Before(cutoff) {
			t.Fatalf("snapshot %v older than cutoff %v", snap.Date, cutoff)
		}
	}
}

func TestClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, snapshotWorth(1000))
	store.Clear(ctx)

	if got := store.History(ctx); len(got) != 0 {
		t.Fatalf("history after clear = %d entries", len(got))
	}
}

func TestCorruptStorageReadsEmpty(t *testing.T) {
	storage := memory.New()
	if err := storage.Write(context.Background(), []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	store := NewStore(storage)
	if got := store.History(context.Background()); got != nil {
		t.Fatalf("expected empty history, got %d entries", len(got))
	}
}

func TestFailingStorageIsSwallowed(t *testing.T) {
	store := NewStore(failingStorage{})
	ctx := context.Background()

	// None of these may panic or surface an error.
	store.Save(ctx, snapshotWorth(1000))
	store.Clear(ctx)
	if got := store.History(ctx); len(got) != 0 {
		t.Fatalf("history = %d entries", len(got))
	}
}

func TestNilStorage(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	store.Save(ctx, snapshotWorth(1000))
	store.Clear(ctx)
	if got := store.History(ctx); len(got) != 0 {
		t.Fatalf("history = %d entries", len(got))
	}
	if got := store.Window(ctx, 12); len(got) != 0 {
		t.Fatalf("window = %d entries", len(got))
	}
}
