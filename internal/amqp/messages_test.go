package amqp

import "testing"

func TestSnapshotMessageRoundTrip(t *testing.T) {
	msg := NewSnapshotMessage("2026-06-01", 1_400_000)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	got, err := SnapshotMessageFromJSON(body)
	if err != nil {
		t.Fatal(err)
	}
	if got.Day != "2026-06-01" || got.NetWorth != 1_400_000 {
		t.Fatalf("got %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestSnapshotMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := SnapshotMessageFromJSON([]byte("{")); err == nil {
		t.Fatal("expected error")
	}
}
