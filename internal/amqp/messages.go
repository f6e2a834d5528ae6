package amqp

import (
	"encoding/json"
	"time"
)

// SnapshotMessage announces that a net-worth snapshot was captured for a
// calendar day. It carries only the day key and headline numbers; the export
// worker loads the full snapshot from the history store.
type SnapshotMessage struct {
	Day       string    `json:"day"` // YYYY-MM-DD
	NetWorth  int64     `json:"net_worth"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSnapshotMessage creates a message for the given day and net worth.
func NewSnapshotMessage(day string, netWorth int64) *SnapshotMessage {
	return &SnapshotMessage{
		Day:       day,
		NetWorth:  netWorth,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SnapshotMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotMessageFromJSON creates a message from JSON bytes
func SnapshotMessageFromJSON(data []byte) (*SnapshotMessage, error) {
	var msg SnapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
