// Package memory provides an in-process history.Storage, used in tests and
// when no durable medium is configured.
package memory

import (
	"context"
	"sync"
)

type Storage struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Read(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false, nil
	}
	out := append([]byte(nil), s.data...)
	return out, true, nil
}

func (s *Storage) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}

func (s *Storage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.set = false
	return nil
}
