// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package callstore

import (
	"context"
	"sync"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
)

// MemoryStore keeps the call log in process memory. A single mutex
// serializes appends; reads return copies so callers cannot mutate the
// log.
type MemoryStore struct {
	mu      sync.Mutex
	entries []datatypes.CallLogEntry
}

// NewMemoryStore returns an empty in-memory call log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreSeeded returns an in-memory call log pre-populated with
// fixture entries, stamped as if appended now. Used by demos and tests.
func NewMemoryStoreSeeded(seed []datatypes.CallLogEntry) *MemoryStore {
	s := &MemoryStore{}
	for _, e := range seed {
		s.entries = append(s.entries, stamp(e))
	}
	return s
}

func (s *MemoryStore) Append(_ context.Context, entry datatypes.CallLogEntry) (datatypes.CallLogEntry, error) {
	stored := stamp(entry)
	s.mu.Lock()
	s.entries = append(s.entries, stored)
	s.mu.Unlock()
	return stored, nil
}

func (s *MemoryStore) All(_ context.Context) ([]datatypes.CallLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]datatypes.CallLogEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Reversed(ctx context.Context) ([]datatypes.CallLogEntry, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return reversed(all), nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), nil
}

func (s *MemoryStore) Close() error { return nil }
