// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package callstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/dgraph-io/badger/v4"
)

// callKeyPrefix namespaces call log keys inside the database.
const callKeyPrefix = "call/"

// BadgerStore is the durable call log backend. Entries are JSON values
// keyed by a zero-padded sequence number so Badger's key order is the
// insertion order. A mutex serializes appends; the sequence is recovered
// from the existing keys at open.
type BadgerStore struct {
	db *badger.DB

	mu  sync.Mutex
	seq uint64
}

// badgerLogger adapts slog to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}
func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (or creates) the durable call log at path.
func OpenBadger(path string, logger *slog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithSyncWrites(true)
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	} else {
		opts = opts.WithLogger(nil)
	}
	return openBadger(opts)
}

// OpenBadgerInMemory opens a throwaway call log with no disk persistence.
// Used by tests.
func OpenBadgerInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open call log database: %w", err)
	}
	s := &BadgerStore{db: db}
	if err := s.recoverSequence(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// recoverSequence scans the existing keys so new appends continue the
// insertion order after a restart.
func (s *BadgerStore) recoverSequence() error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(callKeyPrefix)
		var n uint64
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		s.seq = n
		return nil
	})
}

func callKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", callKeyPrefix, seq))
}

func (s *BadgerStore) Append(_ context.Context, entry datatypes.CallLogEntry) (datatypes.CallLogEntry, error) {
	stored := stamp(entry)
	value, err := json.Marshal(stored)
	if err != nil {
		return datatypes.CallLogEntry{}, fmt.Errorf("failed to encode call entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(callKey(s.seq+1), value)
	})
	if err != nil {
		return datatypes.CallLogEntry{}, fmt.Errorf("failed to append call entry: %w", err)
	}
	s.seq++
	return stored, nil
}

func (s *BadgerStore) All(_ context.Context) ([]datatypes.CallLogEntry, error) {
	var entries []datatypes.CallLogEntry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(callKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var e datatypes.CallLogEntry
				if err := json.Unmarshal(val, &e); err != nil {
					return fmt.Errorf("failed to decode call entry: %w", err)
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BadgerStore) Reversed(ctx context.Context) ([]datatypes.CallLogEntry, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return reversed(all), nil
}

func (s *BadgerStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.seq), nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
