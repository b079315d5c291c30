// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package callstore holds the append-only call log.
//
// The store is the only stateful piece of the service besides the load
// catalog. Entries are created once via Append and never mutated or
// deleted; a completed append is visible to every subsequent read. Two
// backends implement the same contract: an in-memory slice (default) and
// a BadgerDB store for deployments that want the log to survive restarts.
// The metrics aggregator reads through the Store interface and does not
// care which backend is underneath.
package callstore

import (
	"context"
	"time"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/google/uuid"
)

// Store is the append-only call log contract.
type Store interface {
	// Append stores the entry, assigning its ID and CreatedAt, and
	// returns the stored form.
	Append(ctx context.Context, entry datatypes.CallLogEntry) (datatypes.CallLogEntry, error)

	// All returns every entry in insertion order.
	All(ctx context.Context) ([]datatypes.CallLogEntry, error)

	// Reversed returns every entry, most recent first.
	Reversed(ctx context.Context) ([]datatypes.CallLogEntry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Close releases backend resources.
	Close() error
}

// stamp fills in the insert-time fields on a new entry.
func stamp(entry datatypes.CallLogEntry) datatypes.CallLogEntry {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.NumRounds == "" {
		entry.NumRounds = "0"
	}
	return entry
}

func reversed(entries []datatypes.CallLogEntry) []datatypes.CallLogEntry {
	out := make([]datatypes.CallLogEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
