// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package callstore

import (
	"sync"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/google/uuid"
)

// feedBuffer is the per-subscriber channel depth. A dashboard that falls
// further behind than this misses entries rather than blocking appends.
const feedBuffer = 64

// Feed fans appended call entries out to live dashboard subscribers.
// Publishing never blocks: slow subscribers drop entries.
type Feed struct {
	mu   sync.Mutex
	subs map[string]chan datatypes.CallLogEntry
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[string]chan datatypes.CallLogEntry)}
}

// Subscribe registers a new subscriber and returns its id and channel.
// The channel is closed on Unsubscribe.
func (f *Feed) Subscribe() (string, <-chan datatypes.CallLogEntry) {
	id := uuid.NewString()
	ch := make(chan datatypes.CallLogEntry, feedBuffer)
	f.mu.Lock()
	f.subs[id] = ch
	f.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (f *Feed) Unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

// Publish delivers the entry to every subscriber that has room.
func (f *Feed) Publish(entry datatypes.CallLogEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- entry:
		default:
		}
	}
}
