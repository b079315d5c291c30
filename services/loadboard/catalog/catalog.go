// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package catalog loads the load board CSV into an immutable in-memory
// collection at startup.
//
// The catalog never changes after Load returns: concurrent readers need no
// locking. If the CSV on disk is edited while the service runs, the
// optional watcher logs that the in-memory catalog is stale; a restart
// picks up the new file.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/fsnotify/fsnotify"
)

// Catalog is the immutable collection of load records.
type Catalog struct {
	loads []datatypes.Load
	path  string
}

// Load reads the load board CSV at path. The first row is the header;
// rows are keyed by column name, and any column may be absent or empty.
// Rows with the wrong field count are skipped with a warning rather than
// failing the whole catalog.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open load board file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, validated below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read load board header: %w", err)
	}

	var loads []datatypes.Load
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			slog.Warn("Skipping malformed load board row", "line", line, "error", err)
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		loads = append(loads, datatypes.NewLoad(row))
	}

	slog.Info("Loaded load board catalog", "path", path, "loads", len(loads))
	return &Catalog{loads: loads, path: path}, nil
}

// Loads returns the catalog contents. Callers must treat the slice as
// read-only.
func (c *Catalog) Loads() []datatypes.Load { return c.loads }

// Len returns the number of loads in the catalog.
func (c *Catalog) Len() int { return len(c.loads) }

// Path returns the CSV file the catalog was built from.
func (c *Catalog) Path() string { return c.path }

// Watch logs a warning whenever the source CSV changes on disk. The
// catalog itself is never reloaded; the warning tells operators a restart
// is needed. Watch blocks until ctx is done or the watcher fails.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file, which drops a
	// watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	target := filepath.Clean(c.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				slog.Warn("Load board file changed on disk; in-memory catalog is stale until restart",
					"path", c.path, "op", event.Op.String())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Catalog watcher error", "error", err)
		}
	}
}
