// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// CallOutcomeSink receives each appended call log entry for time-series
// reporting. Sinks are best-effort: failures are logged, never surfaced
// to the caller that logged the call.
type CallOutcomeSink interface {
	Record(ctx context.Context, entry datatypes.CallLogEntry)
	Close()
}

// InfluxSink writes call outcomes to InfluxDB as points in the
// call_outcomes measurement, tagged by outcome and sentiment.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// InfluxConfig connects the sink to an InfluxDB instance.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// NewInfluxSink builds a sink for the given InfluxDB instance.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}
}

// Record writes one call outcome point.
func (s *InfluxSink) Record(ctx context.Context, entry datatypes.CallLogEntry) {
	fields := map[string]interface{}{
		"rounds": entry.RoundCount(),
	}
	if rate, ok := entry.FinalRateValue(); ok {
		fields["final_rate"] = rate
	}
	if entry.CallDurationSeconds != nil {
		fields["duration_seconds"] = *entry.CallDurationSeconds
	}

	point := influxdb2.NewPoint(
		"call_outcomes",
		map[string]string{
			"outcome":   string(entry.Outcome),
			"sentiment": string(entry.Sentiment),
		},
		fields,
		entry.CreatedAt,
	)

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.writeAPI.WritePoint(writeCtx, point); err != nil {
		slog.Warn("Failed to write call outcome to InfluxDB", "error", err, "entry_id", entry.ID)
	}
}

// Close releases the underlying InfluxDB client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
