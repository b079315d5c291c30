// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/gin-gonic/gin"
)

// HandleLogCall serves POST /calls/log: the voice agent reports each
// call's outcome here at hang-up. The entry is appended to the store,
// fanned out to live dashboard subscribers, and optionally recorded in
// the time-series sink. Feed and sink may be nil.
func HandleLogCall(store callstore.Store, feed *callstore.Feed,
	sink observability.CallOutcomeSink, metrics *observability.Metrics) gin.HandlerFunc {

	return func(c *gin.Context) {
		var entry datatypes.CallLogEntry
		if err := c.ShouldBindJSON(&entry); err != nil {
			metrics.RecordRequest("log_call", "error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		stored, err := store.Append(c.Request.Context(), entry)
		if err != nil {
			slog.Error("Failed to append call log entry", "error", err, "carrier_mc", entry.CarrierMC)
			metrics.RecordRequest("log_call", "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store call log entry"})
			return
		}

		if feed != nil {
			feed.Publish(stored)
		}
		if sink != nil {
			// Best-effort: a slow time-series backend must not stall
			// call logging. The sink applies its own write timeout.
			go sink.Record(context.WithoutCancel(c.Request.Context()), stored)
		}

		count, err := store.Count(c.Request.Context())
		if err != nil {
			slog.Error("Failed to count call log entries", "error", err)
			count = 0
		}

		slog.Info("Call logged",
			"carrier_mc", stored.CarrierMC,
			"outcome", stored.Outcome,
			"sentiment", stored.Sentiment,
			"stored_calls", count)
		metrics.RecordRequest("log_call", "ok")
		metrics.RecordCallLogged(string(stored.Outcome))

		c.JSON(http.StatusOK, gin.H{"status": "ok", "stored_calls": count})
	}
}
