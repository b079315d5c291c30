// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AcmeLogistics/loadboard/services/loadboard/callmetrics"
	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/gin-gonic/gin"
)

// HandleMetricsSummary serves GET /metrics/summary: the aggregate view
// over every logged call.
func HandleMetricsSummary(store callstore.Store, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		calls, err := store.All(c.Request.Context())
		if err != nil {
			slog.Error("Failed to read call log", "error", err)
			metrics.RecordRequest("summary", "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read call log"})
			return
		}

		metrics.RecordRequest("summary", "ok")
		c.JSON(http.StatusOK, callmetrics.Summarize(calls))
	}
}

// HandleListCalls serves GET /metrics/calls: raw call log entries, most
// recent first, for the dashboard table.
func HandleListCalls(store callstore.Store, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		calls, err := store.Reversed(c.Request.Context())
		if err != nil {
			slog.Error("Failed to read call log", "error", err)
			metrics.RecordRequest("list_calls", "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read call log"})
			return
		}

		metrics.RecordRequest("list_calls", "ok")
		c.JSON(http.StatusOK, calls)
	}
}
