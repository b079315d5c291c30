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

	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/AcmeLogistics/loadboard/services/loadboard/search"
	"github.com/gin-gonic/gin"
)

// SearchResponse wraps search results with their count for the voice
// platform.
type SearchResponse struct {
	Count int             `json:"count"`
	Loads []search.Result `json:"loads"`
}

// HandleSearchLoads serves GET /loads/search. origin and equipment_type
// are required query parameters; destination and pickup_datetime are
// optional filters.
func HandleSearchLoads(engine *search.Engine, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Query("origin")
		equipmentType := c.Query("equipment_type")
		if origin == "" || equipmentType == "" {
			metrics.RecordRequest("search", "error")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "origin and equipment_type are required",
			})
			return
		}

		params := search.Params{
			Origin:        origin,
			EquipmentType: equipmentType,
			Destination:   c.Query("destination"),
			PickupDate:    c.Query("pickup_datetime"),
		}
		results := engine.Search(params)

		slog.Info("Load search completed",
			"origin", origin,
			"equipment_type", equipmentType,
			"destination", params.Destination,
			"pickup_date", params.PickupDate,
			"matches", len(results))
		metrics.RecordRequest("search", "ok")
		metrics.RecordSearchResults(len(results))

		c.JSON(http.StatusOK, SearchResponse{Count: len(results), Loads: results})
	}
}
