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
	"time"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/gin-gonic/gin"
)

// CarrierValidator resolves an MC number to a normalized authority record.
// Satisfied by *fmcsa.Client; tests inject stubs.
type CarrierValidator interface {
	GetCarrierInfo(ctx context.Context, mcNumber string) datatypes.CarrierInfo
}

// HandleValidateCarrier serves POST /carrier/validate.
//
// Lookup outcomes travel as data: "not_found" and "inactive" records come
// back 200 so the agent can speak the reason to the caller. Only an
// upstream "error" status becomes a 502, and a missing web key is a 500
// because the deployment, not the carrier, is at fault.
func HandleValidateCarrier(client CarrierValidator, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			metrics.RecordRequest("validate", "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "FMCSA_API_KEY not configured on the server"})
			return
		}

		var req datatypes.CarrierValidationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.RecordRequest("validate", "error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "mc_number is required"})
			return
		}
		if err := req.Validate(); err != nil {
			metrics.RecordRequest("validate", "error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "mc_number must be digits with an optional MC prefix"})
			return
		}

		start := time.Now()
		info := client.GetCarrierInfo(c.Request.Context(), req.MCNumber)
		metrics.RecordCarrierLookup(info.Status, time.Since(start).Seconds())

		if info.Status == "error" {
			slog.Error("FMCSA lookup failed", "mc_number", req.MCNumber, "reason", info.Reason)
			metrics.RecordRequest("validate", "error")
			c.JSON(http.StatusBadGateway, gin.H{"error": info.Reason})
			return
		}

		slog.Info("Carrier validated", "mc_number", info.MCNumber, "status", info.Status)
		metrics.RecordRequest("validate", "ok")
		c.JSON(http.StatusOK, info)
	}
}
