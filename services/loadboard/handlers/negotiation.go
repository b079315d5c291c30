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

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/AcmeLogistics/loadboard/services/loadboard/negotiation"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/gin-gonic/gin"
)

// HandleEvaluateNegotiation serves POST /negotiation/evaluate. A
// non-positive loadboard rate is a valid request answered with a reject,
// not a 400; only a malformed body is a client error.
func HandleEvaluateNegotiation(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.NegotiationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.RecordRequest("negotiate", "error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		resp := negotiation.Evaluate(req.LoadboardRate, req.CarrierOffer, req.RoundNumber)

		slog.Info("Negotiation evaluated",
			"loadboard_rate", req.LoadboardRate,
			"carrier_offer", req.CarrierOffer,
			"round_number", req.RoundNumber,
			"decision", resp.Decision)
		metrics.RecordRequest("negotiate", "ok")
		metrics.RecordDecision(string(resp.Decision))

		c.JSON(http.StatusOK, resp)
	}
}
