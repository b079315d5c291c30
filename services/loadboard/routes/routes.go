// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/AcmeLogistics/loadboard/services/loadboard/handlers"
	"github.com/AcmeLogistics/loadboard/services/loadboard/middleware"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/AcmeLogistics/loadboard/services/loadboard/search"
	"github.com/gin-gonic/gin"
)

// Deps holds everything the route tree needs. FMCSA and Sink may be nil
// when the corresponding keys are not configured; Feed may be nil to
// disable the live dashboard stream.
type Deps struct {
	Search         *search.Engine
	Store          callstore.Store
	Feed           *callstore.Feed
	FMCSA          handlers.CarrierValidator
	Sink           observability.CallOutcomeSink
	Metrics        *observability.Metrics
	APIKey         string
	AllowedOrigins []string
}

// SetupRoutes wires the loadboard API onto the router. Everything except
// /health sits behind the x-api-key check; CORS headers are emitted for
// the dashboard origins.
func SetupRoutes(router *gin.Engine, deps Deps) {
	router.Use(middleware.CORS(deps.AllowedOrigins))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/", middleware.APIKeyAuth(deps.APIKey))
	{
		api.GET("/loads/search", handlers.HandleSearchLoads(deps.Search, deps.Metrics))
		api.POST("/negotiation/evaluate", handlers.HandleEvaluateNegotiation(deps.Metrics))
		api.POST("/carrier/validate", handlers.HandleValidateCarrier(deps.FMCSA, deps.Metrics))

		api.POST("/calls/log", handlers.HandleLogCall(deps.Store, deps.Feed, deps.Sink, deps.Metrics))
		api.GET("/metrics/summary", handlers.HandleMetricsSummary(deps.Store, deps.Metrics))
		api.GET("/metrics/calls", handlers.HandleListCalls(deps.Store, deps.Metrics))
	}

	// Browsers cannot set headers on WebSocket connections, so the live
	// feed also accepts the key as a query parameter.
	if deps.Feed != nil {
		router.GET("/calls/ws",
			middleware.APIKeyAuthWebSocket(deps.APIKey),
			handlers.HandleCallFeed(deps.Feed))
	}
}
