// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package middleware provides HTTP middleware for the loadboard service.
//
// Every request from the voice platform carries a shared static key in
// the x-api-key header. The auth middleware fails closed: when the server
// key was never configured, all requests are rejected with a 500 rather
// than letting traffic through unauthenticated.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header the voice platform sends its key in.
const APIKeyHeader = "x-api-key"

// APIKeyQueryParam carries the key for WebSocket connections, where the
// browser API cannot set custom headers.
const APIKeyQueryParam = "api_key"

// APIKeyAuth creates middleware that checks the x-api-key header against
// the configured key. Comparison is constant-time so the key cannot be
// probed byte by byte.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkAPIKey(c, apiKey, c.GetHeader(APIKeyHeader))
	}
}

// APIKeyAuthWebSocket checks the x-api-key header and falls back to the
// api_key query parameter for browser WebSocket clients.
func APIKeyAuthWebSocket(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			provided = c.Query(APIKeyQueryParam)
		}
		checkAPIKey(c, apiKey, provided)
	}
}

func checkAPIKey(c *gin.Context, apiKey, provided string) {
	if apiKey == "" {
		// Fail closed if we forgot to set it.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "INTERNAL_API_KEY not configured on server",
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or missing API key",
		})
		return
	}

	c.Next()
}
