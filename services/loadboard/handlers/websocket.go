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

	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking happens in the CORS middleware; the dashboard
		// connects from the same allowed origins.
		return true
	},
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
}

// HandleCallFeed serves GET /calls/ws: a live stream of call log entries
// as they are appended. Each connected dashboard gets its own subscriber
// channel; entries are written as JSON frames until the client hangs up.
func HandleCallFeed(feed *callstore.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("Failed to upgrade the websocket", "error", err)
			return
		}
		defer ws.Close()

		id, entries := feed.Subscribe()
		defer feed.Unsubscribe(id)
		slog.Info("Call feed client connected", "subscriber", id)

		// Read pump: the dashboard never sends data, but reading is how
		// gorilla surfaces the close frame.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				if err := ws.WriteJSON(entry); err != nil {
					slog.Info("Call feed client disconnected", "subscriber", id, "error", err)
					return
				}
			case <-closed:
				slog.Info("Call feed client disconnected", "subscriber", id)
				return
			}
		}
	}
}
