package sse

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Homestead_Go/internal/logger"
)

// SessionChecker reports whether a session exists
type SessionChecker interface {
	Exists(ctx context.Context, sessionID string) bool
}

// Handler streams one session's game events. The session id comes from the
// {id} route parameter; ?types=a,b narrows the stream.
func Handler(hub *Hub, sessions SessionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sessionID := chi.URLParam(r, "id")
		if sessionID == "" || !sessions.Exists(r.Context(), sessionID) {
			http.Error(w, "game session not found", http.StatusNotFound)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(sessionID, eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			logger.AttrKeySessionID, sessionID,
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(w, flusher, evt) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, SessionID: sessionID, Timestamp: time.Now().Unix()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		logger.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
