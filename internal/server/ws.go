package server

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"braintrainer/internal/notify"
)

// handleWS upgrades the connection and streams progression events to the
// client until it disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	id := uuid.New().String()
	client := &notify.Client{ID: id, Conn: conn, Send: make(chan []byte, 16)}
	s.Hub.Register(client)
	defer s.Hub.Unregister(id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends anything meaningful; the read loop just
	// detects disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	client.WritePump(ctx)
	conn.Close(websocket.StatusNormalClosure, "")
}
