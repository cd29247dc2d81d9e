package ws_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"shipping/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	hub      Hub
	upgrader websocket.Upgrader
}

func New(log handlerLogger, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	h.hub.Subscribe(userID, conn)
	defer func() {
		h.hub.Unsubscribe(userID, conn)
		_ = conn.Close()
	}()

	// The connection is push-only. Reading keeps ping/pong and close
	// frames flowing until the client goes away.
	for {
		_, _, err = conn.ReadMessage()
		if err != nil {
			return
		}
	}
}
