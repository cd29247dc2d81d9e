// Package broadcast fans payment updates out to websocket subscribers.
// Delivery is best effort: a slow or broken connection is dropped, never
// allowed to block the payment flow.
package broadcast

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

const writeTimeout = 5 * time.Second

type Hub struct {
	log logger.Logger

	mu          sync.RWMutex
	subscribers map[int64]map[*websocket.Conn]struct{}
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:         log.With(logger.NewField("component", "broadcast")),
		subscribers: make(map[int64]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Subscribe(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subscribers[userID]
	if !ok {
		conns = make(map[*websocket.Conn]struct{})
		h.subscribers[userID] = conns
	}
	conns[conn] = struct{}{}
}

func (h *Hub) Unsubscribe(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subscribers[userID]
	if !ok {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.subscribers, userID)
	}
}

// SendPaymentUpdate pushes the update to every connection of the user.
// Connections that fail to accept the write are closed and removed.
func (h *Hub) SendPaymentUpdate(userID int64, update entities.PaymentUpdate) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[userID]))
	for conn := range h.subscribers[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := conn.WriteJSON(update)
		if err != nil {
			h.log.With(
				logger.NewField("user_id", userID),
				logger.NewField("error", err),
			).Warn("drop websocket subscriber")

			_ = conn.Close()
			h.Unsubscribe(userID, conn)
		}
	}
}
