package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"fundraise/internal/core/domain"
)

const writeWait = 10 * time.Second

// Hub is the notification sink for WebSocket observers. It implements
// port.Notifier for the usecase side and http.Handler for the subscription
// endpoint. Delivery is best-effort: a slow or dead subscriber is dropped,
// never blocking the operation that produced the event.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]*subscriber
}

// subscriber wraps a connection with a write mutex. gorilla/websocket
// permits at most one concurrent writer per connection, and Notify is
// called from concurrent request goroutines.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

// envelope is the wire frame sent to observers. The payload carries
// exactly the fields of the domain notification; Type demultiplexes.
type envelope struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	EmittedAt int64               `json:"emitted_at"`
	Payload   domain.Notification `json:"payload"`
}

// NewHub returns a hub with no subscribers.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed is public; origin checks belong to the deployment edge.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]*subscriber),
	}
}

// ServeHTTP upgrades the request to a WebSocket subscription. The read
// loop only drains control frames and unregisters the client on close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("events: upgrade failed", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = &subscriber{conn: conn}
	h.mu.Unlock()
	h.logger.Debug("events: subscriber connected",
		slog.String("remote", conn.RemoteAddr().String()),
		slog.Int("subscribers", h.subscriberCount()))

	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Notify broadcasts the event to every subscriber. Writes are serialized
// per connection, so concurrent broadcasts never interleave on the wire.
func (h *Hub) Notify(_ context.Context, n domain.Notification) {
	frame, err := json.Marshal(envelope{
		ID:        uuid.NewString(),
		Type:      n.Kind(),
		EmittedAt: time.Now().UnixMilli(),
		Payload:   n,
	})
	if err != nil {
		h.logger.Error("events: marshal envelope", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.clients))
	for _, sub := range h.clients {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.write(frame); err != nil {
			h.logger.Debug("events: dropping subscriber", slog.Any("error", err))
			h.drop(sub.conn)
		}
	}
}

// Close disconnects all subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// subscriberCount reports the number of connected observers.
func (h *Hub) subscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mu.Unlock()
}
