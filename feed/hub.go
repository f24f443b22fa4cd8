package feed

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/lixenwraith/vamp-arena/event"
)

const (
	sendBuffer   = 32
	writeTimeout = 2 * time.Second
)

// Message is one JSON frame sent to spectators
type Message struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Tick    int64  `json:"tick,omitempty"`
	Client  string `json:"client,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

type client struct {
	id   string
	send chan Message
}

// Hub fans loop events out to websocket spectators
// Spectators are read-only, anything they send is discarded
type Hub struct {
	session string

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	sent    atomic.Int64
	dropped atomic.Int64
}

// NewHub creates a hub tagging every message with session
func NewHub(session string) *Hub {
	return &Hub{
		session: session,
		clients: make(map[*client]struct{}),
	}
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stats returns sent message and dropped client counts
func (h *Hub) Stats() (sent, dropped int64) {
	return h.sent.Load(), h.dropped.Load()
}

// EventTypes implements event.Handler
func (h *Hub) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHUD, event.EventPauseChanged, event.EventGameOver,
		event.EventUpgradeChoices, event.EventWaveStarted, event.EventBossSpawned,
		event.EventLevelUp,
	}
}

// HandleEvent implements event.Handler
func (h *Hub) HandleEvent(ev event.GameEvent) {
	h.Broadcast(Message{
		Type:    ev.Type.String(),
		Session: h.session,
		Tick:    ev.Tick,
		Payload: ev.Payload,
	})
}

// Broadcast queues msg for every client without blocking
// A client whose buffer is full is disconnected
func (h *Hub) Broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
			h.sent.Add(1)
		default:
			h.removeLocked(c)
			h.dropped.Add(1)
			log.Printf("feed: dropped slow client %s", c.id)
		}
	}
}

// Close disconnects all clients and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Hub) add() *client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	c := &client{id: uuid.NewString(), send: make(chan Message, sendBuffer)}
	h.clients[c] = struct{}{}
	return c
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeHTTP upgrades the request and streams messages until either side leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		return
	}

	c := h.add()
	if c == nil {
		conn.Close(websocket.StatusGoingAway, "feed closed")
		return
	}
	defer h.remove(c)

	ctx := conn.CloseRead(r.Context())

	hello := Message{Type: "hello", Session: h.session, Client: c.id}
	if err := h.write(ctx, conn, hello); err != nil {
		conn.CloseNow()
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.CloseNow()
			return
		case msg, ok := <-c.send:
			if !ok {
				if h.isClosed() {
					conn.Close(websocket.StatusGoingAway, "feed closed")
				} else {
					conn.Close(websocket.StatusPolicyViolation, "disconnected")
				}
				return
			}
			if err := h.write(ctx, conn, msg); err != nil {
				conn.CloseNow()
				return
			}
		}
	}
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, msg)
}
