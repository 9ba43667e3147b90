package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smart-auction/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The platform is served behind its own origin; the gateway enforces auth.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// inbound is what a client sends: room membership changes keyed by auction id.
type inbound struct {
	Type      string `json:"type"` // "joinAuction" or "leaveAuction"
	AuctionID string `json:"auctionId"`
}

// outbound is one fan-out frame delivered to room members.
type outbound struct {
	Event     string `json:"event"`
	AuctionID string `json:"auctionId"`
	Data      any    `json:"data,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	mu     sync.Mutex
	rooms  map[string]struct{}
	closed bool
}

// trySend queues the frame unless the client is closed. Reports false
// when the buffer is full. The send channel is never closed; queuing is
// gated on the closed flag instead, so a broadcast racing a teardown
// cannot send on a closed channel.
func (c *client) trySend(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Hub tracks which websocket clients are watching which auction and
// implements events.Emitter by broadcasting into the auction's room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{} // key: auctionID
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*client]struct{}),
	}
}

// Emit broadcasts the event to every client joined to the auction's room.
// Slow clients are evicted rather than blocking the caller.
func (h *Hub) Emit(auctionID, event string, payload any) {
	frame, err := json.Marshal(outbound{Event: event, AuctionID: auctionID, Data: payload})
	if err != nil {
		utils.Error("hub: marshal event", map[string]any{
			"auction_id": auctionID,
			"event":      event,
			"error":      err.Error(),
		})
		return
	}

	h.mu.RLock()
	members := make([]*client, 0, len(h.rooms[auctionID]))
	for c := range h.rooms[auctionID] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		if !c.trySend(frame) {
			h.drop(c)
		}
	}
}

// RoomSize returns the number of clients joined to an auction's room.
func (h *Hub) RoomSize(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[auctionID])
}

func (h *Hub) join(c *client, auctionID string) {
	h.mu.Lock()
	room, ok := h.rooms[auctionID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[auctionID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	c.mu.Lock()
	c.rooms[auctionID] = struct{}{}
	c.mu.Unlock()
}

func (h *Hub) leave(c *client, auctionID string) {
	h.mu.Lock()
	if room, ok := h.rooms[auctionID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, auctionID)
		}
	}
	h.mu.Unlock()

	c.mu.Lock()
	delete(c.rooms, auctionID)
	c.mu.Unlock()
}

// drop removes the client from every room and signals writePump to
// exit. Safe to call twice: the reader and a slow broadcast can race here.
func (h *Hub) drop(c *client) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	joined := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		joined = append(joined, id)
	}
	c.rooms = make(map[string]struct{})
	c.mu.Unlock()

	h.mu.Lock()
	for _, id := range joined {
		if room, ok := h.rooms[id]; ok {
			delete(room, c)
			if len(room) == 0 {
				delete(h.rooms, id)
			}
		}
	}
	h.mu.Unlock()

	close(c.done)
}

// ServeWS handles GET /ws: upgrades the connection and pumps room
// membership messages and outbound events.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("hub: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	cl := &client{
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		done:  make(chan struct{}),
		rooms: make(map[string]struct{}),
	}

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.drop(c)
		c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil || msg.AuctionID == "" {
			continue
		}

		switch msg.Type {
		case "joinAuction":
			h.join(c, msg.AuctionID)
		case "leaveAuction":
			h.leave(c, msg.AuctionID)
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
