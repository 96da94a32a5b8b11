package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/statusgraph/pkg/chart"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	// Hover generates a focus event per pointer move; relaying every one
	// to every client is wasteful. The limiter drops excess relays, which
	// is harmless since each focus event fully replaces the last.
	focusRelayRate  = 30
	focusRelayBurst = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(_ *http.Request) bool { return true },
}

// wsEvent is the envelope relayed to websocket clients.
type wsEvent struct {
	Topic string      `json:"topic"`
	Event interface{} `json:"event"`
}

// Hub relays the page bus's zoom and focus events to connected websocket
// clients so browser-side chart mirrors stay in step with the server.
type Hub struct {
	mu      sync.Mutex
	page    *chart.Page
	clients map[*client]struct{}
	limiter *rate.Limiter
	done    chan struct{}
	once    sync.Once
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub for one page.
func NewHub(page *chart.Page) *Hub {
	initMetrics()

	return &Hub{
		page:    page,
		clients: make(map[*client]struct{}),
		limiter: rate.NewLimiter(rate.Limit(focusRelayRate), focusRelayBurst),
		done:    make(chan struct{}),
	}
}

// Run subscribes the hub to the page bus. Zoom events always relay;
// focus events are rate limited.
func (h *Hub) Run() {
	h.page.Bus().SubscribeZoom(func(ev models.ZoomEvent) {
		busPublishes.WithLabelValues("zoom").Inc()
		h.broadcast(wsEvent{Topic: "zoom", Event: ev})
	})

	h.page.Bus().SubscribeFocus(func(ev models.FocusEvent) {
		busPublishes.WithLabelValues("focus").Inc()

		// Only move updates are droppable: each one fully replaces the
		// last. A clear event must always go out or clients keep a stale
		// marker.
		if ev.Active && !h.limiter.Allow() {
			return
		}

		h.broadcast(wsEvent{Topic: "focus", Event: ev})
	})
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.once.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}

	wsClients.Set(0)
}

// ServeWS upgrades an HTTP request to a websocket client connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	wsClients.Set(float64(count))

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) broadcast(ev wsEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Error marshaling ws event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Slow client; drop it rather than block the bus turn.
			close(c.send)
			delete(h.clients, c)
		}
	}

	wsClients.Set(float64(len(h.clients)))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		close(c.send)
		delete(h.clients, c)
	}

	wsClients.Set(float64(len(h.clients)))
}

// wsCommand is the only inbound message type: a window change request
// from the browser's duration controls.
type wsCommand struct {
	Action   string `json:"action"`
	Duration string `json:"duration,omitempty"`
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd wsCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			continue
		}

		if cmd.Action != "window" {
			continue
		}

		var d time.Duration

		if cmd.Duration != "" {
			parsed, err := time.ParseDuration(cmd.Duration)
			if err != nil {
				continue
			}

			d = parsed
		}

		h.page.SetWindow(d)
		windowChanges.Inc()
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-h.done:
			return
		}
	}
}
