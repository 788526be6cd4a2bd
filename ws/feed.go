package ws

import (
	"net/http"
	"sync"

	"github.com/aisyahz/tepico88/metrics"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event kinds delivered on a table feed.
const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

const TablePreorders = "preorders"

// Event is one change on a table, pushed to every subscriber of that table.
type Event struct {
	Type  string `json:"type"`
	Table string `json:"table"`
	Row   any    `json:"row"`
}

// FeedHub fans table change events out to subscribed websocket clients. Each
// connection subscribes to exactly one table; delivery order per subscription
// follows publish order. It replaces the polling a storefront and management
// page would otherwise do to keep their order lists live.
type FeedHub struct {
	clients    map[string]map[*websocket.Conn]bool // table -> connections
	broadcast  chan Event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        *zap.SugaredLogger
}

type subscription struct {
	conn  *websocket.Conn
	table string
}

func NewFeedHub(log *zap.SugaredLogger) *FeedHub {
	return &FeedHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.table] == nil {
				h.clients[sub.table] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.table][sub.conn] = true
			h.mu.Unlock()
			metrics.FeedClients.Inc()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.table][sub.conn]; ok {
				delete(h.clients[sub.table], sub.conn)
				sub.conn.Close()
				metrics.FeedClients.Dec()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[evt.Table] {
				if err := conn.WriteJSON(evt); err != nil {
					h.log.Warnw("feed write failed", "table", evt.Table, "err", err)
					conn.Close()
					delete(h.clients[evt.Table], conn)
					metrics.FeedClients.Dec()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues one event for every subscriber of the table.
func (h *FeedHub) Publish(table, kind string, row any) {
	h.broadcast <- Event{Type: kind, Table: table, Row: row}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/preorders (?table= overrides, preorders by default)
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	table := c.DefaultQuery("table", TablePreorders)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("feed upgrade failed", "err", err)
		return
	}

	sub := subscription{conn: conn, table: table}
	h.register <- sub

	go h.waitForClose(sub)
}

// Subscribers only listen; reads are drained until the connection drops, at
// which point the subscription is released.
func (h *FeedHub) waitForClose(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
