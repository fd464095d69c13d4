package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"locallens/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// The admin dashboard subscribes to one stream of site events (new
// enquiries, quote requests).
const AdminRoom = "admin"

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Event is what subscribers receive.
type Event struct {
	Kind      string      `json:"kind"` // "enquiry", "quote"
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Publish broadcasts an event to the admin stream. Marshal failures are
// logged and dropped; notifications are best effort.
func (h *Hub) Publish(kind string, payload interface{}) {
	data, err := json.Marshal(Event{Kind: kind, Payload: payload, Timestamp: time.Now().Unix()})
	if err != nil {
		log.Println("notify: marshal event:", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{Room: AdminRoom, Data: data}:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades an admin connection and streams events to it.
// Upgrade requests skip the Authorization-header check in Authenticate, so
// the token arrives as ?token= (or a Bearer header) and is validated here
// before the connection is upgraded.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if _, err := middleware.ValidateJWT("Bearer " + token); err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			Room: AdminRoom,
		}
		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// dropClient hands a disconnecting client back to the hub, or gives up
// when the hub has already stopped.
func (h *Hub) dropClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// readPump only watches for the connection closing; subscribers never send.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.dropClient(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
