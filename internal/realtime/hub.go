package realtime

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Debug().Err(err).Msg("Fehler beim Senden über WebSocket")
	}
}

// clientMessage sind die vom Browser gesendeten Steuer-Nachrichten.
type clientMessage struct {
	Action    string `json:"action"`
	ProjectID string `json:"project_id"`
}

// Hub verwaltet WebSocket-Verbindungen und ihre Raum-Mitgliedschaften und
// leitet über Redis Pub/Sub empfangene Ereignisse an die passenden Räume weiter.
type Hub struct {
	rdb *redis.Client

	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:   rdb,
		rooms: make(map[string]map[*client]struct{}),
	}
}

// Run abonniert den Ereignis-Kanal und verteilt eingehende Ereignisse,
// bis der Kontext beendet wird.
func (h *Hub) Run(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warn().Err(err).Msg("Ungültiges Ereignis auf dem Pub/Sub-Kanal")
				continue
			}
			h.broadcast(event, []byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(event Event, payload []byte) {
	h.mu.RLock()
	members := make([]*client, 0, len(h.rooms[event.Room]))
	for c := range h.rooms[event.Room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		c.send(payload)
	}
}

func (h *Hub) join(c *client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*client]struct{})
	}
	h.rooms[room][c] = struct{}{}
}

func (h *Hub) leave(c *client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) removeAll(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// HandleConn betreut eine Verbindung bis zum Schließen. Der Client wird
// automatisch in seinen Benutzer-Raum eingetragen und kann über join/leave
// Nachrichten Projekt-Räume betreten und verlassen.
func (h *Hub) HandleConn(conn *websocket.Conn, userID string) {
	c := &client{conn: conn}
	h.join(c, UserRoom(userID))
	defer h.removeAll(c)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Action {
		case "join:project":
			if msg.ProjectID != "" {
				h.join(c, ProjectRoom(msg.ProjectID))
			}
		case "leave:project":
			if msg.ProjectID != "" {
				h.leave(c, ProjectRoom(msg.ProjectID))
			}
		}
	}
}
