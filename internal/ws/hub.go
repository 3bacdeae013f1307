package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/metrics"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const TypeInterestsSynced = "interests.synced"

const writeWait = 10 * time.Second

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Conn is the part of *websocket.Conn the hub writes through.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client serialises writes to one socket; gorilla allows a single writer.
type client struct {
	conn Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans messages out to every open socket of a student. Socket writes
// never hold mu.
type Hub struct {
	mu       sync.Mutex
	students map[string]map[Conn]*client
	logger   zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		students: make(map[string]map[Conn]*client),
		logger:   logger.With().Str("component", "ws").Logger(),
	}
}

func (h *Hub) AddConnection(studentID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.students[studentID] == nil {
		h.students[studentID] = make(map[Conn]*client)
	}
	if _, ok := h.students[studentID][conn]; ok {
		return
	}
	h.students[studentID][conn] = &client{conn: conn}
	metrics.WSConnections.Inc()
	h.logger.Debug().Str("student_id", studentID).Int("open", len(h.students[studentID])).Msg("client connected")
}

func (h *Hub) RemoveConnection(studentID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(studentID, conn)
}

// drop must be called with mu held.
func (h *Hub) drop(studentID string, conn Conn) {
	conns, ok := h.students[studentID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; !ok {
		return
	}
	delete(conns, conn)
	conn.Close()
	metrics.WSConnections.Dec()
	if len(conns) == 0 {
		delete(h.students, studentID)
	}
	h.logger.Debug().Str("student_id", studentID).Msg("client disconnected")
}

// Notify writes message to all of the student's sockets. Sockets that fail
// the write are closed and forgotten.
func (h *Hub) Notify(studentID string, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().Err(err).Str("type", message.Type).Msg("marshal message")
		return
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.students[studentID]))
	for _, c := range h.students[studentID] {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.logger.Warn().Err(err).Str("student_id", studentID).Msg("write failed")
			h.RemoveConnection(studentID, c.conn)
		}
	}
}

func (h *Hub) Connections(studentID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.students[studentID])
}
