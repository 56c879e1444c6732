package ws_session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/travisksimons/vibe-check-movies/internal/model"
)

const (
	messageJoinSession  = "join_session"
	messageLeaveSession = "leave_session"

	sendBuffer = 16
)

// wsMessage is what clients send over the socket to pick a session.
type wsMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte

	// Guarded by Hub.mu. A client follows at most one session at a time.
	sessionID model.SessionID
}

type Hub struct {
	mu sync.RWMutex

	// Keep track of sets of clients within each session
	sessions map[model.SessionID]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[model.SessionID]map[*Client]bool),
		logger:   logger,
	}
}

func (h *Hub) Subscribe(client *Client, sessionID model.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(client)
	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[*Client]bool)
	}
	h.sessions[sessionID][client] = true
	client.sessionID = sessionID

	h.logger.Info("client subscribed", "session_id", sessionID)
}

func (h *Hub) Unsubscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(client)
	h.logger.Info("client unsubscribed")
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(client)
	close(client.Send)
}

// detach drops the client from whatever session it follows. Caller holds mu.
func (h *Hub) detach(client *Client) {
	if client.sessionID == model.EmptySessionID {
		return
	}
	if set, ok := h.sessions[client.sessionID]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(h.sessions, client.sessionID)
		}
	}
	client.sessionID = model.EmptySessionID
}

// Publish fans an event out to every client following the session. Events are
// best-effort: a client whose send buffer is full misses this one rather than
// stalling the rest of the party.
func (h *Hub) Publish(sessionID model.SessionID, event model.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	raw, _ := json.Marshal(event)

	if clients, ok := h.sessions[sessionID]; ok {
		for client := range clients {
			select {
			case client.Send <- raw:
			default:
			}
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case messageJoinSession:
			if msg.SessionID != "" {
				h.Subscribe(client, model.SessionID(msg.SessionID))
			}
		case messageLeaveSession:
			h.Unsubscribe(client)
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
