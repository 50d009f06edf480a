package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgQuizAttached      MessageType = "quiz_attached"
	MsgActiveChanged     MessageType = "active_changed"
	MsgParticipantJoined MessageType = "participant_joined"
	MsgParticipantLeft   MessageType = "participant_left"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per codespace. Admins hold at most one
// connection per code; participants are keyed by user id.
type Hub struct {
	adminConns       map[string]*Connection
	participantConns map[string]map[string]*Connection // code -> userID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage

	logger *zerolog.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	Code    string
	UserID  string
	IsAdmin bool
	Send    chan []byte
	Hub     *Hub
}

// BroadcastMessage is a message to fan out
type BroadcastMessage struct {
	Code    string
	ToAdmin bool
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub(logger *zerolog.Logger) *Hub {
	h := &Hub{
		adminConns:       make(map[string]*Connection),
		participantConns: make(map[string]map[string]*Connection),
		register:         make(chan *Connection),
		unregister:       make(chan *Connection),
		broadcast:        make(chan *BroadcastMessage, 256),
		logger:           logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsAdmin {
				h.adminConns[conn.Code] = conn
				h.logger.Debug().Str("code", conn.Code).Msg("admin connected")
			} else {
				if h.participantConns[conn.Code] == nil {
					h.participantConns[conn.Code] = make(map[string]*Connection)
				}
				h.participantConns[conn.Code][conn.UserID] = conn
				h.logger.Debug().Str("code", conn.Code).Str("userId", conn.UserID).Msg("participant connected")

				h.notifyAdmin(conn.Code, MsgParticipantJoined, conn.UserID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsAdmin {
				if existing, ok := h.adminConns[conn.Code]; ok && existing == conn {
					delete(h.adminConns, conn.Code)
					close(conn.Send)
				}
			} else {
				if participants, ok := h.participantConns[conn.Code]; ok {
					if existing, ok := participants[conn.UserID]; ok && existing == conn {
						delete(participants, conn.UserID)
						close(conn.Send)

						h.notifyAdmin(conn.Code, MsgParticipantLeft, conn.UserID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToAdmin {
				if conn, ok := h.adminConns[msg.Code]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				if participants, ok := h.participantConns[msg.Code]; ok {
					for _, conn := range participants {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// QuizAttached tells participants a quiz is now attached (implements service.Notifier)
func (h *Hub) QuizAttached(code, quizID string) {
	h.broadcastEvent(code, MsgQuizAttached, map[string]string{"quizId": quizID})
}

// ActiveChanged tells participants the activity flag flipped (implements service.Notifier)
func (h *Hub) ActiveChanged(code string, active bool) {
	h.broadcastEvent(code, MsgActiveChanged, map[string]bool{"active": active})
}

func (h *Hub) broadcastEvent(code string, msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		Code: code,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// notifyAdmin is called with h.mu held.
func (h *Hub) notifyAdmin(code string, msgType MessageType, userID string) {
	if conn, ok := h.adminConns[code]; ok {
		data, _ := json.Marshal(&Message{
			Type:    msgType,
			Payload: json.RawMessage(`{"userId":"` + userID + `"}`),
		})
		select {
		case conn.Send <- data:
		default:
		}
	}
}
