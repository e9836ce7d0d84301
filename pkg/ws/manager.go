package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one connected user socket.
type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Event is a single notification pushed to a user.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	CreatedAt string      `json:"created_at"`
}

// Event types emitted by the ledgers.
const (
	EventFriendRequest  = "friend_request"
	EventFriendAccepted = "friend_accepted"
	EventTripInvite     = "trip_invite"
	EventShareAccepted  = "trip_share_accepted"
	EventShareRevoked   = "trip_share_revoked"
)

// Manager tracks online user sockets. One connection per user; a new
// connection replaces the previous one.
type Manager struct {
	clients map[uint]*Client
	lock    sync.RWMutex
}

var manager = &Manager{
	clients: make(map[uint]*Client),
}

// GetManager returns the global connection manager.
func GetManager() *Manager {
	return manager
}

// AddClient registers a connection, closing any previous one for the user.
func (m *Manager) AddClient(userID uint, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if old, ok := m.clients[userID]; ok {
		close(old.Send)
	}
	m.clients[userID] = client
}

// RemoveClient drops a connection if it is still the registered one.
func (m *Manager) RemoveClient(userID uint, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[userID]; ok && c == client {
		close(c.Send)
		delete(m.clients, userID)
	}
}

// Notify pushes an event to a user if they are online. Offline users rely
// on the pending badge counters instead, so a miss is not an error.
func (m *Manager) Notify(userID uint, eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	m.lock.RLock()
	client, ok := m.clients[userID]
	m.lock.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- msg:
	default:
		// send buffer full, connection is likely dead
	}
}

// IsOnline reports whether the user has an open socket.
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}
