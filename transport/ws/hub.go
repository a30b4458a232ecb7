// Package ws fans lifecycle events out to connected websocket observers.
//
// Every event is a JSON envelope {"type": <topic>, "data": <payload>}. Clients
// receive all topics until they send a subscribe message naming the topics they
// want. A client whose send buffer is full is dropped; there is no redelivery.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
	sendBuffer     = 256
	hubBuffer      = 256
)

// Client message types.
const (
	MessageJoinRide  = "joinRide"
	MessageSubscribe = "subscribe"
)

type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	topic   string
	payload []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type Hub struct {
	clients    map[string]*Client
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan outbound, hubBuffer),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is done. Remaining clients are disconnected on exit.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)

			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()

			log.Info().Msg("websocket hub stopped")

			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

			log.Debug().Str("client_id", client.ID).Msg("websocket client connected")

		case client := <-h.unregister:
			h.remove(client)

			log.Debug().Str("client_id", client.ID).Msg("websocket client disconnected")

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.send)
	}
}

func (h *Hub) deliver(msg outbound) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		if !client.accepts(msg.topic) {
			continue
		}

		select {
		case client.send <- msg.payload:
		default:
			log.Warn().Str("client_id", id).Str("topic", msg.topic).Msg("websocket client too slow, dropping")
			close(client.send)
			delete(h.clients, id)
		}
	}
}

// Publish queues an event for every interested client. It never blocks; a full
// queue drops the event.
func (h *Hub) Publish(topic string, data any) error {
	payload, err := json.Marshal(Envelope{Type: topic, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}

	select {
	case h.broadcast <- outbound{topic: topic, payload: payload}:
	default:
		log.Error().Str("topic", topic).Msg("websocket broadcast queue full, event dropped")
	}

	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// ServeWS upgrades the request and starts the client pumps. No authentication is required.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		hub:    h,
		topics: map[string]struct{}{},
		rides:  map[string]struct{}{},
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()

		return
	}

	go client.writePump()
	go client.readPump()
}

// Client is one websocket connection.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub

	mu     sync.RWMutex
	topics map[string]struct{}
	rides  map[string]struct{}
}

// accepts reports whether the client wants topic. No subscription means everything.
func (c *Client) accepts(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.topics) == 0 {
		return true
	}

	_, ok := c.topics[topic]

	return ok
}

func (c *Client) subscribe(topics []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.topics = make(map[string]struct{}, len(topics))
	for _, t := range topics {
		c.topics[t] = struct{}{}
	}
}

func (c *Client) joinRide(bookingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rides[bookingID] = struct{}{}
}

func (c *Client) inRide(bookingID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.rides[bookingID]

	return ok
}

func (c *Client) handle(msg inbound) error {
	switch msg.Type {
	case MessageJoinRide:
		var bookingID string
		if err := json.Unmarshal(msg.Data, &bookingID); err != nil {
			return fmt.Errorf("invalid joinRide payload: %w", err)
		}

		c.joinRide(bookingID)
	case MessageSubscribe:
		var topics []string
		if err := json.Unmarshal(msg.Data, &topics); err != nil {
			return fmt.Errorf("invalid subscribe payload: %w", err)
		}

		c.subscribe(topics)
	default:
		log.Debug().Str("client_id", c.ID).Str("type", msg.Type).Msg("ignoring websocket message")
	}

	return nil
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}

		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.ID).Msg("websocket read failed")
			}

			return
		}

		var msg inbound
		if err = json.Unmarshal(raw, &msg); err != nil {
			log.Warn().Err(err).Str("client_id", c.ID).Msg("malformed websocket message")

			continue
		}

		if err = c.handle(msg); err != nil {
			log.Warn().Err(err).Str("client_id", c.ID).Str("type", msg.Type).Msg("failed to handle websocket message")
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
