package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, hub *Hub, url string, want int) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() == want }, time.Second, 10*time.Millisecond)

	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))

	return env
}

func onlyClient(t *testing.T, hub *Hub) *Client {
	t.Helper()

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	require.Len(t, hub.clients, 1)

	for _, c := range hub.clients {
		return c
	}

	return nil
}

func TestHub_BroadcastsToEveryClient(t *testing.T) {
	hub, url := startHub(t)

	first := dial(t, hub, url, 1)
	second := dial(t, hub, url, 2)

	require.NoError(t, hub.Publish("cycleStatusUpdate", map[string]any{"place": "Library", "cycle": "Cycle 1", "available": false}))

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		assert.Equal(t, "cycleStatusUpdate", env["type"])
		assert.Equal(t, map[string]any{"place": "Library", "cycle": "Cycle 1", "available": false}, env["data"])
	}
}

func TestHub_SubscribeFiltersTopics(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, hub, url, 1)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": MessageSubscribe, "data": []string{"rideStopped"}}))

	client := onlyClient(t, hub)
	require.Eventually(t, func() bool { return !client.accepts("rideStarted") }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish("rideStarted", map[string]string{"booking_id": "b-1"}))
	require.NoError(t, hub.Publish("rideStopped", map[string]string{"booking_id": "b-1"}))

	env := readEnvelope(t, conn)
	assert.Equal(t, "rideStopped", env["type"])
}

func TestHub_JoinRide(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, hub, url, 1)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": MessageJoinRide, "data": "booking-1"}))

	client := onlyClient(t, hub)
	assert.Eventually(t, func() bool { return client.inRide("booking-1") }, time.Second, 10*time.Millisecond)
	assert.True(t, client.accepts("newBooking"))
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, hub, url, 1)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestClient_Handle(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		wantErr bool
	}{
		{name: "subscribe", msg: `{"type":"subscribe","data":["newBooking"]}`},
		{name: "join ride", msg: `{"type":"joinRide","data":"booking-1"}`},
		{name: "unknown type ignored", msg: `{"type":"ping"}`},
		{name: "bad subscribe payload", msg: `{"type":"subscribe","data":"newBooking"}`, wantErr: true},
		{name: "bad join payload", msg: `{"type":"joinRide","data":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{topics: map[string]struct{}{}, rides: map[string]struct{}{}}

			var msg inbound
			require.NoError(t, json.Unmarshal([]byte(tt.msg), &msg))

			err := client.handle(msg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for range hubBuffer + 10 {
			_ = hub.Publish("newBooking", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked without a running hub")
	}
}
