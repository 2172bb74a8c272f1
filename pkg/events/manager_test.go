package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient upgrades connections through a real HTTP server so the full
// read/write path is exercised.
func dialTestClient(t *testing.T, m *ConnectionManager) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		m.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionEstablished(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)

	msg := readMessage(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])

	require.Eventually(t, func() bool {
		return m.ActiveConnections() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSubscribeAndBroadcast(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)
	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("s1")})
	confirm := readMessage(t, conn)
	assert.Equal(t, "subscription.confirmed", confirm["type"])
	assert.Equal(t, "session:s1", confirm["channel"])

	m.BroadcastToSession("s1", map[string]any{"type": "stage.started", "stage_name": "analysis"})

	msg := readMessage(t, conn)
	assert.Equal(t, "stage.started", msg["type"])
	assert.Equal(t, "analysis", msg["stage_name"])
}

func TestGlobalChannelReceivesAllSessions(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: AllSessionsChannel})
	readMessage(t, conn) // confirmation

	m.BroadcastToSession("s1", map[string]any{"type": "session.completed", "session_id": "s1"})
	m.BroadcastToSession("s2", map[string]any{"type": "session.failed", "session_id": "s2"})

	first := readMessage(t, conn)
	second := readMessage(t, conn)
	assert.Equal(t, "s1", first["session_id"])
	assert.Equal(t, "s2", second["session_id"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("s1")})
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: SessionChannel("s1")})
	// Unsubscribe sends no confirmation; ping/pong serves as the barrier.
	writeMessage(t, conn, ClientMessage{Action: "ping"})
	pong := readMessage(t, conn)
	require.Equal(t, "pong", pong["type"])

	m.Broadcast(SessionChannel("s1"), []byte(`{"type":"stage.started"}`))

	// The next message is another pong, not the broadcast.
	writeMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestClientErrors(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe"})
	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg["type"])

	writeMessage(t, conn, ClientMessage{Action: "launch"})
	msg = readMessage(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "unknown action", msg["message"])
}

func TestDisconnectCleansUp(t *testing.T) {
	m := NewConnectionManager(time.Second)
	conn := dialTestClient(t, m)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: SessionChannel("s1")})
	readMessage(t, conn)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return m.ActiveConnections() == 0
	}, 5*time.Second, 10*time.Millisecond)

	// Broadcasting to the dead subscription must not panic.
	m.Broadcast(SessionChannel("s1"), []byte(`{}`))
}
