package signal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	router "github.com/dvelts/pairchat/internal/adapters/http"
	"github.com/dvelts/pairchat/internal/app"
	"github.com/dvelts/pairchat/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Mode:       "release",
		StaticPath: t.TempDir(),
		ReadLimit:  32768,
		PingPeriod: 54 * time.Second,
		SendBuffer: 32,
		Secret:     "test-secret",
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv := httptest.NewServer(router.SetupRouter(ctx, cfg, app.New()))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// readUntil skips interleaved frames (acks, pongs) until one of the wanted
// type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %q: %v", typ, err)
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("bad frame %q: %v", data, err)
		}
		if m["type"] == typ {
			return m
		}
	}
}

func register(t *testing.T, conn *websocket.Conn, identity string) {
	t.Helper()
	sendJSON(t, conn, map[string]any{"type": "register", "identity": identity})
	ev := readUntil(t, conn, "registered")
	if ev["userId"] != identity {
		t.Fatalf("registered userId = %v, want %s", ev["userId"], identity)
	}
}

func TestWS_FullScenario(t *testing.T) {
	srv := newTestServer(t)
	alice := dial(t, srv)
	bob := dial(t, srv)

	register(t, alice, "alice")
	register(t, bob, "bob")

	sendJSON(t, alice, map[string]any{"type": "connect-request", "fromId": "alice", "toId": "bob"})
	invite := readUntil(t, bob, "incoming-invite")
	if invite["fromId"] != "alice" {
		t.Fatalf("invite fromId = %v, want alice", invite["fromId"])
	}
	inviteID, _ := invite["inviteId"].(string)
	if inviteID == "" {
		t.Fatal("inviteId is empty")
	}

	sendJSON(t, bob, map[string]any{"type": "accept", "fromId": "alice", "toId": "bob", "inviteId": inviteID})
	aliceConnected := readUntil(t, alice, "connected")
	bobConnected := readUntil(t, bob, "connected")
	if aliceConnected["roomId"] != bobConnected["roomId"] {
		t.Fatalf("room ids differ: %v vs %v", aliceConnected["roomId"], bobConnected["roomId"])
	}
	if aliceConnected["a"] != "alice" || aliceConnected["b"] != "bob" {
		t.Fatalf("connected = %v, want a=alice b=bob", aliceConnected)
	}
	roomID := aliceConnected["roomId"]

	sendJSON(t, alice, map[string]any{"type": "message", "roomId": roomID, "senderId": "alice", "text": "hi"})
	msg := readUntil(t, bob, "message")
	if msg["text"] != "hi" || msg["senderId"] != "alice" {
		t.Fatalf("message = %v", msg)
	}
	if ts, ok := msg["ts"].(float64); !ok || ts <= 0 {
		t.Fatalf("message ts = %v, want a positive number", msg["ts"])
	}

	sendJSON(t, alice, map[string]any{"type": "typing", "roomId": roomID, "userId": "alice", "isTyping": true})
	typing := readUntil(t, bob, "typing")
	if typing["isTyping"] != true {
		t.Fatalf("typing = %v", typing)
	}

	sendJSON(t, bob, map[string]any{"type": "leave", "roomId": roomID, "userId": "bob"})
	ended := readUntil(t, alice, "ended")
	if ended["reason"] != "left" {
		t.Fatalf("ended reason = %v, want left", ended["reason"])
	}
}

func TestWS_DisconnectTearsDownRoom(t *testing.T) {
	srv := newTestServer(t)
	alice := dial(t, srv)
	bob := dial(t, srv)

	register(t, alice, "alice")
	register(t, bob, "bob")

	sendJSON(t, alice, map[string]any{"type": "connect-request", "fromId": "alice", "toId": "bob"})
	invite := readUntil(t, bob, "incoming-invite")
	sendJSON(t, bob, map[string]any{"type": "accept", "fromId": "alice", "toId": "bob", "inviteId": invite["inviteId"]})
	readUntil(t, bob, "connected")

	_ = alice.Close()

	ended := readUntil(t, bob, "ended")
	if ended["reason"] != "disconnect" {
		t.Fatalf("ended reason = %v, want disconnect", ended["reason"])
	}
}

func TestWS_BusyTargetGetsNoInvite(t *testing.T) {
	srv := newTestServer(t)
	alice := dial(t, srv)
	bob := dial(t, srv)
	carol := dial(t, srv)

	register(t, alice, "alice")
	register(t, bob, "bob")
	register(t, carol, "carol")

	sendJSON(t, alice, map[string]any{"type": "connect-request", "fromId": "alice", "toId": "bob"})
	invite := readUntil(t, bob, "incoming-invite")
	sendJSON(t, bob, map[string]any{"type": "accept", "fromId": "alice", "toId": "bob", "inviteId": invite["inviteId"]})
	readUntil(t, bob, "connected")

	sendJSON(t, carol, map[string]any{"type": "connect-request", "fromId": "carol", "toId": "bob"})
	pushed := readUntil(t, carol, "connect-error")
	if pushed["code"] != "BUSY" {
		t.Fatalf("connect-error = %v, want BUSY", pushed)
	}
	ack := readUntil(t, carol, "ack")
	if ack["ok"] != false || ack["code"] != "BUSY" {
		t.Fatalf("ack = %v, want ok=false code=BUSY", ack)
	}

	// bob must not have been bothered: next frame he receives is the reply
	// to his own ping, not an invite.
	sendJSON(t, bob, map[string]any{"type": "ping"})
	deadline := time.Now().Add(2 * time.Second)
	_ = bob.SetReadDeadline(deadline)
	_, data, err := bob.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("bad frame %q: %v", data, err)
	}
	if m["type"] != "pong" {
		t.Fatalf("bob received %v, want only a pong", m)
	}
}

func TestWS_RegisterAck(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv)

	sendJSON(t, conn, map[string]any{"type": "register", "identity": ""})
	ack := readUntil(t, conn, "ack")
	if ack["op"] != "register" || ack["ok"] != false || ack["code"] != "INVALID" {
		t.Fatalf("ack = %v, want op=register ok=false code=INVALID", ack)
	}
}

func TestWS_MalformedFrameIsIgnored(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	// The connection survives and still serves requests.
	sendJSON(t, conn, map[string]any{"type": "ping"})
	readUntil(t, conn, "pong")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
