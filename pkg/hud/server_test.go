package hud

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/horde/pkg/game"
	"github.com/gorilla/websocket"
)

func dialHUD(t *testing.T, s *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + Path

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("invalid frame %q: %v", data, err)
	}
	return f
}

func TestPublishReachesClient(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	conn, closeFn := dialHUD(t, s)
	defer closeFn()

	s.Publish(game.Snapshot{Score: 420, Wave: 5, Boss: "base", BossHP: 75})

	f := readFrame(t, conn)
	if f.Type != "snapshot" {
		t.Errorf("frame type = %q, want snapshot", f.Type)
	}
	if f.Snapshot.Score != 420 || f.Snapshot.Wave != 5 || f.Snapshot.Boss != "base" || f.Snapshot.BossHP != 75 {
		t.Errorf("unexpected snapshot: %+v", f.Snapshot)
	}
}

func TestLatestSnapshotSentOnConnect(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	s.Publish(game.Snapshot{Score: 7})

	conn, closeFn := dialHUD(t, s)
	defer closeFn()

	if f := readFrame(t, conn); f.Snapshot.Score != 7 {
		t.Errorf("expected latest snapshot on connect, got %+v", f.Snapshot)
	}
}

// TestSlowClientDoesNotBlock 不读取消息的客户端不会阻塞 Publish
func TestSlowClientDoesNotBlock(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	_, closeFn := dialHUD(t, s)
	defer closeFn()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5000; i++ {
			s.Publish(game.Snapshot{Score: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Publish blocked on a slow client")
	}
}

func TestCloseDisconnectsClients(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	conn, closeFn := dialHUD(t, s)
	defer closeFn()

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if s.Clients() != 0 {
		t.Errorf("expected no clients after Close, got %d", s.Clients())
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected read error after server close")
	}
}
