package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/config"
)

func startTestServer(t *testing.T) (*Server, *httptest.Server, string) {
	t.Helper()
	return startServerWith(t, DefaultServerConfig())
}

func startServerWith(t *testing.T, cfg ServerConfig) (*Server, *httptest.Server, string) {
	t.Helper()
	s := NewServer(cfg, config.DefaultSnakeConfig(), log.New(io.Discard))
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		srv.Close()
		s.stopSessions()
	})
	return s, srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

// waitSessions polls until the server runs n games.
func waitSessions(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Sessions() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Sessions = %d, expected %d", s.Sessions(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func dialWS(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial WS: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read WS: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("Expected binary frame, got type %d", msgType)
	}
	f, err := DecodeFrame(raw)
	if err != nil {
		t.Fatalf("msgpack unmarshal: %v", err)
	}
	return f
}

func TestIndexPage(t *testing.T) {
	_, srv, _ := startTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "<canvas") {
		t.Error("Index page should contain a canvas")
	}
}

func TestHealth(t *testing.T) {
	_, srv, _ := startTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("Status = %q, expected ok", body.Status)
	}
}

func TestFirstFrameIsTitle(t *testing.T) {
	_, _, wsURL := startTestServer(t)
	conn := dialWS(t, wsURL)

	f := readFrame(t, conn)
	if f.State != "title" {
		t.Errorf("State = %q, expected title", f.State)
	}
	if len(f.Ops) == 0 || f.Ops[0].Code != OpSize {
		t.Fatalf("First op should size the canvas, got %+v", f.Ops)
	}
	if a := f.Ops[0].Args; len(a) != 2 || a[0] != 575 || a[1] != 598 {
		t.Errorf("Canvas size = %v, expected 575x598", a)
	}

	var texts []string
	for _, op := range f.Ops {
		if op.Code == OpText {
			texts = append(texts, op.Str)
		}
	}
	if strings.Join(texts, "|") != "SNAKE|Press Spacebar to start." {
		t.Errorf("Title texts = %q", texts)
	}
}

func TestSpaceStartsGame(t *testing.T) {
	_, _, wsURL := startTestServer(t)
	conn := dialWS(t, wsURL)
	readFrame(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(" ")); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f := readFrame(t, conn); f.State == "play" {
			if f.Score != 0 {
				t.Errorf("Score = %d, expected 0", f.Score)
			}
			return
		}
	}
	t.Fatal("Game did not start after space")
}

func TestSessionsAreIndependent(t *testing.T) {
	s, _, wsURL := startTestServer(t)
	a := dialWS(t, wsURL)
	b := dialWS(t, wsURL)
	readFrame(t, a)
	readFrame(t, b)

	if n := s.Sessions(); n != 2 {
		t.Errorf("Sessions = %d, expected 2", n)
	}

	if err := a.WriteMessage(websocket.TextMessage, []byte("Spacebar")); err != nil {
		t.Fatalf("write: %v", err)
	}
	for readFrame(t, a).State != "play" {
	}

	// b sends nothing; its frames are unchanged so none arrive.
	b.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := b.ReadMessage(); err == nil {
		t.Error("Idle session should not receive duplicate frames")
	}
}

func TestMaxSessions(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.MaxSessions = 1
	s, _, wsURL := startServerWith(t, cfg)

	first := dialWS(t, wsURL)
	readFrame(t, first)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("Second game should be refused while the server is full")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("Refusal response = %v, expected 503", resp)
	}
	if n := s.Sessions(); n != 1 {
		t.Errorf("Sessions = %d after refusal, expected 1", n)
	}

	// Closing the first game frees its slot.
	first.Close()
	waitSessions(t, s, 0)
	readFrame(t, dialWS(t, wsURL))
}

func TestShutdownEndsGames(t *testing.T) {
	s := NewServer(DefaultServerConfig(), config.DefaultSnakeConfig(), log.New(io.Discard))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	wsURL := "ws://" + ln.Addr().String() + "/ws"
	a := dialWS(t, wsURL)
	b := dialWS(t, wsURL)
	readFrame(t, a)
	readFrame(t, b)
	waitSessions(t, s, 2)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	for i, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for {
			_, _, err := conn.ReadMessage()
			if err == nil {
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
				t.Errorf("Socket %d ended with %v, expected a going-away close frame", i, err)
			}
			break
		}
	}

	if n := s.Sessions(); n != 0 {
		t.Errorf("Sessions = %d after shutdown, expected 0", n)
	}
	if s.reserve() {
		t.Error("A stopped server should refuse new games")
	}
}

func TestSeededGamesMatch(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Seed = 42
	s, _, wsURL := startServerWith(t, cfg)
	if rt := s.runtimeConfig(); rt.Seed != 42 {
		t.Fatalf("Seed = %d, expected 42", rt.Seed)
	}

	foodOf := func(conn *websocket.Conn) []int {
		t.Helper()
		readFrame(t, conn)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(" ")); err != nil {
			t.Fatalf("write: %v", err)
		}
		for {
			f := readFrame(t, conn)
			if f.State != "play" {
				continue
			}
			// Food is the last blue rect drawn.
			var food []int
			blue := false
			for _, op := range f.Ops {
				switch op.Code {
				case OpFill:
					blue = op.Str == "blue"
				case OpRect:
					if blue {
						food = op.Args
					}
				}
			}
			return food
		}
	}

	a, b := foodOf(dialWS(t, wsURL)), foodOf(dialWS(t, wsURL))
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("Food rects %v and %v, expected x,y,w,h", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Seeded games placed food at %v and %v", a, b)
		}
	}
}
