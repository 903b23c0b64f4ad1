package web

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	keyBufSize     = 16
)

// Session runs one game for one websocket connection. The game is only
// touched by the Run goroutine; the read pump hands keys over a channel.
type Session struct {
	id       string
	conn     *websocket.Conn
	game     *snake.Game
	rec      *Recorder
	keys     chan core.Key
	tickRate int
	logger   *log.Logger

	frames uint64
	last   []byte // Last frame sent, to skip unchanged frames
}

// NewSession creates a session and its game.
func NewSession(id string, conn *websocket.Conn, cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Loop.TickRate
	}
	rt.ScreenW, rt.ScreenH = cfg.Web.Width, cfg.Web.Height

	rec := NewRecorder()
	game, err := snake.New(rec, cfg, rt, snake.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &Session{
		id:       id,
		conn:     conn,
		game:     game,
		rec:      rec,
		keys:     make(chan core.Key, keyBufSize),
		tickRate: rt.TickRate,
		logger:   logger,
	}, nil
}

// Run drives the game until ctx is done or the connection fails.
// It closes the connection before returning.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	go s.readPump(ctx, cancel)

	frames := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer frames.Stop()
	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()

	for {
		select {
		case <-ctx.Done():
			s.close()
			s.logger.Debug("session closed", "session", s.id, "frames", s.frames)
			return nil

		case k := <-s.keys:
			s.game.OnKeyDown(k)

		case <-frames.C:
			if err := s.frame(); err != nil {
				return err
			}

		case <-pings.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("web: ping: %w", err)
			}
		}
	}
}

// frame runs one game frame and sends it if anything changed.
func (s *Session) frame() error {
	s.rec.Reset()
	if err := s.game.Update(); err != nil {
		return err
	}
	s.game.Draw()

	s.frames++
	data, err := EncodeFrame(&Frame{
		State: s.game.State().String(),
		Score: s.game.Score(),
		Ops:   s.rec.Ops(),
	})
	if err != nil {
		return fmt.Errorf("web: encode frame: %w", err)
	}

	if s.last != nil && bytes.Equal(data, s.last) {
		return nil
	}
	s.last = append(s.last[:0], data...)

	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("web: write frame: %w", err)
	}
	return nil
}

// readPump parses key messages until the connection closes.
func (s *Session) readPump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "session", s.id, "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		k := core.ParseDOMKey(string(msg))
		if !k.Recognized() {
			continue
		}
		select {
		case s.keys <- k:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) close() {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	//nolint:errcheck // Best-effort close frame
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
}
