package transport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WSConfig configures a WebSocket transport.
type WSConfig struct {
	// URL is the engine's WebSocket endpoint (ws:// or wss://).
	URL string

	// ReadTimeout bounds the wait for one inbound message.
	// Default: 60s.
	ReadTimeout time.Duration

	// WriteTimeout bounds one outbound write. Default: 10s.
	WriteTimeout time.Duration

	// Logger receives connection diagnostics.
	// Default: slog.Default() with component=transport.
	Logger *slog.Logger
}

// WS carries editorlink messages over a WebSocket connection, one binary
// frame per message. The WebSocket frame layer provides the message
// boundaries the protocol requires.
type WS struct {
	conn         *websocket.Conn
	logger       *slog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration

	// writeMu serializes writers; gorilla allows one concurrent writer.
	writeMu sync.Mutex

	closeOnce sync.Once
}

// DialWS connects to the engine's WebSocket endpoint.
func DialWS(ctx context.Context, cfg WSConfig) (*WS, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "transport")
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 60 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	return &WS{
		conn:         conn,
		logger:       logger,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}, nil
}

// Transmit sends one message as a binary frame.
func (w *WS) Transmit(p []byte) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	return w.conn.WriteMessage(websocket.BinaryMessage, p)
}

// ReadLoop reads inbound messages and hands each complete one to sink.
// It blocks until the connection closes or a read fails, and returns the
// terminating error (nil on a clean peer close).
func (w *WS) ReadLoop(sink func([]byte)) error {
	for {
		w.conn.SetReadDeadline(time.Now().Add(w.readTimeout))

		kind, msg, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				return nil
			}
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				w.logger.Error("read error", "error", err)
			}
			return err
		}
		if kind != websocket.BinaryMessage {
			w.logger.Warn("ignoring non-binary message", "type", kind)
			continue
		}

		sink(msg)
	}
}

// Close closes the connection after attempting a normal close handshake.
func (w *WS) Close() error {
	var err error
	w.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		w.writeMu.Lock()
		w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		w.writeMu.Unlock()
		err = w.conn.Close()
	})
	return err
}
