package game

import (
	"encoding/json"
	"errors"
	"net/http"
	neturl "net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// Net wraps the websocket: one reader goroutine feeding a buffered inbox
// channel, writes serialized behind a mutex. The game loop drains inCh on
// its own thread, so everything past the channel is single-threaded.
type Net struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan protocol.MsgEnvelope
	closed bool
}

func NewNet(wsURL string) (*Net, error) {
	logging.L.Infow("ws dial", "url", wsURL)

	dialer := websocket.Dialer{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		Proxy: func(*http.Request) (*neturl.URL, error) {
			return nil, nil // disable proxies
		},
	}

	c, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		logging.L.Warnw("ws dial failed", "err", err)
		return nil, err
	}

	n := &Net{conn: c, inCh: make(chan protocol.MsgEnvelope, 128)}
	go n.reader()
	return n, nil
}

func (n *Net) reader() {
	for {
		_, data, err := n.conn.ReadMessage()
		if err != nil {
			logging.L.Infow("ws read closed", "err", err)
			n.mu.Lock()
			n.closed = true
			n.conn = nil
			n.mu.Unlock()
			close(n.inCh)
			return
		}
		var m protocol.MsgEnvelope
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		n.inCh <- m
	}
}

// Send wraps v into a {type,data} envelope and writes it out.
func (n *Net) Send(t string, v interface{}) error {
	n.mu.Lock()
	if n.closed || n.conn == nil {
		n.mu.Unlock()
		return errors.New("net: write on closed")
	}
	c := n.conn
	n.mu.Unlock()

	b, _ := json.Marshal(struct {
		Type string      `json:"type"`
		Data interface{} `json:"data"`
	}{Type: t, Data: v})

	if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
		logging.L.Warnw("ws write failed", "type", t, "err", err)
		n.mu.Lock()
		n.closed = true
		n.conn = nil
		n.mu.Unlock()
		return err
	}
	return nil
}

// IsClosed reports whether Close() was called or the connection died.
func (n *Net) IsClosed() bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Close closes the websocket and marks the Net as closed.
func (n *Net) Close() error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	c := n.conn
	n.conn = nil
	n.mu.Unlock()

	var err error
	if c != nil {
		err = c.Close()
	}
	return err
}
