// Package relay carries stream packets between a Sender and a Receiver
// running in separate processes, over a WebSocket connection, standing in
// for the camera/display pair when both ends are just processes.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server pairs the first sender connection and first receiver connection
// that arrive for a given stream id, then pumps binary frames from the
// sender's socket to the receiver's socket.
type Server struct {
	mu     sync.Mutex
	waitFn map[string]chan *websocket.Conn
}

// NewServer returns a Server ready to register as an http.Handler.
func NewServer() *Server {
	return &Server{waitFn: make(map[string]chan *websocket.Conn)}
}

// ServeHTTP upgrades the request to a WebSocket and routes it by role:
// "/relay/{id}/send" registers as the sender side, "/relay/{id}/recv" as
// the receiver side. Once both arrive for the same id, frames flow
// sender -> receiver until either side closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, role, ok := parsePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("relay upgrade failed", "err", err)
		return
	}

	switch role {
	case "send":
		s.pairSender(id, conn)
	case "recv":
		s.pairReceiver(id, conn)
	default:
		conn.Close()
	}
}

func (s *Server) waitChan(id string) chan *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.waitFn[id]
	if !ok {
		ch = make(chan *websocket.Conn, 1)
		s.waitFn[id] = ch
	}
	return ch
}

func (s *Server) pairSender(id string, sender *websocket.Conn) {
	defer sender.Close()
	receiver := <-s.waitChan(id)
	defer receiver.Close()
	pump(sender, receiver)
}

func (s *Server) pairReceiver(id string, receiver *websocket.Conn) {
	ch := s.waitChan(id)
	select {
	case ch <- receiver:
		// the sender side will close the receiver connection when done
	default:
		slog.Warn("relay: receiver already waiting for stream id", "id", id)
		receiver.Close()
	}
}

// pump reads binary messages from src and writes them verbatim to dst
// until src closes or a write fails.
func pump(src, dst *websocket.Conn) {
	for {
		msgType, data, err := src.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if err := dst.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return
		}
	}
}

func parsePath(path string) (id, role string, ok bool) {
	var rest string
	if n, err := fmt.Sscanf(path, "/relay/%s", &rest); err != nil || n != 1 {
		return "", "", false
	}
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] == '/' {
			return rest[:i], rest[i+1:], true
		}
	}
	return "", "", false
}

// Client dials a relay server as either a sender or a receiver for one
// stream id.
type Client struct {
	conn *websocket.Conn
}

// DialSend connects to addr as the sending side of stream id.
func DialSend(ctx context.Context, addr, id string) (*Client, error) {
	return dial(ctx, addr, id, "send")
}

// DialRecv connects to addr as the receiving side of stream id.
func DialRecv(ctx context.Context, addr, id string) (*Client, error) {
	return dial(ctx, addr, id, "recv")
}

func dial(ctx context.Context, addr, id, role string) (*Client, error) {
	url := fmt.Sprintf("%s/relay/%s/%s", addr, id, role)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("relay: dial %s: %w", role, err)
	}
	return &Client{conn: conn}, nil
}

// Send writes one binary frame.
func (c *Client) Send(data []byte) error {
	if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("relay: send: %w", err)
	}
	return nil
}

// Recv blocks for the next binary frame.
func (c *Client) Recv() ([]byte, error) {
	msgType, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("relay: recv: %w", err)
	}
	if msgType != websocket.BinaryMessage {
		return c.Recv()
	}
	return data, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
