// Package hud 通过 WebSocket 把对局快照推送给外部观察者
//
// 桌面版和无头版都可以挂载，客户端连接到 /hud 后
// 先收到最近一帧快照，之后每次 Publish 收到一帧 JSON 文本消息。
package hud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gonewx/horde/pkg/game"
	"github.com/gorilla/websocket"
)

const (
	// Path 推送端点
	Path = "/hud"

	sendBuffer   = 16
	writeTimeout = 2 * time.Second
)

// Frame 推送给客户端的一帧消息
type Frame struct {
	Type     string        `json:"type"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// client 一个已连接的观察者
// 发送队列满时丢弃新帧，慢客户端不会阻塞模拟
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server HUD 推送服务
type Server struct {
	addr     string
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte

	httpServer *http.Server
	listener   net.Listener
}

// NewServer 创建推送服务，调用 Start 后开始监听
func NewServer(addr string) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler 返回挂载了 /hud 的 HTTP 处理器
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveWS)
	return mux
}

// Start 开始监听并在后台处理连接
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[HUD] server stopped: %v", err)
		}
	}()
	log.Printf("[HUD] Streaming snapshots on ws://%s%s", ln.Addr(), Path)
	return nil
}

// Addr 返回实际监听地址，未启动时返回配置的地址
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Publish 向所有客户端推送一帧快照
func (s *Server) Publish(snap game.Snapshot) {
	data, err := json.Marshal(Frame{Type: "snapshot", Snapshot: snap})
	if err != nil {
		log.Printf("[HUD] failed to encode snapshot: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Clients 返回当前连接数
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close 断开所有客户端并停止监听
func (s *Server) Close() error {
	s.mu.Lock()
	for c := range s.clients {
		s.removeLocked(c)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HUD server: %w", err)
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HUD] upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	if s.latest != nil {
		c.send <- s.latest
	}
	s.mu.Unlock()
	log.Printf("[HUD] client connected from %s", r.RemoteAddr)

	go c.writePump()
	c.readPump()

	s.mu.Lock()
	s.removeLocked(c)
	s.mu.Unlock()
	log.Printf("[HUD] client %s disconnected", r.RemoteAddr)
}

// removeLocked 注销客户端并关闭其发送队列，调用方持有 s.mu
func (s *Server) removeLocked(c *client) {
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
	_ = c.conn.Close()
}

// readPump 只读不处理，用于感知断开
func (c *client) readPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			_ = c.conn.Close()
			return
		}
	}
}
