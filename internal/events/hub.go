package events

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard SPA is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub streams bus events to websocket clients. Each connection gets its own
// bus subscription; closing the socket cancels it.
type Hub struct {
	bus *Bus
}

func NewHub(bus *Bus) *Hub {
	return &Hub{bus: bus}
}

// Serve upgrades the request and forwards change events until the client
// disconnects. Topics can be narrowed with repeated ?topics= params;
// the default is all topics.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[events][hub] upgrade failed err=%v", err)
		return
	}

	var topics []Topic
	for _, raw := range c.QueryArray("topics") {
		topics = append(topics, Topic(raw))
	}

	ch, cancel := h.bus.Subscribe(topics...)
	log.Printf("[events][hub] client connected remote=%s topics=%d", conn.RemoteAddr(), len(topics))

	done := make(chan struct{})
	go readUntilClosed(conn, done)
	go h.writePump(conn, ch, cancel, done)
}

// readUntilClosed drains client frames so close/pong control messages are
// processed; the feed is one-directional.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[events][hub] read error err=%v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, ch <-chan Event, cancel func(), done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		_ = conn.Close()
	}()

	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				log.Printf("[events][hub] marshal failed err=%v", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
