package api

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huanchong-99/Go-Home/pkg/logger"
)

// sseClient represents one connected event-stream consumer.
type sseClient struct {
	id       string
	messages chan sseMessage
}

type sseMessage struct {
	event string
	data  []byte
}

// sseHub fans planning progress out to every connected client.
type sseHub struct {
	clients    map[string]*sseClient
	register   chan *sseClient
	unregister chan *sseClient
	broadcast  chan sseMessage
	mu         sync.RWMutex
}

func newSSEHub() *sseHub {
	return &sseHub{
		clients:    make(map[string]*sseClient),
		register:   make(chan *sseClient),
		unregister: make(chan *sseClient),
		broadcast:  make(chan sseMessage, 256),
	}
}

func (h *sseHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("SSE client connected", "client", client.id, "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.messages)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("SSE client disconnected", "client", client.id, "total", total)

		case message := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.messages <- message:
				default:
					// Client's channel is full, skip this message
				}
			}
			h.mu.RUnlock()
		}
	}
}

func writeSSEMessage(w io.Writer, msg sseMessage) error {
	if msg.event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", msg.event); err != nil {
			return err
		}
	}

	// SSE allows multiple `data:` lines; split to be safe.
	data := strings.TrimRight(string(msg.data), "\n")
	if data == "" {
		_, err := io.WriteString(w, "data: \n\n")
		return err
	}

	for _, line := range strings.Split(data, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// streamEvents returns the SSE handler. Clients receive every
// progress and log event the planner emits, tagged with the run id,
// plus a ping every 15 seconds so proxies keep the connection open.
func streamEvents(hub *sseHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

		client := &sseClient{
			id:       uuid.NewString(),
			messages: make(chan sseMessage, 64),
		}
		hub.register <- client
		defer func() {
			hub.unregister <- client
		}()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					select {
					case client.messages <- sseMessage{event: "ping", data: []byte("{}")}:
					default:
					}
				}
			}
		}()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-ctx.Done():
				return false
			case msg, ok := <-client.messages:
				if !ok {
					return false
				}
				if err := writeSSEMessage(w, msg); err != nil {
					return false
				}
				c.Writer.Flush()
				return true
			}
		})
	}
}
