package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/auvet/auvet-backend/internal/domain/events"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/infrastructure/config"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub distribui eventos de funcionários para os clientes websocket conectados.
// Implementa ports.EventPublisher.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     ports.Logger

	mu    sync.RWMutex
	count int
}

// NewHub cria um Hub que aceita conexões das mesmas origens liberadas no CORS
func NewHub(logger ports.Logger, origins []string) *Hub {
	allowAll := config.AllowsAll(origins)

	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger.With("component", "realtime_hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowAll {
					return true
				}
				return slices.Contains(origins, origin)
			},
		},
	}
}

// Run processa registros e broadcasts até ctx ser cancelado
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.setCount(len(h.clients))
			h.logger.Debug("websocket client connected", "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.remove(c)
				h.logger.Debug("websocket client disconnected", "clients", len(h.clients))
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// cliente lento: desconecta em vez de bloquear os demais
					h.remove(c)
					h.logger.Warn("dropping slow websocket client")
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// ClientCount retorna o número de clientes conectados
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Publish enfileira o evento para broadcast sem bloquear a requisição
func (h *Hub) Publish(ctx context.Context, event events.Event) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	select {
	case h.broadcast <- message:
	case <-ctx.Done():
	default:
		h.logger.Warn("event dropped, broadcast queue full", "type", event.Type, "cpf", event.CPF)
	}
}

// ServeWS faz o upgrade da conexão e registra o cliente
//
//	@Summary		Feed de eventos de funcionários
//	@Description	Conexão websocket que recebe eventos funcionario.criado, funcionario.atualizado e funcionario.removido
//	@Tags			funcionarios
//	@Success		101
//	@Router			/ws/funcionarios [get]
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump só existe para detectar a desconexão; mensagens recebidas são ignoradas
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
