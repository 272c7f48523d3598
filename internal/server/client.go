package server

import (
	"net/http"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine"
	"tileworld-server/pkg/api"
	"tileworld-server/pkg/logger"
	"tileworld-server/pkg/utils"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровым циклом
type Client struct {
	Instance  *engine.Instance
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
	log       *logrus.Entry
}

// NewClient регистрирует сессию в хабе. Кадры начинают приходить сразу.
func NewClient(inst *engine.Instance, conn *websocket.Conn) *Client {
	id := utils.GenerateID()
	return &Client{
		Instance:  inst,
		Conn:      conn,
		Send:      inst.Hub.Register(id),
		SessionID: id,
		log:       logger.Log.WithFields(logrus.Fields{"component": "ws_client", "session_id": id}),
	}
}

// readPump читает команды наблюдателя
func (c *Client) readPump() {
	defer func() {
		c.Instance.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("Client connected")

	// Отправляем INIT (триггер первой отрисовки)
	c.Instance.Submit(domain.InternalCommand{Action: domain.ActionInit, SessionID: c.SessionID})

	// ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			break
		}

		c.Instance.Submit(domain.InternalCommand{
			Action:    domain.ParseAction(cmd.Action),
			SessionID: c.SessionID,
			Payload:   cmd.Payload,
		})
	}
}

// writePump отправляет кадры клиенту + Ping. Канал закрывает хаб при Unregister.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
