package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

// wsRequest is a single hand sent over the websocket
type wsRequest struct {
	ID    string   `json:"id"`
	Cards []string `json:"cards"`
	Wild  bool     `json:"wild"`
}

// wsResponse answers a wsRequest with the same ID
type wsResponse struct {
	ID       string   `json:"id"`
	Cards    []string `json:"cards,omitempty"`
	Hand     string   `json:"hand,omitempty"`
	Strength int      `json:"strength,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (m *Mux) getHandWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	pongWait := m.config.pongWait
	pingPeriod := pongWait * 9 / 10

	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		send := make(chan wsResponse)
		stop := make(chan bool)
		writerDone := make(chan bool)
		defer func() {
			close(stop)
			_ = conn.Close()
		}()

		go func() {
			defer close(writerDone)
			m.webSocketWriteLoop(conn, logger, pingPeriod, send, stop)
		}()

		m.webSocketReadLoop(conn, logger, send, writerDone)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, logger logrus.FieldLogger, pingPeriod time.Duration, send <-chan wsResponse, stop <-chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-send:
			logger.WithField("id", msg.ID).Trace("sending message to client")

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop evaluates one hand per message until the connection closes or the writer stops
func (m *Mux) webSocketReadLoop(conn *websocket.Conn, logger logrus.FieldLogger, send chan<- wsResponse, writerDone <-chan bool) {
	for {
		var msg wsRequest
		if err := conn.ReadJSON(&msg); err != nil {
			if _, ok := err.(*websocket.CloseError); !ok {
				logger.WithError(err).Debug("could not read JSON")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Error("could not read message")
			}

			return
		}

		resp := wsResponse{ID: msg.ID}
		if result, err := m.evaluate(msg.Cards, msg.Wild); err != nil {
			resp.Error = err.Error()
		} else {
			resp.Cards = result.Cards
			resp.Hand = result.Hand
			resp.Strength = result.Strength
		}

		select {
		case send <- resp:
		case <-writerDone:
			return
		}
	}
}
