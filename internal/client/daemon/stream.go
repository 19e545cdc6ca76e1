package daemon

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// streamWriteTimeout ограничивает запись одного сообщения медленному клиенту
const streamWriteTimeout = 5 * time.Second

// handleEvents обрабатывает GET /_sync/events: websocket поток прогресса, уведомлений и
// состояния сети. Первыми приходят текущие прогресс и состояние сети.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	progress, stopProgress := s.service.SubscribeProgress()
	defer stopProgress()
	events, stopEvents := s.service.SubscribeEvents()
	defer stopEvents()
	states, stopStates := s.network.Subscribe()
	defer stopStates()

	// клиент ничего не присылает; CloseRead обрабатывает close frame и отменяет ctx
	ctx := conn.CloseRead(r.Context())

	s.logger.Debug("Event stream connected", "remote_addr", r.RemoteAddr)

	for {
		var msg StreamMessage
		select {
		case <-ctx.Done():
			s.logger.Debug("Event stream closed", "remote_addr", r.RemoteAddr)
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case p, ok := <-progress:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "sync stopped")
				return
			}
			msg = StreamMessage{Kind: StreamProgress, Progress: &p}
		case e, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "sync stopped")
				return
			}
			msg = StreamMessage{Kind: StreamEvent, Event: &e}
		case st, ok := <-states:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "monitor stopped")
				return
			}
			msg = StreamMessage{Kind: StreamConnectivity, Connectivity: &st}
		}

		if err := s.writeMessage(ctx, conn, msg); err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Debug("Event stream write failed", "error", err)
			}
			return
		}
	}
}

func (s *Server) writeMessage(ctx context.Context, conn *websocket.Conn, msg StreamMessage) error {
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, msg)
}
