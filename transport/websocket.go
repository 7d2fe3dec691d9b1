package transport

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"

	"dm-relay/domain"
	"dm-relay/errors"
	"dm-relay/sink"
)

func (s *Server) handleSocket(c echo.Context) error {
	websocket.Handler(func(ws *websocket.Conn) {
		s.serveConn(c.Request().Context(), ws)
	}).ServeHTTP(c.Response(), c.Request())
	return nil
}

// serveConn drives one websocket connection for its whole lifetime.
// The connection starts unauthenticated; login or reconnect binds it to
// a session. Whatever happens, closing the socket ends up as a single
// disconnect command, and a disconnect before login mutates nothing.
func (s *Server) serveConn(ctx context.Context, ws *websocket.Conn) {
	defer ws.Close()

	connID := domain.ConnID(uuid.NewString())
	connSink := sink.NewConnSink(s.log, s.connBufferSize)
	s.relayService.Attach(connID, connSink)
	defer s.relayService.Disconnect(connID)

	s.log.Debug("Connection opened", "conn_id", connID)

	// All outbound traffic (acks and relayed events) funnels through one
	// writer goroutine: websocket sends are not safe to interleave.
	outbound := make(chan Frame, 4)
	writerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.writeLoop(writerCtx, ws, connSink, outbound)

	var bound domain.SessionID
	for {
		var frame Frame
		if err := websocket.JSON.Receive(ws, &frame); err != nil {
			// EOF on client close; the deferred disconnect cleans up.
			s.log.Debug("Connection closed", "conn_id", connID, "error", err)
			return
		}
		s.handleFrame(ctx, connID, &bound, frame, outbound)
	}
}

func (s *Server) writeLoop(ctx context.Context, ws *websocket.Conn, connSink *sink.ConnSink, outbound chan Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-outbound:
			if err := websocket.JSON.Send(ws, frame); err != nil {
				return
			}
		case evt := <-connSink.Events:
			frame, err := encodeEvent(evt)
			if err != nil {
				s.log.Warn("Unencodable event", "error", err)
				continue
			}
			if err := websocket.JSON.Send(ws, frame); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleFrame(ctx context.Context, connID domain.ConnID,
	bound *domain.SessionID, frame Frame, outbound chan Frame) {
	switch frame.Event {
	case eventLogin:
		// A bound connection only speaks message, typing and logout; it
		// cannot take on a second identity without closing first.
		if *bound != "" {
			s.reply(ctx, outbound, eventLogin, loginAck{
				Success: false, Message: errors.ErrAlreadyBound.Error()})
			return
		}
		var p loginPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			return
		}
		ack, err := s.relayService.Login(ctx, connID, p.Username)
		if err != nil {
			s.reply(ctx, outbound, eventLogin, loginAck{Success: false, Message: err.Error()})
			return
		}
		*bound = ack.Session.ID
		s.reply(ctx, outbound, eventLogin, loginAck{
			Success:    true,
			SessionID:  string(ack.Session.ID),
			Picture:    ack.Session.Picture,
			MediaToken: ack.MediaToken,
		})

	case eventReconnect:
		if *bound != "" {
			s.reply(ctx, outbound, eventReconnect, reconnectAck{Success: false})
			return
		}
		var p reconnectPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			return
		}
		session, err := s.relayService.Reconnect(ctx, connID, domain.SessionID(p.SessionID))
		if err != nil {
			s.reply(ctx, outbound, eventReconnect, reconnectAck{Success: false})
			return
		}
		*bound = session.ID
		s.reply(ctx, outbound, eventReconnect, reconnectAck{Success: true})

	case eventPrivateMessage:
		var p messagePayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			return
		}
		// Routing is keyed by the bound session, never by the client's
		// claimed "from" field.
		if *bound == "" || p.From != string(*bound) {
			s.log.Debug("Message from unbound or mismatched sender", "conn_id", connID)
			return
		}
		s.relayService.SendMessage(domain.PrivateMessageCommand{
			From:      *bound,
			To:        domain.SessionID(p.To),
			Message:   p.Message,
			MediaType: p.MediaType,
			MediaURL:  p.MediaURL,
		})

	case eventTyping:
		var p typingPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			return
		}
		if *bound == "" {
			return
		}
		s.relayService.SetTyping(domain.TypingCommand{
			From:   *bound,
			To:     domain.SessionID(p.To),
			Typing: p.Typing,
		})

	case eventLogout:
		if *bound == "" {
			return
		}
		s.relayService.Logout(*bound)
		*bound = ""

	default:
		s.log.Debug("Unknown event", "event", frame.Event, "conn_id", connID)
	}
}

func (s *Server) reply(ctx context.Context, outbound chan Frame, eventName string, payload any) {
	frame, err := newFrame(eventName, payload)
	if err != nil {
		s.log.Error("Failed to encode reply", "event", eventName, "error", err)
		return
	}
	select {
	case outbound <- frame:
	case <-ctx.Done():
	}
}
