package services

import (
	"context"
	"log/slog"

	"dm-relay/auth"
	"dm-relay/contract"
	"dm-relay/domain"
)

// LoginAck is what a successful first login hands back to the client:
// the fresh session plus a signed token authorizing media uploads for it.
type LoginAck struct {
	Session    domain.Session
	MediaToken string
}

type IRelayService interface {
	Attach(connID domain.ConnID, sink contract.EventSink)
	Login(ctx context.Context, connID domain.ConnID, username string) (LoginAck, error)
	Reconnect(ctx context.Context, connID domain.ConnID, sessionID domain.SessionID) (domain.Session, error)
	SendMessage(cmd domain.PrivateMessageCommand)
	SetTyping(cmd domain.TypingCommand)
	Disconnect(connID domain.ConnID)
	Logout(sessionID domain.SessionID)
}

// RelayService fronts the relay engine for the transport layer. It owns
// the concerns that do not belong on the relay worker: display name
// validation and media token issuance.
type RelayService struct {
	relay  contract.IRelay
	tokens *auth.TokenIssuer
	log    *slog.Logger
}

func NewRelayService(relay contract.IRelay, tokens *auth.TokenIssuer, log *slog.Logger) *RelayService {
	return &RelayService{relay: relay, tokens: tokens, log: log}
}

func (s *RelayService) Attach(connID domain.ConnID, sink contract.EventSink) {
	s.relay.Attach(connID, sink)
}

func (s *RelayService) Login(ctx context.Context, connID domain.ConnID, username string) (LoginAck, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Username: username}); err != nil {
		return LoginAck{}, err
	}
	session, err := s.relay.Login(ctx, connID, username)
	if err != nil {
		return LoginAck{}, err
	}

	token, err := s.tokens.GenerateMediaToken(session.ID)
	if err != nil {
		// The session exists either way; the client just cannot upload.
		s.log.Error("Failed to issue media token", "session_id", session.ID, "error", err)
	}
	return LoginAck{Session: session, MediaToken: token}, nil
}

func (s *RelayService) Reconnect(ctx context.Context, connID domain.ConnID, sessionID domain.SessionID) (domain.Session, error) {
	return s.relay.Reconnect(ctx, connID, sessionID)
}

func (s *RelayService) SendMessage(cmd domain.PrivateMessageCommand) {
	s.relay.SendMessage(cmd)
}

func (s *RelayService) SetTyping(cmd domain.TypingCommand) {
	s.relay.SetTyping(cmd)
}

func (s *RelayService) Disconnect(connID domain.ConnID) {
	s.relay.Disconnect(connID)
}

func (s *RelayService) Logout(sessionID domain.SessionID) {
	s.relay.Logout(sessionID)
}
