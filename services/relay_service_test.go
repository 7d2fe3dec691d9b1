package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dm-relay/auth"
	"dm-relay/domain"
	"dm-relay/mocks"
)

func TestRelayService_Login_Issues_Media_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relayMock := mocks.NewMockIRelay(ctrl)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), 1*time.Hour)
	service := NewRelayService(relayMock, tokens, slog.Default())

	session := domain.Session{ID: "s-1", Username: "alice", Online: true}

	// Given the relay accepts the login
	relayMock.EXPECT().
		Login(gomock.Any(), domain.ConnID("conn-1"), "alice").
		Return(session, nil).
		Times(1)

	// When logging in through the service
	ack, err := service.Login(context.Background(), "conn-1", "alice")

	// Then the session comes back with a token bound to it
	req.NoError(err)
	req.Equal(session, ack.Session)
	sessionID, err := tokens.ValidateMediaToken(ack.MediaToken)
	req.NoError(err)
	req.Equal(session.ID, sessionID)
}

func TestRelayService_Login_Rejects_Invalid_Username(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given a relay that must never be reached
	relayMock := mocks.NewMockIRelay(ctrl)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), 1*time.Hour)
	service := NewRelayService(relayMock, tokens, slog.Default())

	// When logging in with a name that fails validation
	_, err := service.Login(context.Background(), "conn-1", "x")

	// Then the rejection happens before any command is dispatched
	req.Error(err)
}

func TestRelayService_Login_Propagates_Relay_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relayMock := mocks.NewMockIRelay(ctrl)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), 1*time.Hour)
	service := NewRelayService(relayMock, tokens, slog.Default())

	// Given the relay rejects the login
	relayMock.EXPECT().
		Login(gomock.Any(), domain.ConnID("conn-1"), "alice").
		Return(domain.Session{}, context.DeadlineExceeded).
		Times(1)

	// When logging in through the service
	_, err := service.Login(context.Background(), "conn-1", "alice")

	// Then the error surfaces unchanged
	req.ErrorIs(err, context.DeadlineExceeded)
}
