package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dm-relay/domain"
	"dm-relay/domain/event"
)

func TestEncodeEvent_Roster_Frame(t *testing.T) {
	req := require.New(t)

	evt := event.RosterUpdated{Roster: []domain.RosterEntry{
		{SessionID: "s-1", Username: "alice", Online: true, Picture: "a.png"},
		{SessionID: "s-2", Username: "bob", Typing: true},
	}}

	frame, err := encodeEvent(evt)
	req.NoError(err)
	req.Equal("updateUserList", frame.Event)

	// The payload is the roster array itself, not wrapped in an object
	var roster []map[string]any
	req.NoError(json.Unmarshal(frame.Data, &roster))
	req.Len(roster, 2)
	req.Equal("alice", roster[0]["username"])
	req.Equal("s-1", roster[0]["sessionId"])
	req.Equal(true, roster[0]["online"])
	req.Equal(true, roster[1]["typing"])
	req.Equal(false, roster[1]["online"])
}

func TestEncodeEvent_Message_Frame(t *testing.T) {
	req := require.New(t)

	frame, err := encodeEvent(event.MessageReceived{
		From: "s-1", To: "s-2", Message: "hi",
		MediaType: "image", MediaURL: "/uploads/cat.png",
	})
	req.NoError(err)
	req.Equal("receiveMessage", frame.Event)

	var payload map[string]any
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal("s-1", payload["from"])
	req.Equal("s-2", payload["to"])
	req.Equal("hi", payload["message"])
	req.Equal("image", payload["mediaType"])
	req.Equal("/uploads/cat.png", payload["mediaUrl"])
}

func TestEncodeEvent_Typing_Frame(t *testing.T) {
	req := require.New(t)

	frame, err := encodeEvent(event.TypingDisplayed{
		To: "s-2", Username: "alice", Typing: true,
	})
	req.NoError(err)
	req.Equal("display", frame.Event)

	var payload map[string]any
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal("alice", payload["username"])
	req.Equal(true, payload["typing"])
	// The addressed session never leaks onto the wire
	req.NotContains(payload, "to")
}

func TestFrame_Round_Trip(t *testing.T) {
	req := require.New(t)

	// Given a frame as a client would send it
	raw := `{"event":"privateMessage","data":{"from":"s-1","to":"s-2","message":"yo"}}`

	var frame Frame
	req.NoError(json.Unmarshal([]byte(raw), &frame))
	req.Equal("privateMessage", frame.Event)

	var payload messagePayload
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal("s-1", payload.From)
	req.Equal("yo", payload.Message)
}
