package transport

import (
	"encoding/json"
	"fmt"

	"dm-relay/domain/event"
)

// Frame is the wire envelope for every websocket exchange, in both
// directions: a socket.io-style event name plus a JSON payload.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

const (
	eventLogin          = "login"
	eventReconnect      = "reconnect"
	eventPrivateMessage = "privateMessage"
	eventTyping         = "typing"
	eventLogout         = "logout"

	eventUpdateUserList = "updateUserList"
	eventReceiveMessage = "receiveMessage"
	eventDisplay        = "display"
)

type loginPayload struct {
	Username string `json:"username"`
}

type reconnectPayload struct {
	SessionID string `json:"sessionId"`
}

type messagePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

type typingPayload struct {
	To     string `json:"to"`
	Typing bool   `json:"typing"`
}

type loginAck struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"sessionId,omitempty"`
	Picture    string `json:"picture,omitempty"`
	MediaToken string `json:"mediaToken,omitempty"`
	Message    string `json:"message,omitempty"`
}

type reconnectAck struct {
	Success bool `json:"success"`
}

type displayPayload struct {
	Username string `json:"username"`
	Typing   bool   `json:"typing"`
}

func newFrame(eventName string, payload any) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Event: eventName, Data: data}, nil
}

// encodeEvent turns a relay event into its wire frame.
func encodeEvent(evt event.DomainEvent) (Frame, error) {
	switch e := evt.(type) {
	case event.RosterUpdated:
		return newFrame(eventUpdateUserList, e.Roster)
	case event.MessageReceived:
		return newFrame(eventReceiveMessage, messagePayload{
			From:      string(e.From),
			To:        string(e.To),
			Message:   e.Message,
			MediaType: e.MediaType,
			MediaURL:  e.MediaURL,
		})
	case event.TypingDisplayed:
		return newFrame(eventDisplay, displayPayload{
			Username: e.Username,
			Typing:   e.Typing,
		})
	default:
		return Frame{}, fmt.Errorf("no wire encoding for event %T", evt)
	}
}
