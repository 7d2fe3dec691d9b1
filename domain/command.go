package domain

// Command is a single unit of work for the relay worker.
// Commands are applied one at a time, in arrival order, so the two
// session indices can never be observed half-updated.
type Command interface {
	CommandName() string
}

// LoginResult is pushed on the command's reply channel once the
// login has been applied.
type LoginResult struct {
	Session Session
	Err     error
}

// ReconnectResult is pushed on the command's reply channel once the
// rebind has been applied.
type ReconnectResult struct {
	Session Session
	Err     error
}

type LoginCommand struct {
	ConnID   ConnID
	Username string
	Reply    chan LoginResult
}

func (LoginCommand) CommandName() string { return "login" }

type ReconnectCommand struct {
	ConnID    ConnID
	SessionID SessionID
	Reply     chan ReconnectResult
}

func (ReconnectCommand) CommandName() string { return "reconnect" }

type PrivateMessageCommand struct {
	From      SessionID
	To        SessionID
	Message   string
	MediaType string
	MediaURL  string
}

func (PrivateMessageCommand) CommandName() string { return "privateMessage" }

type TypingCommand struct {
	From   SessionID
	To     SessionID
	Typing bool
}

func (TypingCommand) CommandName() string { return "typing" }

// DisconnectCommand is triggered by the transport layer, never by the client.
type DisconnectCommand struct {
	ConnID ConnID
}

func (DisconnectCommand) CommandName() string { return "disconnect" }

// LogoutCommand destroys the session permanently.
type LogoutCommand struct {
	SessionID SessionID
}

func (LogoutCommand) CommandName() string { return "logout" }

// ExpireSessionCommand is dispatched by the session reaper once an
// offline session has outlived its TTL.
type ExpireSessionCommand struct {
	SessionID SessionID
}

func (ExpireSessionCommand) CommandName() string { return "expireSession" }

// AttachMediaCommand parks a completed upload on the sender's session.
type AttachMediaCommand struct {
	SessionID SessionID
	Media     PendingMedia
}

func (AttachMediaCommand) CommandName() string { return "attachMedia" }
