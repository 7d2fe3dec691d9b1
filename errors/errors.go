package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrNameTaken       = fmt.Errorf("username already taken")
	ErrUnknownSession  = fmt.Errorf("unknown session")
	ErrInvalidUsername = fmt.Errorf("invalid username")
	ErrAlreadyBound    = fmt.Errorf("connection already bound to a session")
	ErrInvalidToken    = fmt.Errorf("invalid media token")
	ErrNoFile          = fmt.Errorf("no file uploaded")
)
