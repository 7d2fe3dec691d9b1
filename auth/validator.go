package auth

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"dm-relay/errors"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `validate:"required,min=2,max=24"`
}

// ValidateLogin checks a display name before it reaches the ledger.
// Names are what peers see in the roster: control characters and blank
// padding would make two visually identical names distinct identities.
func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !isUsernameDisplayable(req.Username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func isUsernameDisplayable(s string) bool {
	if strings.TrimSpace(s) != s {
		return false
	}
	for _, char := range s {
		if !unicode.IsPrint(char) {
			return false
		}
	}
	return true
}
