package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dm-relay/domain"
)

// MediaClaims defines the data stored inside the upload token.
// The token ties an upload to the session that requested it, so the
// upload endpoint never has to trust a sessionId form field blindly.
type MediaClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the upload tokens handed out at login.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTokenIssuer(secret []byte, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, duration: duration}
}

// GenerateMediaToken creates a signed JWT bound to a session.
func (t *TokenIssuer) GenerateMediaToken(sessionID domain.SessionID) (string, error) {
	now := time.Now()
	claims := &MediaClaims{
		SessionID: string(sessionID),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "dm-relay",
		},
	}

	// HS256: HMAC with SHA256, signed with the server's secret key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateMediaToken parses and validates the signature and expiration
// of a token string, returning the session it was issued for.
func (t *TokenIssuer) ValidateMediaToken(tokenString string) (domain.SessionID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MediaClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*MediaClaims); ok && token.Valid {
		return domain.SessionID(claims.SessionID), nil
	}
	return "", jwt.ErrSignatureInvalid
}
