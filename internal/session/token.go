package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vancomm/minefield/internal/config"
)

var ErrBadToken = errors.New("invalid session token")

// IssueToken returns a bearer token that grants moves on s.
func IssueToken(j *config.JWT, s *Session) (string, error) {
	return j.Sign(jwt.RegisteredClaims{
		Subject:   s.Id,
		IssuedAt:  jwt.NewNumericDate(s.StartedAt),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.TokenLifetime())),
	})
}

func VerifyToken(j *config.JWT, token string, sessionId string) error {
	var claims jwt.RegisteredClaims
	if _, err := j.ParseWithClaims(token, &claims); err != nil {
		return fmt.Errorf("%w: %w", ErrBadToken, err)
	}
	if claims.Subject != sessionId {
		return fmt.Errorf("%w: issued for another session", ErrBadToken)
	}
	return nil
}
