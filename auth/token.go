package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier resolves callers from the HS256 access tokens the auth
// provider issues, using the project's shared JWT secret. Verification is
// local; no network call is made per request.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) TokenVerifier {
	return TokenVerifier{secret: []byte(secret)}
}

// Verify parses and validates an access token and returns the caller it
// identifies, or an error for missing, expired or tampered tokens.
func (v TokenVerifier) Verify(tokenStr string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	identity := Identity{ID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return &identity, nil
}
