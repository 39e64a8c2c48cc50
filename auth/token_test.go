package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verifierSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyResolvesIdentity(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)
	tokenStr := signToken(t, verifierSecret, jwt.MapClaims{
		"sub":   "user-42",
		"email": "[email protected]",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-42", identity.ID)
	assert.Equal(t, "[email protected]", identity.Email)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)
	tokenStr := signToken(t, verifierSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := verifier.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)
	tokenStr := signToken(t, "a-completely-different-signing-secret-value", jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRequiresSubject(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)
	tokenStr := signToken(t, verifierSecret, jwt.MapClaims{
		"email": "[email protected]",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-42"})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewTokenVerifier(verifierSecret)

	_, err := verifier.Verify("not.a.token")
	assert.Error(t, err)
}
