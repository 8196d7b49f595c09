package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 12*time.Hour)

	tok, err := issuer.Issue("uid-123")
	require.NoError(t, err)

	claims, err := issuer.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "uid-123", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 12*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestIssue_FreshTokenEachCall(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	a, err := issuer.Issue("uid-1")
	require.NoError(t, err)
	b, err := issuer.Issue("uid-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestIssue_RequiresSecretAndUID(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).Issue("uid")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewTokenIssuer("s", time.Hour).Issue("")
	assert.ErrorIs(t, err, ErrMissingUID)
}

func TestValidate_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 12*time.Hour)
	issued := time.Date(2022, 5, 16, 8, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	tok, err := issuer.Issue("uid-1")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(12*time.Hour + time.Minute) }
	_, err = issuer.Validate(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := NewTokenIssuer("secret-a", time.Hour).Issue("uid-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidate_Malformed(t *testing.T) {
	_, err := NewTokenIssuer("s", time.Hour).Validate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		UID: "uid-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("s", time.Hour).Validate(tok)
	assert.Error(t, err)
}

func TestValidate_RequiresUID(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("s", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrMissingUID)
}
