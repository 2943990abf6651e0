package lib

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer(nil, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndParse(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte("secret"), time.Hour)
	require.NoError(t, err)

	raw, claims, err := issuer.Issue(42, "employee1@example.com", "EMPLOYEE")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, "employee1@example.com", parsed.Email)

	id, err := UserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte("secret"), time.Minute)
	require.NoError(t, err)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, _, err := issuer.Issue(1, "manager@example.com", "MANAGER")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer, _ := NewTokenIssuer([]byte("secret"), time.Hour)
	other, _ := NewTokenIssuer([]byte("other"), time.Hour)

	raw, _, err := other.Issue(1, "manager@example.com", "MANAGER")
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	issuer, _ := NewTokenIssuer([]byte("secret"), time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.Error(t, err)
}
