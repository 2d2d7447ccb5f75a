package pkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	SetSecret("unit_test_secret")

	tok, err := GenerateToken(42, "member")
	require.NoError(t, err)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "member", claims.Role)
}

func TestParseRejectsExpired(t *testing.T) {
	SetSecret("unit_test_secret")

	past := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := past.SignedString([]byte("unit_test_secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	SetSecret("unit_test_secret")
	tok, err := GenerateToken(7, "admin")
	require.NoError(t, err)

	SetSecret("a_different_secret")
	_, err = ParseToken(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongAlg(t *testing.T) {
	SetSecret("unit_test_secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Role: "admin"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	SetSecret("unit_test_secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
