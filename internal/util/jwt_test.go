package util

import (
	"skillsync_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "jordan@example.com", Role: model.Student}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "jordan@example.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "jordan@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "another-secret-another-secret-xx")
	assert.Error(t, err)
}

func TestJWTRejectsOtherSigningMethods(t *testing.T) {
	claims := &Claims{UserID: 1}
	claims.Issuer = "skillsync"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestJWTRejectsForeignIssuer(t *testing.T) {
	claims := &Claims{UserID: 1}
	claims.Issuer = "someone-else"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "jordan@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}
