package util

import (
	"testing"
	"time"

	"studytrack_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		Name:  "Ana",
		Email: "ana@example.com",
	}
	user.ID = 42

	secret := "0123456789abcdef0123456789abcdef"

	token, err := GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "ana@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "another-secret-another-secret-12")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "ana@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "0123456789abcdef0123456789abcdef", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "0123456789abcdef0123456789abcdef")
	assert.Error(t, err)
}
