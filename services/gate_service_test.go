package services

import (
	"testing"
	"time"

	"github.com/aisyahz/tepico88/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateLogin(t *testing.T) {
	gate := NewGateService("tepico2025", "secret", time.Hour)

	token, err := gate.Login("tepico2025")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &utils.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "staff", claims.Role)
}

func TestGateLoginMismatch(t *testing.T) {
	gate := NewGateService("tepico2025", "secret", time.Hour)

	for _, pw := range []string{"", "TEPICO2025", "tepico2025 ", "letmein"} {
		token, err := gate.Login(pw)
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Empty(t, token)
	}
}
