package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	g := NewGenerator(secret, time.Hour)

	tokenStr, err := g.GenerateToken("alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), exp-iat, 1, "expiration window should match the configured duration")
}

func TestGenerator_GenerateToken_WrongSecretFailsVerification(t *testing.T) {
	t.Parallel()

	g := NewGenerator("right-secret", time.Hour)

	tokenStr, err := g.GenerateToken("alice", "user")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
