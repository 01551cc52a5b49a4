package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken("secret", userID, "pilot@example.com", TokenTypeAccess, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken("secret", token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pilot@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "pilot@example.com", TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "pilot@example.com", TokenTypeRefresh, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("swordfish-123")
	assert.NoError(t, err)
	assert.NotEqual(t, "swordfish-123", hash)

	assert.True(t, CheckPassword("swordfish-123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
