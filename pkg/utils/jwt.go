package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims carries the subject user and token type of a parsed JWT.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	TokenType string
}

// GenerateToken builds and signs an HS256 JWT for a user. The token_type
// claim distinguishes access tokens from refresh tokens so one cannot be
// used in place of the other.
func GenerateToken(secret string, userID uuid.UUID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":        userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        now.Add(ttl).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of a JWT and returns its
// claims. Expired or tampered tokens produce an error.
func ParseToken(secret, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: bad subject")
	}

	email, _ := claims["email"].(string)
	tokenType, _ := claims["token_type"].(string)

	return &TokenClaims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
	}, nil
}
