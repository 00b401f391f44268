package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken signs an HS256 JWT carrying the user ID, role, and the
// session token it was issued against. The session ID lets the auth
// middleware reject tokens for revoked sessions.
func GenerateAccessToken(secret string, userID uuid.UUID, role string, sessionToken uuid.UUID, expiryHours int) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(expiryHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"sid":  sessionToken.String(),
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// AccessClaims holds the verified claims from a bearer token.
type AccessClaims struct {
	UserID       uuid.UUID
	Role         string
	SessionToken uuid.UUID
}

// ParseAccessToken verifies the signature and expiry and extracts claims.
func ParseAccessToken(secret, raw string) (*AccessClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	sid, _ := claims["sid"].(string)
	sessionToken, err := uuid.Parse(sid)
	if err != nil {
		return nil, fmt.Errorf("invalid session claim: %w", err)
	}

	role, _ := claims["role"].(string)

	return &AccessClaims{
		UserID:       userID,
		Role:         role,
		SessionToken: sessionToken,
	}, nil
}
