package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionJWTClaims represents the JWT claims carried by the session cookie
type SessionJWTClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and verification
type JWTService struct {
	secretKey string
	ttl       time.Duration
}

var jwtService *JWTService

// NewJWTService builds a service signing with secretKey. Tokens live for ttl.
func NewJWTService(secretKey string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &JWTService{secretKey: secretKey, ttl: ttl}, nil
}

// InitJWTService initializes the global JWT service with a secret key
func InitJWTService(secretKey string, ttl time.Duration) error {
	svc, err := NewJWTService(secretKey, ttl)
	if err != nil {
		return err
	}
	jwtService = svc
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("SESSION_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey, ttl: 30 * 24 * time.Hour}
	}
	return jwtService
}

// TTL is how long an issued session token stays valid.
func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateSessionJWT signs a token naming the browsing session
func (j *JWTService) GenerateSessionJWT(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := time.Now()
	claims := SessionJWTClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "modeva-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifySessionJWT verifies and parses a session token
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifySessionJWT(tokenString string) (*SessionJWTClaims, error) {
	claims := &SessionJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.SessionID == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}
