package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sips/internal/shared/authorization"
)

type Claims struct {
	UserID uint                   `json:"user_id"`
	OpenID string                 `json:"open_id"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret        []byte
	sessionExpHrs int
}

func NewJWTService(secret string, sessionExpHrs int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		sessionExpHrs: sessionExpHrs,
	}
}

// Generate signs a session token for the given user.
func (s *JWTService) Generate(userID uint, openID string, role authorization.UserRole) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.sessionExpHrs) * time.Hour)

	claims := &Claims{
		UserID: userID,
		OpenID: openID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a session token.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// SessionMaxAge returns the cookie max age in seconds.
func (s *JWTService) SessionMaxAge() int {
	return s.sessionExpHrs * 3600
}
