package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"hireme/config"

	"github.com/golang-jwt/jwt"
)

// secretKey resolves the signing secret: configured value first, then the
// environment, then a default (not recommended in production). Resolved per
// call so a config loaded after package init is honored.
func secretKey() []byte {
	if secret := config.AppConfig.JWTSecret; secret != "" {
		return []byte(secret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("HIREME_DEV_SECRET")
}

// GenerateToken creates a signed JWT token with the given subject (a user id) and email.
// The token expires after the specified duration.
func GenerateToken(subject, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// SubjectFromToken extracts the "sub" and "email" claims from a validated token.
func SubjectFromToken(token *jwt.Token) (subject, email string, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}
	subject, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	if subject == "" {
		return "", "", errors.New("token missing subject")
	}
	return subject, email, nil
}
