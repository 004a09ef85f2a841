package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	errUnexpectedSigningMethod = errors.New(constvars.ErrDevAuthSigningMethod)
	errInvalidClaims           = errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
)

// GenerateJWT issues an HS256 token carrying the email claim.
func GenerateJWT(email, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiry).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseJWT verifies tokenString and returns its email claim.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if email, ok := claims["email"].(string); ok && email != "" {
			return email, nil
		}
	}

	return "", errInvalidClaims
}
