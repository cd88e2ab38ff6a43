package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token carrying the username as its only claim. Tokens
// do not expire; session lifetime is managed by clients discarding them.
func GenerateJWT(username string, secret []byte) (string, error) {
	claims := &Claims{Username: username}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateJWT verifies the signature and returns the claims.
func ValidateJWT(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetUsernameFromClaims returns the authenticated username placed on the gin
// context by the auth middleware.
func GetUsernameFromClaims(c *gin.Context) (string, error) {
	claims, exists := c.Get("claims")
	if !exists {
		return "", errors.New("claims not found in context")
	}

	tokenClaims, ok := claims.(*Claims)
	if !ok {
		return "", errors.New("claims are not of type *Claims")
	}

	return tokenClaims.Username, nil
}
