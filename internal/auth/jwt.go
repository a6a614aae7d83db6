package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenTTL = 12 * time.Hour

// GenerateAdminToken mints a short-lived HS256 token for leaderboard
// administration.
func GenerateAdminToken(secret []byte, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  now.Add(adminTokenTTL).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseAdminToken validates an admin token and its role claim.
func ParseAdminToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid claims")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return fmt.Errorf("not an admin token")
	}
	return nil
}
