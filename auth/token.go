package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperr "github.com/phillip/volunteerease-go/apperr"
)

const tokenTTL = 24 * time.Hour

// Claims carried by an access token.
type Claims struct {
	UserID      string
	SessionID   string
	AccountKind string
	Username    string
}

func GenerateToken(secret string, c Claims) (string, error) {
	claims := jwt.MapClaims{
		"sub":  c.UserID,
		"sid":  c.SessionID,
		"kind": c.AccountKind,
		"name": c.Username,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.Auth, "invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, apperr.Wrap(apperr.Auth, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, apperr.New(apperr.Auth, "invalid token claims")
	}

	out := Claims{}
	if v, ok := claims["sub"].(string); ok {
		out.UserID = v
	}
	if v, ok := claims["sid"].(string); ok {
		out.SessionID = v
	}
	if v, ok := claims["kind"].(string); ok {
		out.AccountKind = v
	}
	if v, ok := claims["name"].(string); ok {
		out.Username = v
	}
	if out.UserID == "" {
		return Claims{}, apperr.New(apperr.Auth, "invalid token claims")
	}
	return out, nil
}
