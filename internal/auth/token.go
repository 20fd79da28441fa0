package auth

import (
	"errors"
	"fmt"
	"time"

	model "auction-marketplace/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no user_id claim")
)

// Claims is the token payload issued by the identity service
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns the principal it names.
func ParseToken(tokenString, secret string) (*model.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrMissingUser
	}

	return &model.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsStaff:  claims.IsStaff,
	}, nil
}

// IssueToken signs a token for p. Used by tooling and tests; login lives elsewhere.
func IssueToken(p model.Principal, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   p.UserID,
		Username: p.Username,
		IsStaff:  p.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
