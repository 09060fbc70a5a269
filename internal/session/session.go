// Package session carries the signed-in user's role and display name.
//
// The login flow that issues the token lives outside this service. The gateway only reads
// the `role` and `username` claims and hands the resulting Session to whoever needs it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin                = "admin"
	RoleHRManager            = "hr_manager"
	RoleFinanceManager       = "finance_manager"
	RoleSalesManager         = "sales_manager"
	RoleProductionSupervisor = "production_supervisor"
	RoleWarehouseManager     = "warehouse_manager"
)

var (
	ErrMissingToken  = errors.New("token not found")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrMissingClaims = errors.New("role or username missing in token")
)

type Session struct {
	Role     string `json:"role"`
	Username string `json:"username"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Parse validates an HMAC-signed token and extracts the session claims.
func Parse(tokenString, secret string) (Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Session{}, ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrTokenExpired
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	username, _ := claims["username"].(string)
	if role == "" || username == "" {
		return Session{}, ErrMissingClaims
	}

	return Session{Role: role, Username: username}, nil
}

type ctxKey struct{}

func With(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func From(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
