package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Operator é o usuário configurado que pode acionar relatórios pela API
type Operator struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
