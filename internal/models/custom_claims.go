package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// AdminClaims represents the claims carried by dataset administration tokens
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IsAdmin reports whether the token grants dataset administration
func (c *AdminClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
