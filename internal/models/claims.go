package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	PermissionPaymentConfirm = "payment:confirm"
)

// AdminClaims are the JWT claims required on admin-only routes
// (manual confirmation, stats, export/import).
type AdminClaims struct {
	jwt.RegisteredClaims
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *AdminClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// DefaultAdminPermissions returns the permissions minted into admin tokens.
func DefaultAdminPermissions() []string {
	return []string{
		PermissionReadAdmin,
		PermissionWriteAdmin,
		PermissionPaymentConfirm,
	}
}
