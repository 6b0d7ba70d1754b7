package auth

import "github.com/vibeventz/ms-go-vendor-admin/app/entity"

// Identity is the resolved caller of a request. It is built per request and
// passed explicitly into operations that record who acted.
type Identity struct {
	UserID     string
	AuthUserID string
	Email      string
	Role       string
}

func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}
