package entity

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID         string
	AuthUserID string
	Email      string
	FullName   *string
	Role       string
	CreatedAt  time.Time
}

func IsRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
