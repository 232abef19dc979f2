package entity

import "time"

// Application roles.
const (
	RoleAdmin = "admin"
	RoleBaker = "baker"
	RoleUser  = "user"
)

// User is an application account (the "profiles" table). UUID identifiers.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
