package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of actor roles. Raw role strings from tokens and
// request payloads are parsed exactly once at the API boundary via ParseRole;
// everything past that boundary compares Role values, never strings.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalises and validates a raw role string. Case-insensitive
// because historical clients sent mixed casing.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleLandlord:
		return RoleLandlord, nil
	case RoleTenant:
		return RoleTenant, nil
	}
	return "", ErrUnknownRole
}

func (r Role) String() string { return string(r) }

// Registerable reports whether the role is open to self-service
// registration. Admin accounts are provisioned out of band.
func (r Role) Registerable() bool {
	return r == RoleLandlord || r == RoleTenant
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
