// Package models defines client-side data models used by the jobtracker CLI.
package models

import (
	"slices"
	"time"
)

// Role tags what a user may do in the tracker.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DefaultRoles is the role set given to every signed-in user.
func DefaultRoles() []Role {
	return []Role{RoleUser}
}

// User is the authenticated principal cached next to the auth token.
// The JSON form is what gets persisted in the user_data slot.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasRole reports whether r is among the user's roles.
func (u *User) HasRole(r Role) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, r)
}

// Clone returns a deep copy so callers can't mutate controller state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	return &c
}
