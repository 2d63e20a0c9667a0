package models

import (
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the closed set. Role is a
// tagged enum, not a free string: everything that branches on it must
// handle exactly these two values.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch carries a partial update; nil fields keep their prior value.
type UserPatch struct {
	Name     *string `json:"name"`
	UserName *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *Role   `json:"role"`
}
