package model

import "time"

// DefaultRole is assigned to users registering without a role.
const DefaultRole = "üye"

// User is an account of the tracker.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Role         string
	IsStaff      bool
	IsActive     bool
	PasswordHash *string
	DateJoined   time.Time
	LastLogin    *time.Time
}

// FullName joins first and last name, falling back to the email.
func (u User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// Scope builds the caller scope of u.
func (u User) Scope() Scope {
	return Scope{UserID: u.ID, Email: u.Email, Role: u.Role, IsStaff: u.IsStaff}
}
