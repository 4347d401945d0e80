package repository

import "time"

// CreateOptions holds parameters for inserting a user.
// A nil PasswordHash creates an account that can only sign in through Google.
type CreateOptions struct {
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash *string
	IsStaff      bool
	IsActive     bool
	DateJoined   time.Time
}

// GetOneOptions filters a single user. Non-empty fields are ANDed.
type GetOneOptions struct {
	ID    int64
	Email string
}

// ListOptions filters users. An empty IDs slice lists everyone.
type ListOptions struct {
	IDs []int64
}

// UpdateOptions replaces the editable profile fields of a user.
type UpdateOptions struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Role      string
}
