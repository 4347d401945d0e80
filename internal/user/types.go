package user

import "project-tracker/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID        int64
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
}

// --- UseCase Outputs ---

type TokenOutput struct {
	Access  string
	Refresh string
	User    model.User
	// Created is set by GoogleLogin when the account did not exist yet.
	Created bool
}

type RefreshOutput struct {
	Access string
}

type GoogleConfigOutput struct {
	ClientID string
	Enabled  bool
}
