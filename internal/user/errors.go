package user

import "errors"

var (
	ErrNotFound            = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInactive            = errors.New("account is inactive")
	ErrForbidden           = errors.New("not allowed to modify this user")
	ErrGoogleDisabled      = errors.New("google sign-in is not configured")
	ErrInvalidGoogleToken  = errors.New("google credential could not be verified")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
