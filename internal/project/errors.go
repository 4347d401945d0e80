package project

import "errors"

var (
	ErrNotFound         = errors.New("project not found")
	ErrForbidden        = errors.New("only the owner or staff may modify this project")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrInvalidDateRange = errors.New("start date is after end date")
)
