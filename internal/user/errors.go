package user

import "errors"

var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordRequired  = errors.New("password or password hash is required")
	ErrDuplicateUsername = errors.New("username is configured more than once")
)
