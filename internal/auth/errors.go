package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	FieldUsername = "username"
	FieldPassword = "password"

	MsgUsernameRequired = "username is required"
	MsgPasswordRequired = "password is required"
)
