package auth

import "errors"

var (
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrHashPassword      = errors.New("failed to hash password")
	ErrUserNameTaken     = errors.New("user name already taken")
	ErrCreateUser        = errors.New("failed to create user")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrVerifyUser        = errors.New("failed to verify user")
)
