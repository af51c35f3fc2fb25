package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrArticleNotFound    = errors.New("article not found")

	ErrCurrentPasswordRequired = errors.New("current password is required to change password")
	ErrEmptyRoles              = errors.New("user must have at least one role")

	// Token verification failures. Expiry is distinguished from structural
	// or signature problems so callers can surface different messages.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)
