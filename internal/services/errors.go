package services

import "errors"

// Sentinels handlers translate into HTTP statuses. Anything a handler
// does not recognize is logged and reported as a generic 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet criteria")
	ErrNotOwner           = errors.New("not the resource owner")
)
