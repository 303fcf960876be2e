package auth

import "errors"

var (
	ErrMissingToken       = errors.New("the request has no bearer token in the Authorization header")
	ErrInvalidToken       = errors.New("the bearer token is invalid or expired")
	ErrInvalidCredentials = errors.New("username or password is wrong")
	ErrForbidden          = errors.New("you can only access your own resources")
	ErrTooManyRequests    = errors.New("too many login attempts, please try again later")
)
