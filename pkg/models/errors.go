package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameNotUnique  = errors.New("this username is already taken")
	ErrUsernameLength     = errors.New("the username must be between 3 and 64 characters long")
	ErrUsernameWhitespace = errors.New("the username must not contain whitespace")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	ErrNothingToUpdate    = errors.New("no username or password was given, there is nothing to update")
	ErrDailyRecordNoDate  = errors.New("a daily record needs a date")
)
