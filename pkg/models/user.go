package models

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 64
	PasswordMinLength = 8
)

type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex" example:"greenhouse"` // Name used to log in and shown in rankings
	PasswordHash string `json:"-"`
}

func (User) Self() string {
	return "User"
}

// BeforeSave trims the username and validates it.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	return ValidateUsername(u.Username)
}

// ValidateUsername checks length and whitespace of a username.
func ValidateUsername(name string) error {
	length := utf8.RuneCountInString(name)
	if length < UsernameMinLength || length > UsernameMaxLength {
		return ErrUsernameLength
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrUsernameWhitespace
	}

	return nil
}

// ValidatePassword checks the password policy.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return ErrPasswordTooShort
	}
	return nil
}

// UserUpdate holds the fields of a user that can be changed.
// Nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.PasswordHash == nil
}
