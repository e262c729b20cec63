package domain

import (
	"fmt"
	"time"
)

// User-specific validation errors. Both wrap ErrValidation so callers can
// classify them without matching each sentinel.
var (
	// ErrEmptyUsername is returned when a username is empty.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when an email is empty.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)
)

// Default preference values applied when the client omits them.
const (
	DefaultTheme    = "light"
	DefaultLanguage = "es"
	DefaultTimezone = "UTC"
)

// Preferences holds per-user display settings. The timezone preference is
// stored but not applied to timestamp formatting.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

// DefaultPreferences returns a Preferences with every field defaulted.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    DefaultTheme,
		Language: DefaultLanguage,
		Timezone: DefaultTimezone,
	}
}

// Normalize fills any empty preference field with its default value.
func (p *Preferences) Normalize() {
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.Timezone == "" {
		p.Timezone = DefaultTimezone
	}
}

// User represents the account that owns categories and tasks. The system
// supports a single meaningful account at a time; its ID is issued by the
// store.
type User struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FullName    *string     `json:"full_name"`
	CreatedAt   time.Time   `json:"created_at"`
	Preferences Preferences `json:"preferences"`
}

// NewUser creates a User with the given attributes and a creation timestamp.
// The ID is zero until the store assigns one. Nil preferences take the
// defaults; partial preferences are filled per field.
// Returns an error if validation fails.
func NewUser(username, email string, fullName *string, prefs *Preferences) (*User, error) {
	p := DefaultPreferences()
	if prefs != nil {
		p = *prefs
		p.Normalize()
	}

	user := &User{
		Username:    username,
		Email:       email,
		FullName:    fullName,
		CreatedAt:   time.Now().UTC(),
		Preferences: p,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	// Email format is deliberately not checked beyond presence.
	if u.Email == "" {
		return ErrEmptyEmail
	}

	return nil
}
