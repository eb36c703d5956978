package domain

import "fmt"

// Common validation errors for User
var (
	ErrEmptyUserName     = fmt.Errorf("%w: user name cannot be empty", ErrValidation)
	ErrEmptyUserPassword = fmt.Errorf("%w: user password cannot be empty", ErrValidation)
)

// User represents a registered owner of ad postings.
//
// NOTE: the password is stored verbatim, without hashing. This mirrors the
// behavior of the system being reimplemented and is a known, documented gap;
// see DESIGN.md before changing it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"-"` // never expose the password in JSON
}

// NewUser creates a new User with the given name and password.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewUser(name, password string) (*User, error) {
	user := &User{
		Name:     name,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Password == "" {
		return ErrEmptyUserPassword
	}

	return nil
}
