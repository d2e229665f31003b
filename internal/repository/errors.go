// Package repository holds the in-memory stores for games and users and
// the sentinel errors shared across them. These sentinels allow handlers
// to distinguish failure scenarios: ErrGameNotFound and ErrUserNotFound
// signal a normal "absent" outcome and should map to HTTP 404, while the
// uniqueness errors should map to HTTP 409.
package repository

import "errors"

// ErrGameNotFound is returned when a game id does not exist in the store.
var ErrGameNotFound = errors.New("game not found")

// ErrUserNotFound is returned when a user lookup matches nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned by CreateUser when the username is taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned by CreateUser when the email is taken.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned on a failed login. It deliberately
// does not say whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
