package domain

import "errors"

// MinPasswordLength is the minimum accepted plaintext password length at registration.
const MinPasswordLength = 3

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username is taken")
var ErrMissingCredentials = errors.New("username and/or password cannot be blank")
var ErrPasswordTooShort = errors.New("password is shorter than the minimum allowed length (3)")
var ErrInvalidCredentials = errors.New("invalid username/password combination")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models a registered account.
//
// Blogs is a back-reference only: the user does not own the blog documents'
// lifetime, it merely indexes the ids of blogs created under this account.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Name         string   `json:"name,omitempty"`
	PasswordHash string   `json:"-"`
	Blogs        []string `json:"blogs"`
}
