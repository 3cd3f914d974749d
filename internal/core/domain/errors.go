package domain

import "errors"

var (
	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is an internal lookup miss, never exposed on login.
	ErrUserNotFound = errors.New("user not found")

	// ErrTodoNotFound means an update matched zero rows: the todo does not
	// exist or belongs to a different user.
	ErrTodoNotFound = errors.New("todo not found")
)
