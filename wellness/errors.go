package wellness

import "fmt"

var (
	// ErrUserNotFound is returned when no user exists for the given id or
	// username.
	ErrUserNotFound = fmt.Errorf("user not found")
)
