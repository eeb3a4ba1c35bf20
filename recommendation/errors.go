package recommendation

import "fmt"

var (
	// ErrNotFound is returned when no recommendation exists for the given id.
	ErrNotFound = fmt.Errorf("recommendation not found")
)
