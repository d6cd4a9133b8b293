package leads

import "errors"

var (
	// ErrNameRequired is returned when the name is empty after trimming.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired is returned when the email is empty after trimming.
	ErrEmailRequired = errors.New("email is required")
)
