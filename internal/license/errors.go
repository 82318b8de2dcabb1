package license

import (
	"errors"
	"fmt"
)

// Sentinel errors for license operations.
var (
	// ErrMissingField indicates a required input field was empty at generation time.
	ErrMissingField = errors.New("license: required field is empty")

	// ErrUnknownLicense indicates an identifier outside the built-in template set.
	ErrUnknownLicense = errors.New("license: unknown license identifier")

	// ErrUnknownChoice indicates a preference answer that is not one of the fixed choices.
	ErrUnknownChoice = errors.New("license: unknown preference choice")

	// ErrInvalidTemplate indicates a built-in template failed its load-time checks.
	ErrInvalidTemplate = errors.New("license: invalid template")
)

// FieldAuthorName is the field reported when the author name is missing.
const FieldAuthorName = "author_name"

// MissingFieldError is returned when a required input is empty. No license
// text is produced when it occurs.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Is reports a match against ErrMissingField so callers can use errors.Is.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
