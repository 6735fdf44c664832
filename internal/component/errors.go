package component

import "errors"

// UserError marks a failure caused by the user's configuration rather than by
// the system. The entrypoint maps these to a distinct exit code so the
// hosting platform can present them as actionable.
type UserError struct {
	cause error
}

// NewUserError wraps the given error as a user-facing error.
func NewUserError(cause error) *UserError {
	return &UserError{cause: cause}
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// IsUserError reports whether the given error is, or wraps, a UserError.
func IsUserError(err error) bool {
	var userError *UserError

	return errors.As(err, &userError)
}
