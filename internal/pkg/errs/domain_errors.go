package errs

import "errors"

// Categories shared by every layer. Concrete errors are marked with one of
// these and handlers map them to status codes.
var (
	ErrValidation             = errors.New("validation error")
	ErrForbidden              = errors.New("forbidden")
	ErrNotFound               = errors.New("not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrSlotUnavailable        = errors.New("slot unavailable")
	ErrUpstreamFailure        = errors.New("upstream failure")
)

// Validation builds a message-only error in the validation category.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}
