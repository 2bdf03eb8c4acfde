package numwords

import "errors"

// ErrInvalidInput is the category of every validation failure. Match it with errors.Is.
var ErrInvalidInput = errors.New("numwords: invalid input")

// InvalidInputError carries the human-readable reason a conversion was rejected.
// Its Error method returns the reason only; errors.Is reports it as ErrInvalidInput.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(msg string) error {
	return &InvalidInputError{Message: msg}
}
