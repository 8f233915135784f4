package models

import (
	"errors"
	"fmt"
)

// Виды ошибок ядра. Все они локальные и восстановимые.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("problem not found")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrMissingAssignment = errors.New("missing department assignment")
	ErrInvalidMutation   = errors.New("invalid mutation")
	ErrCollaborator      = errors.New("collaborator error")
)

// TransitionError описывает запрещенный переход между статусами
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}
