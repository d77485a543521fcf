package questionnaire

import (
	"errors"
	"fmt"
)

var (
	// ErrAnswerRequired means a required question has no usable answer.
	ErrAnswerRequired = errors.New("an answer is required")
	// ErrInvalidFormat means a text answer does not match its pattern.
	ErrInvalidFormat = errors.New("answer does not match the expected format")
	// ErrUnknownQuestion means an answer was set for an id not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question")
)

// ValidationError ties a validation failure to the question that raised it.
type ValidationError struct {
	QuestionID string
	Label      string
	Err        error
}

func (e *ValidationError) Error() string {
	name := e.Label
	if name == "" {
		name = e.QuestionID
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
