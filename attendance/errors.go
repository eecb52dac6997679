package attendance

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons carried by InvalidSubjectError.
var (
	ErrBlankName        = errors.New("subject name is blank")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrInvalidTotal     = errors.New("total classes must be at least 1")
	ErrUnknownSubject   = errors.New("subject not found")
)

// DecodeError reports a serialized store that could not be parsed.
// It is recoverable: the store it was loaded into is left empty.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding subjects: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidSubjectError reports a subject that cannot be added or updated.
type InvalidSubjectError struct {
	Name   string
	Reason error
}

func (e *InvalidSubjectError) Error() string {
	if e.Name == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Name)
}

func (e *InvalidSubjectError) Unwrap() error {
	return e.Reason
}

// RangeError reports a missed count outside [0, Total].
type RangeError struct {
	Name   string
	Missed int
	Total  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("missed classes for %q must be between 0 and %d, got %d", e.Name, e.Total, e.Missed)
}
