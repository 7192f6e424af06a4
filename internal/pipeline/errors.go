package pipeline

import (
	"errors"
	"fmt"

	"zipcode-jp/internal/models"
)

var (
	// ErrFormatConsistency reports input that contradicts the multi-row town layout.
	ErrFormatConsistency = errors.New("pipeline: format consistency violation")
	// ErrMalformedField reports a field value the pipeline cannot interpret.
	ErrMalformedField = errors.New("pipeline: malformed field")
)

// FragmentMismatchError is returned when a row inside an open town fragment
// carries a different zip code than the row that opened it.
type FragmentMismatchError struct {
	Row     int // 1-based position of the offending row
	OpenRow int // 1-based position of the row that opened the fragment
	Open    string
	Got     string
}

func (e *FragmentMismatchError) Error() string {
	return fmt.Sprintf("pipeline: row %d: zip code %s is not %s (fragment opened at row %d)", e.Row, e.Got, e.Open, e.OpenRow)
}

func (e *FragmentMismatchError) Is(target error) bool {
	return target == ErrFormatConsistency
}

// MalformedFieldError reports a record whose field value cannot be processed.
type MalformedFieldError struct {
	Row    int
	Field  models.Field
	Value  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("pipeline: row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
}

func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}
