// Package apperror classifies failures that abort a build run.
package apperror

import (
	"errors"
	"fmt"
)

// Code is a stable identifier for a class of run failure.
type Code string

const (
	CodeFetchFailed             Code = "FETCH_FAILED"
	CodeDecompressFailed        Code = "DECOMPRESS_FAILED"
	CodeDecodeFailed            Code = "DECODE_FAILED"
	CodeParseFailed             Code = "PARSE_FAILED"
	CodeFormatInconsistent      Code = "FORMAT_INCONSISTENT"
	CodeMalformedField          Code = "MALFORMED_FIELD"
	CodeDirectoryRemovingFailed Code = "DIRECTORY_REMOVING_FAILED"
	CodeDirectoryMakingFailed   Code = "DIRECTORY_MAKING_FAILED"
	CodeFileSavingFailed        Code = "FILE_SAVING_FAILED"
	CodeDatabaseLoadFailed      Code = "DATABASE_LOAD_FAILED"
)

// Error is a classified failure with an optional remediation hint.
type Error struct {
	Code    Code
	Message string
	Hint    string
	Err     error
}

// New returns an Error wrapping err.
func New(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// WithHint sets the remediation hint and returns e.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Hint != "" {
		msg = fmt.Sprintf("%s. %s", msg, e.Hint)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
