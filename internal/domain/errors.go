package domain

import (
	"errors"
	"fmt"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

var (
	// ErrNoMatchFound means resolution completed but no counterpart file exists.
	ErrNoMatchFound = errors.New("no match found")
	// ErrUnknownCategory means a file could not be classified or a category
	// name is not registered.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrMalformedConfiguration means the category registry is invalid.
	ErrMalformedConfiguration = errors.New("malformed configuration")
	// ErrEmptyPath means an empty file path was given.
	ErrEmptyPath = errors.New("empty path")
)

// CategoryError ties a failure to the category that caused it.
type CategoryError struct {
	Name   m.CategoryName
	Reason string
	Err    error
}

func (e *CategoryError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Reason)
	}

	return fmt.Sprintf("%v: category %q: %s", e.Err, e.Name, e.Reason)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

func malformed(name m.CategoryName, format string, args ...interface{}) error {
	return &CategoryError{Name: name, Reason: fmt.Sprintf(format, args...), Err: ErrMalformedConfiguration}
}

func unknownCategory(name m.CategoryName, format string, args ...interface{}) error {
	return &CategoryError{Name: name, Reason: fmt.Sprintf(format, args...), Err: ErrUnknownCategory}
}
