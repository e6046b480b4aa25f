package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned when scaffolding into a path that is already present.
	ErrAlreadyExists = errors.New("already exists")
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("format error")
	// ErrThemeNotFound matches every *ThemeNotFoundError.
	ErrThemeNotFound = errors.New("theme not found")
)

// IOError wraps a filesystem failure with the operation and path that caused it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports a malformed post file.
type FormatError struct {
	Path string
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("post(%s) %s", e.Path, e.Msg)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ThemeNotFoundError is returned when a theme is neither an override
// directory nor a built-in bundle.
type ThemeNotFoundError struct {
	Name string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("theme(%s) not found", e.Name)
}

func (e *ThemeNotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}

// NewIOError wraps err as an *IOError.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
