// Package errorutil defines the error taxonomy shared by the calendar packages
// and small helpers for validation, file handling and error logging.
package errorutil

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrFormat          = errors.New("invalid format")
	ErrRange           = errors.New("value out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConversion      = errors.New("date conversion failed")
)

// FormatError reports input that does not match the required lexical pattern.
type FormatError struct {
	Input    string
	Expected string
	Err      error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid date format %q", e.Input)
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError reports a year, month or day outside the supported bounds, or a
// BS date that does not exist in the calendar table.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
	Msg   string
}

func (e *RangeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s %d out of range, must be between %d - %d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// NewRangeError builds a RangeError for field with the allowed bounds.
func NewRangeError(field string, value, min, max int) *RangeError {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

// InvalidArgumentError reports a bad enum-like argument such as an unknown
// diff unit or a weekday index outside 0-6.
type InvalidArgumentError struct {
	Argument string
	Value    any
	Msg      string
}

func (e *InvalidArgumentError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Argument, e.Value, e.Msg)
	}
	return fmt.Sprintf("invalid %s %v", e.Argument, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// ConversionError wraps any lower level failure raised while converting
// between AD and BS at the public boundary functions.
type ConversionError struct {
	Op    string
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to convert %s %q", e.Op, e.Input)
	}
	return fmt.Sprintf("failed to convert %s %q: %v", e.Op, e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
