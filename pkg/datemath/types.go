package datemath

import (
	"errors"
	"fmt"
)

var (
	ErrDateFormat     = errors.New("unrecognized date format")
	ErrTimeFormat     = errors.New("unrecognized time format")
	ErrDateTimeFormat = errors.New("unrecognized date/time format")
	ErrInvalidZone    = errors.New("invalid timezone")
)

// ParseError reports the input text that no supported layout accepted.
type ParseError struct {
	Err   error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Option configures a Resolver.
type Option func(*Resolver)
