package jot

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEnd      = errors.New("unexpected end of input")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrNumberRange        = errors.New("number out of range")
	ErrIllegalEscape      = errors.New("illegal escape sequence")
	ErrIllegalCharacter   = errors.New("illegal character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrExpectedValue      = errors.New("value expected")
	ErrExpectedMember     = errors.New("member expected")
	ErrTrailing           = errors.New("trailing content after value")
	ErrDepth              = errors.New("nesting too deep")
)

// ParseError carries the reason a parse failed together with the position
// of the offending input. The wrapped sentinel can be tested for with
// errors.Is.
type ParseError struct {
	Err      error
	Expected string
	Actual   string

	Position
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Position, e.Err)
	if e.Expected != "" {
		msg = fmt.Sprintf("%s: expected %s, got %s", msg, e.Expected, e.Actual)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func syntaxError(pos Position, err error) error {
	return &ParseError{
		Err:      err,
		Position: pos,
	}
}

func tokenError(pos Position, err error, expected, actual string) error {
	return &ParseError{
		Err:      err,
		Expected: expected,
		Actual:   actual,
		Position: pos,
	}
}
