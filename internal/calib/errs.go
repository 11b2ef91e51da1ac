// internal/calib/errs.go
package calib

import (
	"errors"
	"fmt"

	"github.com/tamzrod/triga-plc/internal/channel"
)

var (
	// ErrDegenerateLinear indicates a linear model with x0 == x1.
	ErrDegenerateLinear = errors.New("calib: linear model has x0 == x1")

	// ErrShapeMismatch indicates a model of the wrong family for a channel.
	ErrShapeMismatch = errors.New("calib: model shape does not match channel")

	// ErrUnknownChannel indicates a channel outside the fixed channel set.
	ErrUnknownChannel = errors.New("calib: unknown channel")

	// ErrBadNumber indicates a value token that is not a decimal number.
	ErrBadNumber = errors.New("calib: invalid number")

	// ErrMalformedLine indicates a key line without a value token.
	ErrMalformedLine = errors.New("calib: expected '<key> = <value>'")
)

// CalibrationError reports an unusable model for one channel.
type CalibrationError struct {
	Channel channel.Channel
	Err     error
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("calib: channel %s: %v", e.Channel, e.Err)
}

func (e *CalibrationError) Unwrap() error { return e.Err }

// ParseError reports a calibration file line that could not be applied.
type ParseError struct {
	Line    int
	Section string
	Key     string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("calib: line %d [%s] %s=%q: %v", e.Line, e.Section, e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
