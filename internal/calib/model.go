// internal/calib/model.go
package calib

import (
	"errors"

	"github.com/tamzrod/triga-plc/internal/channel"
)

// Model is one calibration function. It is implemented only by Linear,
// Logarithmic and Reciprocal.
type Model interface {
	Shape() channel.Shape
	model()
}

// Linear is the affine map through (X0, Y0) and (X1, Y1).
type Linear struct {
	X0, X1, Y0, Y1 float64
}

// Logarithmic maps raw to A * 10^(B*raw).
type Logarithmic struct {
	A, B float64
}

// Reciprocal maps raw to L / (raw - K); used by period channels.
type Reciprocal struct {
	K, L float64
}

func (Linear) Shape() channel.Shape      { return channel.ShapeLinear }
func (Logarithmic) Shape() channel.Shape { return channel.ShapeLogarithmic }
func (Reciprocal) Shape() channel.Shape  { return channel.ShapeReciprocal }

func (Linear) model()      {}
func (Logarithmic) model() {}
func (Reciprocal) model()  {}

// Set holds one model per channel. The model shape of every channel is fixed
// by channel.Shape; only the coefficients vary. A Set is immutable once
// built and safe for concurrent reads.
type Set struct {
	models [channel.Count]Model
}

// Model returns the model of c, or nil for channels without a conversion.
func (s Set) Model(c channel.Channel) Model {
	if !c.Valid() {
		return nil
	}
	return s.models[c]
}

// Linear returns the linear model of c. ok is false if c is not linear.
func (s Set) Linear(c channel.Channel) (m Linear, ok bool) {
	m, ok = s.Model(c).(Linear)
	return m, ok
}

// Logarithmic returns the logarithmic model of c.
func (s Set) Logarithmic(c channel.Channel) (m Logarithmic, ok bool) {
	m, ok = s.Model(c).(Logarithmic)
	return m, ok
}

// Reciprocal returns the reciprocal model of c.
func (s Set) Reciprocal(c channel.Channel) (m Reciprocal, ok bool) {
	m, ok = s.Model(c).(Reciprocal)
	return m, ok
}

// With returns a copy of s with the model of c replaced.
// The model must match the channel's shape.
func (s Set) With(c channel.Channel, m Model) (Set, error) {
	if !c.Valid() {
		return s, ErrUnknownChannel
	}
	if m == nil || m.Shape() != c.Shape() {
		return s, &CalibrationError{Channel: c, Err: ErrShapeMismatch}
	}
	s.models[c] = m
	return s, nil
}

// Validate reports every linear model whose reference points coincide.
func (s Set) Validate() error {
	var errs []error
	for _, c := range channel.All() {
		m, ok := s.Linear(c)
		if !ok {
			continue
		}
		if m.X1 == m.X0 {
			errs = append(errs, &CalibrationError{Channel: c, Err: ErrDegenerateLinear})
		}
	}
	return errors.Join(errs...)
}
