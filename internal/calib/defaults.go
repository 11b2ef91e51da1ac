// internal/calib/defaults.go
package calib

import "github.com/tamzrod/triga-plc/internal/channel"

// Uncalibrated placeholders. A channel still carrying one of these has never
// been calibrated and its converted value is meaningless.
var (
	UncalibratedLinear      = Linear{X0: 0, X1: 1, Y0: -2, Y1: -2}
	UncalibratedLogarithmic = Logarithmic{A: -2, B: 0}
	UncalibratedReciprocal  = Reciprocal{K: 4096, L: 0}
)

// Calibrated factory defaults of the reactor instrumentation.
var factory = map[channel.Channel]Model{
	channel.BarraReg: Linear{X0: 262, X1: 1580, Y0: 151, Y1: 902},
	channel.BarraCon: Linear{X0: 312, X1: 1739, Y0: 162, Y1: 900},
	channel.BarraSeg: Linear{X0: 301, X1: 1593, Y0: 172, Y1: 900},
	channel.CLogALin: Linear{X0: 820, X1: 4098, Y0: 10000, Y1: 100000},
	channel.CLogALog: Logarithmic{A: 0.0025, B: 0.000990098877},
	channel.CLin:     Linear{X0: 14, X1: 8145, Y0: 0, Y1: 2.375},
}

// Defaults returns the set used when no calibration file is given.
func Defaults() Set {
	var s Set
	for _, c := range channel.All() {
		if m, ok := factory[c]; ok {
			s.models[c] = m
			continue
		}
		switch c.Shape() {
		case channel.ShapeLinear:
			s.models[c] = UncalibratedLinear
		case channel.ShapeLogarithmic:
			s.models[c] = UncalibratedLogarithmic
		case channel.ShapeReciprocal:
			s.models[c] = UncalibratedReciprocal
		}
	}
	return s
}

// Uncalibrated reports whether c still uses its placeholder model.
func (s Set) Uncalibrated(c channel.Channel) bool {
	switch m := s.Model(c).(type) {
	case Linear:
		return m == UncalibratedLinear
	case Logarithmic:
		return m == UncalibratedLogarithmic
	case Reciprocal:
		return m == UncalibratedReciprocal
	default:
		return false
	}
}
