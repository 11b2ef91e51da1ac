// internal/calib/convert.go
package calib

import (
	"errors"
	"math"

	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/record"
)

// ConvertLinear applies m to raw. The sentinel passes through unchanged.
func ConvertLinear(raw float64, m Linear) (float64, error) {
	if raw == record.Sentinel {
		return raw, nil
	}
	dx := m.X1 - m.X0
	if dx == 0 {
		return record.Sentinel, ErrDegenerateLinear
	}
	return raw*(m.Y1-m.Y0)/dx + (m.Y0*m.X1-m.Y1*m.X0)/dx, nil
}

// ConvertLogarithmic applies m to raw. The sentinel passes through unchanged.
func ConvertLogarithmic(raw float64, m Logarithmic) float64 {
	if raw == record.Sentinel {
		return raw
	}
	return m.A * math.Pow(10, m.B*raw)
}

// ConvertReciprocal applies m to raw. The sentinel passes through unchanged;
// raw == K converts to 0.
func ConvertReciprocal(raw float64, m Reciprocal) float64 {
	if raw == record.Sentinel {
		return raw
	}
	d := raw - m.K
	if d == 0 {
		return 0
	}
	return m.L / d
}

// Convert dispatches on the model family. A nil model passes raw through.
func Convert(raw float64, m Model) (float64, error) {
	switch m := m.(type) {
	case Linear:
		return ConvertLinear(raw, m)
	case Logarithmic:
		return ConvertLogarithmic(raw, m), nil
	case Reciprocal:
		return ConvertReciprocal(raw, m), nil
	default:
		return raw, nil
	}
}

// ConvertRecord converts every channel of raw with its model in s.
// Status and time are copied. A channel that cannot be converted is set to
// the sentinel and reported; the remaining channels are still converted.
func ConvertRecord(raw record.Record, s Set) (record.Record, error) {
	out := raw

	var errs []error
	for _, c := range channel.All() {
		v, err := Convert(raw.Values[c], s.Model(c))
		if err != nil {
			errs = append(errs, &CalibrationError{Channel: c, Err: err})
		}
		out.Values[c] = v
	}

	return out, errors.Join(errs...)
}
