// internal/calib/fields.go
package calib

import "github.com/tamzrod/triga-plc/internal/channel"

// Field keys per model family, in file order.
var shapeKeys = map[channel.Shape][]string{
	channel.ShapeLinear:      {"x0", "x1", "y0", "y1"},
	channel.ShapeLogarithmic: {"A", "B"},
	channel.ShapeReciprocal:  {"K", "L"},
}

func hasKey(sh channel.Shape, key string) bool {
	for _, k := range shapeKeys[sh] {
		if k == key {
			return true
		}
	}
	return false
}

// field returns the coefficient named key of m.
func field(m Model, key string) float64 {
	switch m := m.(type) {
	case Linear:
		switch key {
		case "x0":
			return m.X0
		case "x1":
			return m.X1
		case "y0":
			return m.Y0
		case "y1":
			return m.Y1
		}
	case Logarithmic:
		switch key {
		case "A":
			return m.A
		case "B":
			return m.B
		}
	case Reciprocal:
		switch key {
		case "K":
			return m.K
		case "L":
			return m.L
		}
	}
	return 0
}

// withField returns m with the coefficient named key set to v.
// Unknown keys leave m unchanged.
func withField(m Model, key string, v float64) Model {
	switch m := m.(type) {
	case Linear:
		switch key {
		case "x0":
			m.X0 = v
		case "x1":
			m.X1 = v
		case "y0":
			m.Y0 = v
		case "y1":
			m.Y1 = v
		}
		return m
	case Logarithmic:
		switch key {
		case "A":
			m.A = v
		case "B":
			m.B = v
		}
		return m
	case Reciprocal:
		switch key {
		case "K":
			m.K = v
		case "L":
			m.L = v
		}
		return m
	}
	return m
}
