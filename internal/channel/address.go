// internal/channel/address.go
package channel

import "fmt"

// Addresses maps each channel to the PLC input register it is read from.
type Addresses [Count]uint16

// DefaultAddresses returns the authoritative register map of the PLC program.
func DefaultAddresses() Addresses {
	var a Addresses
	for i := range table {
		a[i] = table[i].addr
	}
	return a
}

// Of returns the register address of c.
func (a Addresses) Of(c Channel) uint16 {
	return a[c]
}

// With returns a copy of a with the named channels moved to new registers.
// Unknown channel names are an error.
func (a Addresses) With(overrides map[string]uint16) (Addresses, error) {
	out := a
	for name, addr := range overrides {
		c, ok := Parse(name)
		if !ok {
			return a, fmt.Errorf("channel: unknown channel %q", name)
		}
		out[c] = addr
	}
	return out, nil
}

// ---- RAW DECODING ----

// DecodeAnalog interprets an input register as the signed 16-bit value the
// PLC analog modules produce.
func DecodeAnalog(raw uint16) float64 {
	return float64(int16(raw))
}

// DecodeScale extracts the linear channel range from the digital input word.
// Bits 0..2 hold the range selector, offset by two.
//
// The PLC driver this replaces computed raw & (0b111 - 2) due to operator
// precedence; the masked-then-offset form is used here instead.
func DecodeScale(raw uint16) int {
	return int(raw&0b111) - 2
}
