// internal/channel/channel.go
package channel

// Channel identifies one physical measurement point on the reactor PLC.
// The set and its order are fixed: acquisition reads channels in this order.
type Channel int

const (
	BarraReg   Channel = iota // regulating rod position
	BarraCon                  // shim (control) rod position
	BarraSeg                  // safety rod position
	CLin                      // linear power channel
	CPer                      // percent power channel
	CLogALin                  // log channel, linear acquisition
	CLogALog                  // log channel, log acquisition
	CLogAPer                  // log channel, period acquisition
	CParALin                  // startup channel, linear acquisition
	CParALog                  // startup channel, log acquisition
	CParAPer                  // startup channel, period acquisition
	CLogARea                  // log channel, reactivity meter acquisition
	SRadAre                   // area radiation monitor
	SRadEntPri                // radiation, primary inlet
	SRadPoc                   // radiation, reactor pool
	SRadRes                   // radiation, resin column
	SRadSaiSec                // radiation, secondary outlet
	SRadAer                   // aerosol radiation monitor
	SVasPri                   // primary cooling flow
	CLinScale                 // linear channel range selector (integer)
)

// Count is the number of channels.
const Count = int(CLinScale) + 1

// Shape is the conversion family a channel is calibrated with.
// It is a static property of the channel, never configurable.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeLinear
	ShapeLogarithmic
	ShapeReciprocal
)

func (s Shape) String() string {
	switch s {
	case ShapeLinear:
		return "linear"
	case ShapeLogarithmic:
		return "logarithmic"
	case ShapeReciprocal:
		return "reciprocal"
	default:
		return "none"
	}
}

type info struct {
	name  string
	shape Shape
	addr  uint16 // %IW input register
	desc  string
}

// ---- CHANNEL TABLE ----

var table = [Count]info{
	BarraReg:   {"BarraReg", ShapeLinear, 5, "regulating rod position"},
	BarraCon:   {"BarraCon", ShapeLinear, 6, "shim rod position"},
	BarraSeg:   {"BarraSeg", ShapeLinear, 7, "safety rod position"},
	CLin:       {"CLin", ShapeLinear, 25, "linear channel"},
	CPer:       {"CPer", ShapeLinear, 26, "percent channel"},
	CLogALin:   {"CLogALin", ShapeLinear, 18, "log channel, linear acquisition"},
	CLogALog:   {"CLogALog", ShapeLogarithmic, 17, "log channel, log acquisition"},
	CLogAPer:   {"CLogAPer", ShapeReciprocal, 19, "log channel, period acquisition"},
	CParALin:   {"CParALin", ShapeLinear, 14, "startup channel, linear acquisition"},
	CParALog:   {"CParALog", ShapeLogarithmic, 15, "startup channel, log acquisition"},
	CParAPer:   {"CParAPer", ShapeReciprocal, 16, "startup channel, period acquisition"},
	CLogARea:   {"CLogARea", ShapeLinear, 20, "log channel, reactivity meter acquisition"},
	SRadAre:    {"SRadAre", ShapeLogarithmic, 27, "area radiation"},
	SRadEntPri: {"SRadEntPri", ShapeLogarithmic, 28, "radiation, primary inlet"},
	SRadPoc:    {"SRadPoc", ShapeLogarithmic, 29, "radiation, reactor pool"},
	SRadRes:    {"SRadRes", ShapeLogarithmic, 30, "radiation, resin column"},
	SRadSaiSec: {"SRadSaiSec", ShapeLogarithmic, 31, "radiation, secondary outlet"},
	SRadAer:    {"SRadAer", ShapeLogarithmic, 32, "aerosol radiation"},
	SVasPri:    {"SVasPri", ShapeLinear, 49, "primary cooling flow"},
	CLinScale:  {"CLinScale", ShapeNone, 0, "linear channel range"},
}

var byName = func() map[string]Channel {
	m := make(map[string]Channel, Count)
	for i := range table {
		m[table[i].name] = Channel(i)
	}
	return m
}()

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	return c >= 0 && int(c) < Count
}

func (c Channel) String() string {
	if !c.Valid() {
		return "Channel(?)"
	}
	return table[c].name
}

// Shape returns the fixed conversion family of c.
func (c Channel) Shape() Shape {
	if !c.Valid() {
		return ShapeNone
	}
	return table[c].shape
}

// Description is a short human label for c.
func (c Channel) Description() string {
	if !c.Valid() {
		return ""
	}
	return table[c].desc
}

// All returns every channel in acquisition order.
func All() []Channel {
	out := make([]Channel, Count)
	for i := range out {
		out[i] = Channel(i)
	}
	return out
}

// Parse looks a channel up by its exact (case-sensitive) name.
func Parse(name string) (Channel, bool) {
	c, ok := byName[name]
	return c, ok
}
