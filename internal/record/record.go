// internal/record/record.go
package record

import (
	"time"

	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/status"
)

// Sentinel marks a channel value as "not read" or "read failed".
// It passes through calibration unchanged.
const Sentinel = -1.0

// Record is one acquisition snapshot: status, attempt time and one value per
// channel. It is a plain value; copies never share state.
type Record struct {
	Status status.Status
	Time   time.Time
	Values [channel.Count]float64
}

// New returns a record that has never been acquired.
func New() Record {
	r := Record{Status: status.NotAttempted}
	for i := range r.Values {
		r.Values[i] = Sentinel
	}
	return r
}

// Get returns the value of c.
func (r Record) Get(c channel.Channel) float64 {
	return r.Values[c]
}

// Set returns a copy of r with c set to v.
func (r Record) Set(c channel.Channel, v float64) Record {
	r.Values[c] = v
	return r
}

// Scale returns the linear channel range selector, or -1 when unread.
func (r Record) Scale() int {
	return int(r.Values[channel.CLinScale])
}

// Value is one named channel reading.
type Value struct {
	Channel channel.Channel
	Name    string
	Value   float64
}

// Channels lists every channel reading in acquisition order.
func (r Record) Channels() []Value {
	out := make([]Value, 0, channel.Count)
	for _, c := range channel.All() {
		out = append(out, Value{Channel: c, Name: c.String(), Value: r.Values[c]})
	}
	return out
}
