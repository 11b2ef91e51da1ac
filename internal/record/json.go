// internal/record/json.go
package record

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// MarshalJSON encodes the record with channels as an object in acquisition
// order. Non-finite values are encoded as null.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	st, err := json.Marshal(r.Status)
	if err != nil {
		return nil, err
	}

	buf.WriteString(`{"status":`)
	buf.Write(st)
	buf.WriteString(`,"code":`)
	buf.WriteString(strconv.Itoa(r.Status.Code()))
	buf.WriteString(`,"time":`)
	if r.Time.IsZero() {
		buf.WriteString("null")
	} else {
		buf.WriteString(strconv.Quote(r.Time.Format(time.RFC3339Nano)))
	}
	buf.WriteString(`,"channels":{`)

	for i, v := range r.Channels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(v.Name))
		buf.WriteByte(':')
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	}

	buf.WriteString("}}")
	return buf.Bytes(), nil
}
