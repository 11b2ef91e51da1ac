// internal/record/record_test.go
package record

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/status"
)

func TestNew_AllSentinel(t *testing.T) {
	r := New()

	assert.Equal(t, status.NotAttempted, r.Status)
	assert.True(t, r.Time.IsZero())
	for _, v := range r.Channels() {
		assert.Equal(t, Sentinel, v.Value, v.Name)
	}
	assert.Equal(t, -1, r.Scale())
}

func TestSet_CopyOut(t *testing.T) {
	a := New()
	b := a.Set(channel.CLin, 14)

	assert.Equal(t, Sentinel, a.Get(channel.CLin))
	assert.Equal(t, 14.0, b.Get(channel.CLin))
}

func TestMarshalJSON_OrderedChannels(t *testing.T) {
	r := New()
	r.Status = status.Ok
	r.Time = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r = r.Set(channel.BarraReg, 262).Set(channel.SRadAer, math.Inf(1))

	b, err := json.Marshal(r)
	require.NoError(t, err)

	s := string(b)
	assert.True(t, strings.HasPrefix(s, `{"status":"ok","code":0,"time":"2024-05-01T10:00:00Z","channels":{"BarraReg":262,`), s)
	assert.Contains(t, s, `"SRadAer":null`)
	assert.True(t, strings.HasSuffix(s, `"CLinScale":-1}}`), s)

	// must stay valid JSON
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Len(t, out["channels"], channel.Count)
}

func TestMarshalJSON_NeverAcquired(t *testing.T) {
	b, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"status":"not_attempted","code":-1,"time":null`)
}
