// internal/api/server_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/triga-plc/internal/acquire"
	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/record"
	"github.com/tamzrod/triga-plc/internal/status"
)

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func cycle(t *testing.T, st status.Status, at time.Time, clin float64) acquire.Cycle {
	t.Helper()
	raw := record.New().Set(channel.CLin, clin)
	raw.Status = st
	raw.Time = at

	conv, err := calib.ConvertRecord(raw, calib.Defaults())
	require.NoError(t, err)
	return acquire.Cycle{Raw: raw, Converted: conv}
}

func TestHealthz(t *testing.T) {
	srv := NewServer(NewStore(), calib.Defaults(), "s-1")

	w := get(t, srv.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRecord_UnavailableBeforeFirstCycle(t *testing.T) {
	srv := NewServer(NewStore(), calib.Defaults(), "s-1")

	w := get(t, srv.Handler(), "/api/v1/record")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecord_ConvertedAndRaw(t *testing.T) {
	store := NewStore()
	srv := NewServer(store, calib.Defaults(), "s-1")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.Update(cycle(t, status.Ok, at, 8145))

	var body struct {
		Status   string             `json:"status"`
		Code     int                `json:"code"`
		Channels map[string]float64 `json:"channels"`
	}

	w := get(t, srv.Handler(), "/api/v1/record")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 0, body.Code)
	assert.InDelta(t, 2.375, body.Channels["CLin"], 1e-9)
	assert.Len(t, body.Channels, channel.Count)

	w = get(t, srv.Handler(), "/api/v1/record?raw=true")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8145.0, body.Channels["CLin"])
}

func TestStatus_TracksFailures(t *testing.T) {
	store := NewStore()
	srv := NewServer(store, calib.Defaults(), "s-1")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.Update(cycle(t, status.ReadError, at, -1))
	store.Update(cycle(t, status.Disconnected, at.Add(2*time.Second), -1))

	var body statusResponse
	w := get(t, srv.Handler(), "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "s-1", body.Session)
	assert.Equal(t, status.Disconnected, body.Health.Status)
	assert.Equal(t, 2, body.Health.Code)
	assert.Equal(t, uint32(2), body.Health.ConsecutiveFailures)
	assert.Equal(t, uint16(2), body.Health.SecondsInError)
}

func TestCalibration(t *testing.T) {
	set, err := calib.Defaults().With(channel.SRadPoc, calib.Logarithmic{A: 3, B: 0.5})
	require.NoError(t, err)

	srv := NewServer(NewStore(), set, "s-1")

	w := get(t, srv.Handler(), "/api/v1/calibration")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	got, err := calib.Parse(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, set, got)
}
