// internal/status/snapshot.go
package status

import "time"

// Snapshot is the health view derived from successive acquisition outcomes.
// It holds no memory of the past beyond the current state.
type Snapshot struct {
	Status              Status     `json:"status"`
	Code                int        `json:"code"`
	Since               time.Time  `json:"since"`
	LastAttempt         time.Time  `json:"last_attempt"`
	ErrorSince          *time.Time `json:"error_since,omitempty"`
	ConsecutiveFailures uint32     `json:"consecutive_failures"`
	SecondsInError      uint16     `json:"seconds_in_error"`
}

// NewSnapshot returns the boot state.
func NewSnapshot() Snapshot {
	return Snapshot{Status: NotAttempted, Code: NotAttempted.Code()}
}

// Observe folds one acquisition outcome into s and returns the new snapshot.
// Pure: no IO, no clock reads.
func Observe(s Snapshot, st Status, at time.Time) Snapshot {
	if s.Status != st {
		s.Status = st
		s.Code = st.Code()
		s.Since = at
	}
	s.LastAttempt = at

	if !st.Failed() {
		// Recovery resets the error counters.
		s.ErrorSince = nil
		s.ConsecutiveFailures = 0
		s.SecondsInError = 0
		return s
	}

	if s.ConsecutiveFailures == 0 || s.ErrorSince == nil {
		first := at
		s.ErrorSince = &first
	}
	s.ConsecutiveFailures++

	secs := at.Sub(*s.ErrorSince) / time.Second
	if secs > MaxSecondsInError {
		secs = MaxSecondsInError
	}
	if secs < 0 {
		secs = 0
	}
	s.SecondsInError = uint16(secs)

	return s
}
