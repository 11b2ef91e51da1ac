// internal/status/constants.go
package status

// Status is the outcome of the latest acquisition cycle.
// Codes match the PLC driver contract and MUST NOT change.
type Status int8

// NotAttempted is the initial state before any acquisition.
const NotAttempted Status = -1

// Ok means every channel was read in the cycle.
const Ok Status = 0

// ReadError means a read failed while the client stayed connected.
const ReadError Status = 1

// Disconnected means a read failed and the client lost its connection.
const Disconnected Status = 2

// ---- LIMITS ----

// MaxSecondsInError caps the error duration counter; it never wraps.
const MaxSecondsInError = 65535

func (s Status) String() string {
	switch s {
	case NotAttempted:
		return "not_attempted"
	case Ok:
		return "ok"
	case ReadError:
		return "read_error"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Code returns the numeric status code.
func (s Status) Code() int {
	return int(s)
}

// Failed reports whether s is an error outcome.
func (s Status) Failed() bool {
	return s == ReadError || s == Disconnected
}
