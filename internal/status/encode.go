// internal/status/encode.go
package status

import "fmt"

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "not_attempted":
		*s = NotAttempted
	case "ok":
		*s = Ok
	case "read_error":
		*s = ReadError
	case "disconnected":
		*s = Disconnected
	default:
		return fmt.Errorf("status: unknown status %q", string(b))
	}
	return nil
}
