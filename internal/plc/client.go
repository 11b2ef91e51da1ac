// internal/plc/client.go
package plc

import "errors"

// Client is the field-bus access the acquisition needs from the PLC.
// Implementations are not required to be re-entrant.
type Client interface {
	Connect() error                         // failures wrap ErrConnection
	Disconnect() error                      //
	ReadScalar(addr uint16) (uint16, error) // failures wrap ErrRead
	IsConnected() bool
}

var (
	// ErrConnection indicates a failed connect attempt.
	ErrConnection = errors.New("plc: connection failed")

	// ErrRead indicates a failed scalar read.
	ErrRead = errors.New("plc: read failed")

	// ErrDisconnected indicates the client has no live connection.
	ErrDisconnected = errors.New("plc: disconnected")
)
