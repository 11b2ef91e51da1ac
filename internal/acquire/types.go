// internal/acquire/types.go
package acquire

import "github.com/tamzrod/triga-plc/internal/record"

// Cycle is what one tick of Run produces.
type Cycle struct {
	Raw       record.Record
	Converted record.Record

	// Err reports channels the calibration could not convert.
	// Acquisition failures are in Raw.Status, never here.
	Err error
}
