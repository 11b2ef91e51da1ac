// internal/acquire/runner.go
package acquire

import (
	"context"
	"time"

	"github.com/tamzrod/triga-plc/internal/calib"
)

// Run acquires once per interval and emits each cycle on out.
// One goroutine per session. No overlap. A disconnected client gets one
// connection attempt at the start of a tick; there is no retry loop.
func (s *Session) Run(ctx context.Context, interval time.Duration, set calib.Set, out chan<- Cycle) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !s.client.IsConnected() {
			_ = s.TryConnect()
		}

		raw, conv, err := s.AcquireConverted(set)

		select {
		case <-ctx.Done():
			return
		case out <- Cycle{Raw: raw, Converted: conv, Err: err}:
		}
	}
}
