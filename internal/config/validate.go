// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/triga-plc/internal/channel"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	p := cfg.PLC

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	if p.Endpoint == "" {
		return fmt.Errorf("plc: endpoint is required")
	}

	switch p.Transport {
	case "", "tcp":
	case "rtu":
		switch p.Serial.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("plc: serial parity must be N, E or O, got %q", p.Serial.Parity)
		}
	default:
		return fmt.Errorf("plc: transport must be tcp or rtu, got %q", p.Transport)
	}

	if p.TimeoutMs < 0 {
		return fmt.Errorf("plc: timeout_ms must be >= 0")
	}
	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// CHANNEL REGISTER MAP (overrides + built-in addresses)
	// ------------------------------------------------------------

	for name := range p.Channels {
		if _, ok := channel.Parse(name); !ok {
			return fmt.Errorf("plc: unknown channel %q in channels", name)
		}
	}

	addrs, err := channel.DefaultAddresses().With(p.Channels)
	if err != nil {
		return err
	}

	// each input register backs exactly one channel
	owner := make(map[uint16]channel.Channel)
	for _, c := range channel.All() {
		a := addrs.Of(c)
		if prev, exists := owner[a]; exists {
			return fmt.Errorf(
				"plc: register collision: %%IW%d used by channels %s and %s",
				a,
				prev,
				c,
			)
		}
		owner[a] = c
	}

	return nil
}
