// internal/acquire/builder.go
package acquire

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/config"
	pmodbus "github.com/tamzrod/triga-plc/internal/plc/modbus"
)

// Build constructs a Session over a Modbus client from a validated,
// normalized config and makes one connection attempt. A failed attempt is
// logged, not returned: the session reports Disconnected until it connects.
func Build(cfg *config.Config) (*Session, error) {
	p := cfg.PLC

	client, err := pmodbus.New(pmodbus.Config{
		Transport: pmodbus.Transport(p.Transport),
		Endpoint:  p.Endpoint,
		UnitID:    p.UnitID,
		Timeout:   time.Duration(p.TimeoutMs) * time.Millisecond,
		Serial: pmodbus.SerialConfig{
			BaudRate: p.Serial.Baud,
			DataBits: p.Serial.DataBits,
			Parity:   p.Serial.Parity,
			StopBits: p.Serial.StopBits,
		},
	})
	if err != nil {
		return nil, err
	}

	addrs, err := channel.DefaultAddresses().With(p.Channels)
	if err != nil {
		return nil, err
	}

	s := New(client, addrs, WithLogger(logrus.WithFields(logrus.Fields{
		"endpoint":  p.Endpoint,
		"transport": p.Transport,
	})))

	_ = s.TryConnect()

	return s, nil
}
