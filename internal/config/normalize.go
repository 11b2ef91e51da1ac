// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs  = 1000
	DefaultIntervalMs = 1000
	DefaultListen     = ":8080"

	DefaultBaud     = 19200
	DefaultDataBits = 8
	DefaultParity   = "E"
	DefaultStopBits = 1
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.PLC

	if p.Transport == "" {
		p.Transport = "tcp"
	}
	if p.TimeoutMs == 0 {
		p.TimeoutMs = DefaultTimeoutMs
	}

	// Serial defaults only matter for rtu; harmless otherwise.
	if p.Serial.Baud == 0 {
		p.Serial.Baud = DefaultBaud
	}
	if p.Serial.DataBits == 0 {
		p.Serial.DataBits = DefaultDataBits
	}
	if p.Serial.Parity == "" {
		p.Serial.Parity = DefaultParity
	}
	if p.Serial.StopBits == 0 {
		p.Serial.StopBits = DefaultStopBits
	}

	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = DefaultIntervalMs
	}
	if cfg.API.Listen == "" {
		cfg.API.Listen = DefaultListen
	}
}
