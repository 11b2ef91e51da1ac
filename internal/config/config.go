// internal/config/config.go
package config

type Config struct {
	PLC         PLCConfig         `yaml:"plc"`
	Poll        PollConfig        `yaml:"poll"`
	Calibration CalibrationConfig `yaml:"calibration"`
	API         APIConfig         `yaml:"api"`
}

// ---- PLC SOURCE ----

type PLCConfig struct {
	Endpoint  string `yaml:"endpoint"`  // host[:port] (tcp) or serial device (rtu)
	Transport string `yaml:"transport"` // tcp | rtu
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	Serial SerialConfig `yaml:"serial"` // rtu only

	// Channel register overrides; missing channel => built-in %IW address
	Channels map[string]uint16 `yaml:"channels"`
}

type SerialConfig struct {
	Baud     int    `yaml:"baud"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- CALIBRATION ----

type CalibrationConfig struct {
	File string `yaml:"file"` // empty => built-in defaults
}

// ---- API ----

type APIConfig struct {
	Listen string `yaml:"listen"`
}
