// internal/plc/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/triga-plc/internal/plc"
)

// Transport selects the Modbus framing.
type Transport string

const (
	TransportTCP Transport = "tcp"
	TransportRTU Transport = "rtu"
)

const defaultTCPPort = "502"

// Config is the minimal transport config.
type Config struct {
	Transport Transport
	Endpoint  string // host[:port] for TCP, serial device for RTU
	UnitID    uint8
	Timeout   time.Duration
	Serial    SerialConfig
}

// SerialConfig is used by RTU only.
type SerialConfig struct {
	BaudRate int
	DataBits int
	Parity   string // "N", "E" or "O"
	StopBits int
}

// handler is the connection lifecycle shared by the goburrow TCP and RTU
// client handlers.
type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// registerReader is the one Modbus request the PLC client issues.
type registerReader interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
}

// Client implements plc.Client over Modbus: every channel is one input
// register (function code 4). It serializes requests.
type Client struct {
	mu        sync.Mutex
	endpoint  string
	handler   handler
	regs      registerReader
	connected bool
}

var _ plc.Client = (*Client)(nil)

// New creates an unconnected client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("plc modbus: endpoint required")
	}

	var h handler
	switch cfg.Transport {
	case TransportTCP, "":
		th := modbus.NewTCPClientHandler(withDefaultPort(cfg.Endpoint))
		th.SlaveId = cfg.UnitID
		th.Timeout = cfg.Timeout
		h = th
	case TransportRTU:
		rh := modbus.NewRTUClientHandler(cfg.Endpoint)
		rh.SlaveId = cfg.UnitID
		rh.Timeout = cfg.Timeout
		rh.BaudRate = cfg.Serial.BaudRate
		rh.DataBits = cfg.Serial.DataBits
		rh.Parity = cfg.Serial.Parity
		rh.StopBits = cfg.Serial.StopBits
		h = rh
	default:
		return nil, fmt.Errorf("plc modbus: unsupported transport %q", cfg.Transport)
	}

	return &Client{
		endpoint: cfg.Endpoint,
		handler:  h,
		regs:     modbus.NewClient(h),
	}, nil
}

// Connect opens the transport.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.handler.Connect(); err != nil {
		c.connected = false
		return fmt.Errorf("%w: %s: %v", plc.ErrConnection, c.endpoint, err)
	}
	c.connected = true
	return nil
}

// Disconnect closes the transport. Safe to call when not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = false
	return c.handler.Close()
}

// IsConnected reports the state observed by the last connect or read.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// ReadScalar reads one input register.
//
// A Modbus exception response means the device answered, so the connection
// is kept. Any other failure is a transport failure: the handler is closed
// and the client reports disconnected until the next successful exchange.
func (c *Client) ReadScalar(addr uint16) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.regs.ReadInputRegisters(addr, 1)
	if err != nil {
		var mbErr *modbus.ModbusError
		if !errors.As(err, &mbErr) {
			c.connected = false
			_ = c.handler.Close()
		}
		return 0, fmt.Errorf("%w: %%IW%d: %v", plc.ErrRead, addr, err)
	}
	if len(b) < 2 {
		return 0, fmt.Errorf("%w: %%IW%d: short register payload (%d bytes)", plc.ErrRead, addr, len(b))
	}

	// goburrow reconnects lazily, so a good answer proves the link is up.
	c.connected = true

	// Modbus register memory order (BIG-ENDIAN)
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// withDefaultPort appends the Modbus TCP port when endpoint has none.
func withDefaultPort(endpoint string) string {
	if _, _, err := net.SplitHostPort(endpoint); err == nil {
		return endpoint
	}
	host := strings.TrimSuffix(strings.TrimPrefix(endpoint, "["), "]")
	return net.JoinHostPort(host, defaultTCPPort)
}
