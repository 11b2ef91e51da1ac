// internal/acquire/session.go
package acquire

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/plc"
	"github.com/tamzrod/triga-plc/internal/record"
	"github.com/tamzrod/triga-plc/internal/status"
)

// Session owns one PLC client and the last record acquired through it.
// It is not safe for concurrent use: the connection is not re-entrant.
type Session struct {
	id     uuid.UUID
	client plc.Client
	addrs  channel.Addresses
	last   record.Record
	now    func() time.Time
	log    *logrus.Entry
}

// Option customizes a Session.
type Option func(*Session)

// WithClock replaces time.Now as the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the base log entry; the session id is added to it.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Session) { s.log = l }
}

// New creates a session over client reading channels at addrs.
// The client is not connected here.
func New(client plc.Client, addrs channel.Addresses, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		client: client,
		addrs:  addrs,
		last:   record.New(),
		now:    time.Now,
		log:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.WithField("session", s.id.String())
	return s
}

// ID identifies the session in logs and API responses.
func (s *Session) ID() uuid.UUID { return s.id }

// TryConnect makes exactly one connection attempt. The error wraps
// plc.ErrConnection.
func (s *Session) TryConnect() error {
	if err := s.client.Connect(); err != nil {
		s.log.WithError(err).Error("failed to connect to plc")
		return err
	}
	s.log.Info("connected to plc")
	return nil
}

// Connected reports the client's connection state.
func (s *Session) Connected() bool {
	return s.client.IsConnected()
}

// Close disconnects the client.
func (s *Session) Close() error {
	return s.client.Disconnect()
}

// Last returns a copy of the most recent record.
func (s *Session) Last() record.Record {
	return s.last
}

// Acquire performs one acquisition cycle and returns a copy of the result.
//
// Channels are read in fixed order. The first failed read stops the cycle:
// channels read before it keep their new values, the rest keep their
// previous ones. The connection state after the failure decides between
// ReadError and Disconnected. The timestamp is always set. Acquire never
// returns an error; failure is carried by the record status.
func (s *Session) Acquire() record.Record {
	for _, c := range channel.All() {
		addr := s.addrs.Of(c)

		raw, err := s.client.ReadScalar(addr)
		if err != nil {
			st := status.ReadError
			if !s.client.IsConnected() {
				st = status.Disconnected
			}
			s.last.Status = st
			s.last.Time = s.now()

			s.log.WithError(err).WithFields(logrus.Fields{
				"channel": c.String(),
				"address": addr,
				"status":  st.String(),
			}).Warn("acquisition failed")

			return s.last
		}

		s.last.Values[c] = decode(c, raw)
	}

	s.last.Status = status.Ok
	s.last.Time = s.now()
	return s.last
}

// AcquireConverted runs one cycle and converts the result with set.
func (s *Session) AcquireConverted(set calib.Set) (raw, conv record.Record, err error) {
	raw = s.Acquire()
	conv, err = calib.ConvertRecord(raw, set)
	return raw, conv, err
}

func decode(c channel.Channel, raw uint16) float64 {
	if c == channel.CLinScale {
		return float64(channel.DecodeScale(raw))
	}
	return channel.DecodeAnalog(raw)
}
