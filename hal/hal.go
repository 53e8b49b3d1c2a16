package hal

import "errors"

// Logger writes newline-delimited diagnostic lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Pin is a minimal output pin abstraction (data/command select, chip
// select, reset).
type Pin interface {
	High()
	Low()
}

var ErrClosed = errors.New("hal: transport closed")

// Transport carries bytes to the physical panel. Implementations are
// blocking and ordered: every byte reaches the panel in call order before
// the call returns.
type Transport interface {
	// Command sends a single command byte.
	Command(b byte) error
	// Data sends a single command parameter byte.
	Data(b byte) error
	// Transmit sends a bulk pixel payload.
	Transmit(p []byte) error
	Close() error
}
