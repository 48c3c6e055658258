package ssd1680

import (
	"errors"
	"fmt"
)

// Capability identifies one of the host platform capabilities the
// driver depends on.
type Capability uint8

const (
	// CapSerial is the SPI byte transfer.
	CapSerial Capability = iota
	// CapReset is the reset output line.
	CapReset
	// CapDataCommand is the data/command select output line.
	CapDataCommand
	// CapBusy is the busy input line.
	CapBusy
)

// String implements fmt.Stringer.
func (c Capability) String() string {
	switch c {
	case CapSerial:
		return "serial transfer"
	case CapReset:
		return "reset line"
	case CapDataCommand:
		return "data/command line"
	case CapBusy:
		return "busy line"
	}
	return "unknown capability"
}

// TransportError reports a host platform failure together with the
// capability that failed. The underlying cause is carried opaquely and
// available through Unwrap.
type TransportError struct {
	Cap Capability
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1680: %s: %v", e.Cap, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// transportErr tags err with the failing capability. A nil err stays
// nil.
func transportErr(c Capability, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Cap: c, Err: err}
}

// errAsleep is returned for any bus operation attempted after Sleep.
// The chip ignores everything but a hardware reset in deep sleep, so
// the driver refuses to transmit until Init runs again.
var errAsleep = errors.New("ssd1680: controller is in deep sleep, call Init to wake it")
