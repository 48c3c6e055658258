package ssd1680

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Waiter blocks until the controller deasserts its busy line. The line
// is high while the chip executes an internal operation and must be
// low before any command is issued.
//
// Two strategies are provided: PollingWaiter for plain blocking hosts
// and EdgeWaiter for hosts with working edge detection, which parks the
// goroutine until the kernel reports the falling edge. Observing the
// busy line is idempotent, so a custom Waiter may layer a timeout
// policy on top and return an error to abort the operation; the error
// surfaces as a TransportError with CapBusy.
type Waiter interface {
	Wait(busy gpio.PinIn) error
}

// PollingWaiter polls the busy line, sleeping between reads.
type PollingWaiter struct {
	// Interval between polls. Zero or negative selects 1ms.
	Interval time.Duration
}

// Wait implements Waiter.
func (w *PollingWaiter) Wait(busy gpio.PinIn) error {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	for busy.Read() == gpio.High {
		time.Sleep(interval)
	}
	return nil
}

// EdgeWaiter suspends on falling edge notifications from the busy
// line. New configures the pin for falling edge detection; the read
// before each edge wait closes the race with an edge that fired before
// the wait started.
type EdgeWaiter struct{}

// Wait implements Waiter.
func (w *EdgeWaiter) Wait(busy gpio.PinIn) error {
	for busy.Read() == gpio.High {
		busy.WaitForEdge(-1)
	}
	return nil
}
