package ssd1680

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler carries the first transport failure across the steps of
// a logical operation. Once err is set every further call is a no-op,
// so a partially sent parameter sequence is abandoned rather than
// continued or retried.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = transportErr(CapReset, eh.d.rst.Out(l))
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = transportErr(CapDataCommand, eh.d.dc.Out(l))
}

func (eh *errorHandler) cTx(w, r []byte) {
	if eh.err != nil {
		return
	}
	eh.err = transportErr(CapSerial, eh.d.c.Tx(w, r))
}

func (eh *errorHandler) delay(d time.Duration) {
	if eh.err != nil {
		return
	}
	time.Sleep(d)
}

func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}
	eh.err = transportErr(CapBusy, eh.d.waiter.Wait(eh.d.busy))
}

// sendCommand waits for the controller to go idle, then transmits a
// single opcode byte in command mode.
func (eh *errorHandler) sendCommand(cmd byte) {
	eh.waitUntilIdle()
	eh.dcOut(gpio.Low)
	eh.cTx([]byte{cmd}, nil)
}

// sendData transmits parameter bytes in data mode.
func (eh *errorHandler) sendData(data []byte) {
	eh.dcOut(gpio.High)
	eh.cTx(data, nil)
}

func (eh *errorHandler) sendByte(data byte) {
	eh.sendData([]byte{data})
}

// readData fills buf from the bus in data mode.
func (eh *errorHandler) readData(buf []byte) {
	eh.dcOut(gpio.High)
	eh.cTx(nil, buf)
}
