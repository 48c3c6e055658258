package ssd1680

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// LUT is a waveform look-up table register image. The register is 153
// bytes long; the content is opaque to the driver and transported
// verbatim.
type LUT []byte

// LUTSize is the size of the controller's LUT register in bytes.
const LUTSize = 153

// Dev is a handle to a SSD1680 display controller.
//
// A Dev owns its pins and SPI connection exclusively. No internal
// locking is provided; concurrent callers must serialize externally.
type Dev struct {
	c      conn.Conn
	dc     gpio.PinOut
	rst    gpio.PinOut
	busy   gpio.PinIn
	waiter Waiter

	opts   Opts
	asleep bool
}

// New creates a driver for a display connected to p with the given
// control pins. The SPI port is configured for 4MHz, Mode0, 8-bit
// transfers and the busy pin for falling edge detection.
//
// opts can be nil to use DefaultOpts. New does not touch the chip;
// call Init to run the hardware initialization sequence.
func New(p spi.Port, dc, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	o := DefaultOpts()
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("ssd1680: invalid dimensions %dx%d", o.Width, o.Height)
	}

	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, transportErr(CapSerial, err)
	}

	if err := busy.In(gpio.Float, gpio.FallingEdge); err != nil {
		return nil, transportErr(CapBusy, err)
	}

	waiter := o.Waiter
	if waiter == nil {
		waiter = &PollingWaiter{}
	}

	return &Dev{
		c:      c,
		dc:     dc,
		rst:    rst,
		busy:   busy,
		waiter: waiter,
		opts:   o,
	}, nil
}

// Reset pulses the reset line. This is the only way to leave deep
// sleep; afterwards the chip is awake but unconfigured, so a full Init
// is required before any other operation.
func (d *Dev) Reset() error {
	eh := errorHandler{d: d}

	eh.rstOut(gpio.Low)
	eh.delay(20 * time.Millisecond)
	eh.rstOut(gpio.High)
	eh.delay(20 * time.Millisecond)

	if eh.err != nil {
		return eh.err
	}
	d.asleep = false
	return nil
}

// Init resets the chip and runs the register initialization sequence
// from the configuration. Use it for the first bring-up and to
// reinitialize after Sleep. On failure the sequence is aborted and the
// chip is left in an undefined state; the caller retries by calling
// Init again, which restarts from the reset pulse.
func (d *Dev) Init() error {
	if err := d.Reset(); err != nil {
		return err
	}

	eh := errorHandler{d: d}
	initDisplay(&eh, &d.opts)
	return eh.err
}

// WriteBW writes pixel bytes to the black/white RAM plane starting at
// the current address counters. The buffer length is not checked
// against the configured window; one byte covers 8 horizontal pixels,
// 1 is white.
func (d *Dev) WriteBW(pix []byte) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	writeRAM(&eh, writeRAMBW, pix)
	return eh.err
}

// WriteRed writes pixel bytes to the red RAM plane starting at the
// current address counters. 1 is red.
func (d *Dev) WriteRed(pix []byte) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	writeRAM(&eh, writeRAMRed, pix)
	return eh.err
}

// WriteLUT loads a waveform look-up table. lut must be exactly LUTSize
// bytes.
func (d *Dev) WriteLUT(lut LUT) error {
	if len(lut) != LUTSize {
		return fmt.Errorf("ssd1680: LUT must be %d bytes, got %d", LUTSize, len(lut))
	}
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	writeLUT(&eh, lut)
	return eh.err
}

// SetWindow programs the RAM address window in pixels. The X axis is
// addressed in whole column bytes; x1 and x2+1 should be multiples of
// 8. No bounds are enforced against the configured dimensions.
func (d *Dev) SetWindow(x1, y1, x2, y2 int) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	setWindow(&eh, x1, y1, x2, y2)
	return eh.err
}

// SetCursor positions the RAM address counters. x must be a multiple
// of 8, the low 3 bits are ignored by the controller.
func (d *Dev) SetCursor(x, y int) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	setCursor(&eh, x, y)
	return eh.err
}

// Refresh runs the display update with a custom sequence byte and
// blocks until the controller signals completion. A refresh can take
// from hundreds of milliseconds to seconds depending on the sequence
// and panel.
func (d *Dev) Refresh(sequence byte) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	refreshDisplay(&eh, sequence)
	return eh.err
}

// FullRefresh refreshes with the configured full sequence.
func (d *Dev) FullRefresh() error {
	return d.Refresh(d.opts.FullSequence)
}

// PartialRefresh refreshes with the configured partial sequence.
func (d *Dev) PartialRefresh() error {
	return d.Refresh(d.opts.PartialSequence)
}

// FillScreen fills the black/white plane with white or black by
// streaming width*height/8 fill bytes.
func (d *Dev) FillScreen(white bool) error {
	if d.asleep {
		return errAsleep
	}
	fill := byte(0x00)
	if white {
		fill = 0xFF
	}
	eh := errorHandler{d: d}
	fillScreen(&eh, fill, &d.opts)
	return eh.err
}

// FillScreenAuto fills the black/white plane using the controller's
// auto-write command. It is faster than FillScreen but hardwired to
// the default 176x296 geometry; see encodeAutoFill.
func (d *Dev) FillScreenAuto(white bool) error {
	if d.asleep {
		return errAsleep
	}
	eh := errorHandler{d: d}
	fillScreenAuto(&eh, white)
	return eh.err
}

// ReadRAM reads one byte from RAM at the current address counters.
func (d *Dev) ReadRAM() (byte, error) {
	if d.asleep {
		return 0, errAsleep
	}
	eh := errorHandler{d: d}
	b := readRAMByte(&eh)
	if eh.err != nil {
		return 0, eh.err
	}
	return b, nil
}

// Sleep puts the controller into deep sleep mode 1. RAM content is
// retained but the chip ignores all further commands; wake it with
// Init. The datasheet recommends deep sleep between refreshes to avoid
// panel degradation.
func (d *Dev) Sleep() error {
	if d.asleep {
		return nil
	}
	eh := errorHandler{d: d}
	enterDeepSleep(&eh)
	if eh.err != nil {
		return eh.err
	}
	d.asleep = true
	return nil
}

// Bounds returns the configured display dimensions.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// Halt puts the display into deep sleep. Halt implements
// conn.Resource.
func (d *Dev) Halt() error {
	return d.Sleep()
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1680.Dev{%s, %s, %dx%d}", d.c, d.dc, d.opts.Width, d.opts.Height)
}

var _ conn.Resource = &Dev{}
