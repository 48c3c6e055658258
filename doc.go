// Package ssd1680 controls a SSD1680 e-paper display controller via SPI.
//
// The SSD1680 drives bistable electrophoretic panels of up to 176x296
// pixels with separate black/white and red RAM planes. This driver
// implements the chip's command protocol: hardware initialization, RAM
// writes, refresh activation and deep sleep. It moves caller-supplied
// pixel bytes into controller RAM; it does not manage a framebuffer or
// convert images.
//
// # Hardware Connection
//
// The controller uses a 4-wire control interface on top of SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	DIN         → SPI Data (MOSI)
//	CS          → SPI Chip Select
//	DC          → GPIO (data/command select)
//	RST         → GPIO (reset)
//	BUSY        → GPIO (busy status, input)
//
// # Busy Waiting
//
// Every command is gated on the busy line being low. The strategy is
// pluggable: PollingWaiter (the default) polls the line with
// millisecond sleeps, EdgeWaiter parks the goroutine until the host
// reports a falling edge. Select one via Opts.Waiter.
//
// # Basic Usage
//
//	// Initialize periph.io
//	host.Init()
//
//	b, _ := spireg.Open("")
//	dc := gpioreg.ByName("GPIO25")
//	rst := gpioreg.ByName("GPIO17")
//	busy := gpioreg.ByName("GPIO24")
//
//	opts := ssd1680.EPD290T94()
//	dev, _ := ssd1680.New(b, dc, rst, busy, &opts)
//	defer dev.Halt()
//
//	dev.Init()
//	dev.FillScreen(true)
//	dev.FullRefresh()
//
//	// Write caller-prepared pixel bytes (1 bit per pixel, MSB first).
//	dev.SetCursor(0, 0)
//	dev.WriteBW(pix)
//	dev.FullRefresh()
//	dev.Sleep()
//
// After Sleep the chip ignores everything except a hardware reset;
// call Init to wake and reconfigure it.
//
// # Datasheet
//
// https://www.solomon-systech.com.hk/product/ssd1680/
package ssd1680
