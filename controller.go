package ssd1680

import "bytes"

// controller is the capability set the protocol layer needs from the
// transport. errorHandler implements it against real hardware; tests
// substitute a recorder.
type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
	readData([]byte)
	waitUntilIdle()
}

// initDisplay runs the register setup sequence. It assumes the
// hardware reset pulse has already happened; the software reset is only
// valid once the chip has deasserted busy after that pulse. The step
// order is mandated by the chip: addressing before border and update
// control, counters reset last.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.waitUntilIdle()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData(encodeOutputControl(opts.Height, opts.GateScanGD, opts.GateScanSM, opts.GateScanTB))

	// Increment X and Y, advance the X counter after each write.
	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendByte(encodeDataEntryMode(true, true, false))

	setWindow(ctrl, 0, 0, opts.Width-1, opts.Height-1)

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(opts.Border.encode())

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData(encodeUpdateControl1(opts.UpdateRAM, opts.UpdateRAM, opts.SourceOutputS8))

	ctrl.sendCommand(tempSensorSelect)
	ctrl.sendByte(encodeTempSensor(opts.InternalSensor))

	setCursor(ctrl, 0, 0)

	ctrl.waitUntilIdle()
}

// setWindow programs the RAM address window. x coordinates are in
// pixels and converted to the controller's byte-granular columns, so
// x1 and x2+1 should be multiples of 8 to address exactly.
func setWindow(ctrl controller, x1, y1, x2, y2 int) {
	ctrl.sendCommand(setRAMXStartEndPosition)
	ctrl.sendData(encodeRAMXWindow(x1>>3, x2>>3))

	ctrl.sendCommand(setRAMYStartEndPosition)
	ctrl.sendData(encodeRAMYWindow(y1, y2))
}

// setCursor positions the RAM address counters. x is in pixels; the
// controller only addresses whole column bytes, so the low 3 bits are
// dropped.
func setCursor(ctrl controller, x, y int) {
	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendData(encodeRAMXCounter(x >> 3))

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData(encodeRAMYCounter(y))
}

// writeRAM transfers pixel bytes into the plane selected by cmd
// (writeRAMBW or writeRAMRed) starting at the current counters.
func writeRAM(ctrl controller, cmd byte, pix []byte) {
	ctrl.sendCommand(cmd)
	ctrl.sendData(pix)
}

func writeLUT(ctrl controller, lut LUT) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut)
}

// refreshDisplay triggers the waveform engine with the given update
// sequence and waits for it to finish. The final wait is the refresh
// completion signal and can take from hundreds of milliseconds to
// seconds.
func refreshDisplay(ctrl controller, sequence byte) {
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(sequence)

	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

// fillScreen writes width*height/8 copies of fill into the black/white
// plane. Geometries that are not a multiple of 8 pixels get a
// truncated fill; callers must pad explicitly.
func fillScreen(ctrl controller, fill byte, opts *Opts) {
	ctrl.waitUntilIdle()

	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(bytes.Repeat([]byte{fill}, opts.Width*opts.Height/8))

	ctrl.sendCommand(nop)
	ctrl.waitUntilIdle()
}

// fillScreenAuto fills the black/white plane with the controller's
// auto-write pattern command. See encodeAutoFill for the geometry
// limitation.
func fillScreenAuto(ctrl controller, white bool) {
	ctrl.waitUntilIdle()

	ctrl.sendCommand(autoWriteBWRAMRegPattern)
	ctrl.sendByte(encodeAutoFill(white))
	ctrl.waitUntilIdle()
}

func enterDeepSleep(ctrl controller) {
	ctrl.sendCommand(deepSleepMode)
	ctrl.sendByte(deepSleepMode1)
}

// readRAMByte reads one byte from RAM at the current counters. The
// first byte a read transaction clocks out is dummy data.
func readRAMByte(ctrl controller) byte {
	ctrl.waitUntilIdle()

	ctrl.sendCommand(readRAM)
	var buf [2]byte
	ctrl.readData(buf[:])
	return buf[1]
}
