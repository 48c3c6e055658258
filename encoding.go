package ssd1680

// Pure parameter encoding for the SSD1680 register model. These
// functions perform no I/O; the byte layouts mirror the datasheet
// register descriptions bit for bit.

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// encodeOutputControl packs the driver output control parameters:
// (height-1) as little-endian 16 bits followed by the gate scanning
// byte. A zero height encodes as zero instead of wrapping.
func encodeOutputControl(height int, gd, sm, tb bool) []byte {
	if height > 0 {
		height--
	} else {
		height = 0
	}
	gateScan := flag(tb) | flag(sm)<<1 | flag(gd)<<2
	return []byte{byte(height), byte(height >> 8), gateScan}
}

// encodeDataEntryMode packs the address counter behavior: increment
// (true) or decrement (false) for X and Y, and whether the counter
// advances in the Y direction after each RAM write.
func encodeDataEntryMode(incX, incY, updateY bool) byte {
	return flag(incX) | flag(incY)<<1 | flag(updateY)<<2
}

// encodeRAMXWindow packs the X start/end positions. X addresses are
// column bytes (8 pixels each) and only the low 8 bits are used.
func encodeRAMXWindow(start, end int) []byte {
	return []byte{byte(start), byte(end)}
}

// encodeRAMYWindow packs the Y start/end positions as two little-endian
// 16 bit values. Y addresses are row-granular.
func encodeRAMYWindow(start, end int) []byte {
	return []byte{byte(start), byte(start >> 8), byte(end), byte(end >> 8)}
}

func encodeRAMXCounter(x int) []byte {
	return []byte{byte(x)}
}

func encodeRAMYCounter(y int) []byte {
	return []byte{byte(y), byte(y >> 8)}
}

// encode returns the border waveform control register value for the
// mode. Each variant has exactly one encoding.
func (m BorderMode) encode() byte {
	switch m.kind {
	case borderVCOM:
		return 0x80
	case borderHiZ:
		return 0xC0
	case borderFixLevel:
		return 0x10 | byte(m.level)
	default: // borderGSTransition
		return flag(m.followLUT)<<2 | byte(m.lut)
	}
}

// encodeUpdateControl1 packs display update control 1: the RAM options
// for the black/white and red planes in the low and high nibble of the
// first byte, the source output mode in bit 7 of the second.
func encodeUpdateControl1(bw, red UpdateRAMOption, sourceOutputS8 bool) []byte {
	return []byte{byte(bw) | byte(red)<<4, flag(sourceOutputS8) << 7}
}

// encodeTempSensor returns the temperature sensor control parameter.
// The values are chip-fixed constants.
func encodeTempSensor(internal bool) byte {
	if internal {
		return 0x80
	}
	return 0x48
}

// deepSleepMode1 is the deep sleep command parameter selecting sleep
// mode 1 (RAM retained).
const deepSleepMode1 byte = 0x01

// encodeAutoFill returns the auto-write RAM parameter byte: the fill
// color in bit 7 and the fixed step/height settings 0x64 covering the
// full panel in the default geometry. The hardware fill is not
// generalized to other geometries; use FillScreen for those.
func encodeAutoFill(white bool) byte {
	return flag(white)<<7 | 0x64
}
