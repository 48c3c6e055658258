package ssd1680

// LUTBank selects one of the four waveform look-up table banks stored
// in the controller.
type LUTBank uint8

// Valid LUTBank values.
const (
	LUT0 LUTBank = iota
	LUT1
	LUT2
	LUT3
)

// String implements fmt.Stringer.
func (b LUTBank) String() string {
	switch b {
	case LUT0:
		return "LUT0"
	case LUT1:
		return "LUT1"
	case LUT2:
		return "LUT2"
	case LUT3:
		return "LUT3"
	}
	return "LUT(invalid)"
}

// VDBLevel is a fixed source level for the border (VBD) driver, used by
// BorderFixLevel. The values are the raw bit patterns for bits 4 and 5
// of the border waveform register.
type VDBLevel uint8

// Valid VDBLevel values.
const (
	VSS  VDBLevel = 0x00
	VSH1 VDBLevel = 0x10
	VSL  VDBLevel = 0x20
	VSH2 VDBLevel = 0x30
)

// String implements fmt.Stringer.
func (l VDBLevel) String() string {
	switch l {
	case VSS:
		return "VSS"
	case VSH1:
		return "VSH1"
	case VSL:
		return "VSL"
	case VSH2:
		return "VSH2"
	}
	return "VDBLevel(invalid)"
}

// UpdateRAMOption controls how the content of a RAM plane is used
// during a display update (display update control 1 register).
type UpdateRAMOption uint8

// Valid UpdateRAMOption values.
const (
	// RAMNormal uses the RAM content as-is.
	RAMNormal UpdateRAMOption = 0x0
	// RAMBypass0 bypasses the RAM content and treats it as zero.
	RAMBypass0 UpdateRAMOption = 0x4
	// RAMInverse inverts the RAM content.
	RAMInverse UpdateRAMOption = 0x8
)

// String implements fmt.Stringer.
func (o UpdateRAMOption) String() string {
	switch o {
	case RAMNormal:
		return "Normal"
	case RAMBypass0:
		return "Bypass0"
	case RAMInverse:
		return "Inverse"
	}
	return "UpdateRAMOption(invalid)"
}

type borderKind uint8

const (
	// Keep borderGSTransition first: the BorderMode zero value is
	// GS transition without LUT follow, the chip's reset default.
	borderGSTransition borderKind = iota
	borderFixLevel
	borderVCOM
	borderHiZ
)

// BorderMode selects the voltage behavior of the panel border region.
// It is a closed set of variants; use one of the Border* constructors.
type BorderMode struct {
	kind      borderKind
	followLUT bool
	level     VDBLevel
	lut       LUTBank
}

// BorderGSTransition makes the border follow a GS transition using the
// given LUT bank. If followLUT is false the border outputs VCOM during
// the red sub-cycle instead of following the LUT.
func BorderGSTransition(followLUT bool, lut LUTBank) BorderMode {
	return BorderMode{kind: borderGSTransition, followLUT: followLUT, lut: lut}
}

// BorderFixLevel drives the border at a fixed source level.
func BorderFixLevel(level VDBLevel) BorderMode {
	return BorderMode{kind: borderFixLevel, level: level}
}

// BorderVCOM ties the border to the VCOM reference voltage.
func BorderVCOM() BorderMode {
	return BorderMode{kind: borderVCOM}
}

// BorderHiZ leaves the border floating (high impedance).
func BorderHiZ() BorderMode {
	return BorderMode{kind: borderHiZ}
}

// String implements fmt.Stringer.
func (m BorderMode) String() string {
	switch m.kind {
	case borderFixLevel:
		return "FixLevel(" + m.level.String() + ")"
	case borderVCOM:
		return "VCOM"
	case borderHiZ:
		return "HiZ"
	default:
		if m.followLUT {
			return "GSTransition(follow, " + m.lut.String() + ")"
		}
		return "GSTransition(VCOM, " + m.lut.String() + ")"
	}
}

// Opts holds the display configuration. It is read-only once passed to
// New; build one from DefaultOpts or a panel preset and adjust it with
// the With* methods.
type Opts struct {
	// Width and Height are the panel dimensions in pixels. Width is
	// rounded up to the next multiple of 8 when converted to the
	// controller's byte-granular column addressing.
	Width  int
	Height int

	// Gate scanning sequence and direction (driver output control
	// register, third parameter byte).
	GateScanGD bool
	GateScanSM bool
	GateScanTB bool

	// Refresh sequence selector bytes for display update control 2.
	// The values are panel specific constants.
	PartialSequence byte
	FullSequence    byte

	// Border is the border waveform mode.
	Border BorderMode

	// UpdateRAM is applied to both the black/white and the red plane
	// in display update control 1.
	UpdateRAM UpdateRAMOption

	// SourceOutputS8 selects sources S8..S167 instead of S0..S175.
	SourceOutputS8 bool

	// InternalSensor selects the on-chip temperature sensor instead
	// of an external one.
	InternalSensor bool

	// Waiter is the busy-wait strategy. nil selects millisecond
	// polling (PollingWaiter).
	Waiter Waiter
}

// DefaultOpts returns the configuration for a 176x296 panel using the
// full controller RAM.
func DefaultOpts() Opts {
	return Opts{
		Width:           176,
		Height:          296,
		PartialSequence: 0xFC,
		FullSequence:    0xF7,
		Border:          BorderGSTransition(true, LUT1),
		UpdateRAM:       RAMNormal,
		SourceOutputS8:  true,
		InternalSensor:  true,
	}
}

// EPD290T94 returns the configuration for the 2.9" T94 panel (128x296).
func EPD290T94() Opts {
	return DefaultOpts().WithSize(128, 296)
}

// WithSize overrides the panel dimensions.
func (o Opts) WithSize(width, height int) Opts {
	o.Width = width
	o.Height = height
	return o
}

// WithGateScan overrides the gate scanning sequence and direction.
func (o Opts) WithGateScan(gd, sm, tb bool) Opts {
	o.GateScanGD = gd
	o.GateScanSM = sm
	o.GateScanTB = tb
	return o
}

// WithSequences overrides the partial and full refresh sequence bytes.
func (o Opts) WithSequences(partial, full byte) Opts {
	o.PartialSequence = partial
	o.FullSequence = full
	return o
}

// WithBorder overrides the border waveform mode.
func (o Opts) WithBorder(m BorderMode) Opts {
	o.Border = m
	return o
}

// WithUpdateRAM overrides the RAM content handling and source output
// mode used in display update control 1.
func (o Opts) WithUpdateRAM(opt UpdateRAMOption, sourceOutputS8 bool) Opts {
	o.UpdateRAM = opt
	o.SourceOutputS8 = sourceOutputS8
	return o
}

// WithInternalSensor selects the internal or an external temperature
// sensor.
func (o Opts) WithInternalSensor(internal bool) Opts {
	o.InternalSensor = internal
	return o
}

// WithWaiter overrides the busy-wait strategy.
func (o Opts) WithWaiter(w Waiter) Opts {
	o.Waiter = w
	return o
}
