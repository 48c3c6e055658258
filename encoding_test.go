package ssd1680

import (
	"bytes"
	"testing"
)

func TestEncodeOutputControl(t *testing.T) {
	tests := []struct {
		name   string
		height int
		gd     bool
		sm     bool
		tb     bool
		want   []byte
	}{
		{"zero height stays zero", 0, false, false, false, []byte{0x00, 0x00, 0x00}},
		{"height 1", 1, false, false, false, []byte{0x00, 0x00, 0x00}},
		{"height 250", 250, false, false, false, []byte{0xF9, 0x00, 0x00}},
		{"height 296", 296, false, false, false, []byte{0x27, 0x01, 0x00}},
		{"tb", 296, false, false, true, []byte{0x27, 0x01, 0x01}},
		{"sm", 296, false, true, false, []byte{0x27, 0x01, 0x02}},
		{"gd", 296, true, false, false, []byte{0x27, 0x01, 0x04}},
		{"all flags", 296, true, true, true, []byte{0x27, 0x01, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeOutputControl(tt.height, tt.gd, tt.sm, tt.tb)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("encodeOutputControl(%d, %t, %t, %t) = %#v, want %#v",
					tt.height, tt.gd, tt.sm, tt.tb, got, tt.want)
			}
		})
	}
}

func TestEncodeDataEntryMode(t *testing.T) {
	tests := []struct {
		incX, incY, updateY bool
		want                byte
	}{
		{false, false, false, 0x00},
		{true, false, false, 0x01},
		{false, true, false, 0x02},
		{true, true, false, 0x03},
		{false, false, true, 0x04},
		{true, true, true, 0x07},
	}

	for _, tt := range tests {
		if got := encodeDataEntryMode(tt.incX, tt.incY, tt.updateY); got != tt.want {
			t.Errorf("encodeDataEntryMode(%t, %t, %t) = %#02x, want %#02x",
				tt.incX, tt.incY, tt.updateY, got, tt.want)
		}
	}
}

func TestEncodeRAMWindows(t *testing.T) {
	if got := encodeRAMXWindow(0, 0x15); !bytes.Equal(got, []byte{0x00, 0x15}) {
		t.Errorf("encodeRAMXWindow(0, 0x15) = %#v", got)
	}
	// Only the low 8 bits of an X address are significant.
	if got := encodeRAMXWindow(0x100, 0x1FF); !bytes.Equal(got, []byte{0x00, 0xFF}) {
		t.Errorf("encodeRAMXWindow(0x100, 0x1FF) = %#v", got)
	}
	// Y emits start low/high then end low/high for any 16 bit inputs.
	if got := encodeRAMYWindow(0x1234, 0xBEEF); !bytes.Equal(got, []byte{0x34, 0x12, 0xEF, 0xBE}) {
		t.Errorf("encodeRAMYWindow(0x1234, 0xBEEF) = %#v", got)
	}
	if got := encodeRAMYWindow(0, 295); !bytes.Equal(got, []byte{0x00, 0x00, 0x27, 0x01}) {
		t.Errorf("encodeRAMYWindow(0, 295) = %#v", got)
	}
}

func TestBorderModeEncode(t *testing.T) {
	tests := []struct {
		name string
		mode BorderMode
		want byte
	}{
		{"VCOM", BorderVCOM(), 0x80},
		{"HiZ", BorderHiZ(), 0xC0},
		{"FixLevel VSS", BorderFixLevel(VSS), 0x10},
		{"FixLevel VSH1", BorderFixLevel(VSH1), 0x20},
		{"FixLevel VSL", BorderFixLevel(VSL), 0x30},
		{"FixLevel VSH2", BorderFixLevel(VSH2), 0x40},
		{"GSTransition follow LUT1", BorderGSTransition(true, LUT1), 0x05},
		{"GSTransition no follow LUT2", BorderGSTransition(false, LUT2), 0x02},
		{"GSTransition follow LUT3", BorderGSTransition(true, LUT3), 0x07},
		{"zero value", BorderMode{}, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.encode(); got != tt.want {
				t.Errorf("%s.encode() = %#02x, want %#02x", tt.mode, got, tt.want)
			}
		})
	}
}

func TestEncodeUpdateControl1(t *testing.T) {
	options := []UpdateRAMOption{RAMNormal, RAMBypass0, RAMInverse}

	for _, bw := range options {
		for _, red := range options {
			got := encodeUpdateControl1(bw, red, false)
			want := []byte{byte(bw) | byte(red)<<4, 0x00}
			if !bytes.Equal(got, want) {
				t.Errorf("encodeUpdateControl1(%s, %s, false) = %#v, want %#v", bw, red, got, want)
			}
		}
	}

	// Source output mode only touches bit 7 of the second byte.
	if got := encodeUpdateControl1(RAMNormal, RAMNormal, true); !bytes.Equal(got, []byte{0x00, 0x80}) {
		t.Errorf("encodeUpdateControl1(Normal, Normal, true) = %#v", got)
	}
}

func TestEncodeTempSensor(t *testing.T) {
	if got := encodeTempSensor(true); got != 0x80 {
		t.Errorf("encodeTempSensor(true) = %#02x, want 0x80", got)
	}
	if got := encodeTempSensor(false); got != 0x48 {
		t.Errorf("encodeTempSensor(false) = %#02x, want 0x48", got)
	}
}

func TestEncodeAutoFill(t *testing.T) {
	if got := encodeAutoFill(false); got != 0x64 {
		t.Errorf("encodeAutoFill(false) = %#02x, want 0x64", got)
	}
	if got := encodeAutoFill(true); got != 0xE4 {
		t.Errorf("encodeAutoFill(true) = %#02x, want 0xE4", got)
	}
}
