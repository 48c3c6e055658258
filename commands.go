package ssd1680

// SSD1680 command set. The opcode values are fixed chip contract taken
// from the command table in the datasheet; they are never computed at
// runtime. Commands this driver does not issue are kept for reference
// and for callers building custom sequences on top of SetWindow and
// WriteLUT.
const (
	driverOutputControl         byte = 0x01
	gateDrivingVoltageControl   byte = 0x03
	sourceDrivingVoltageControl byte = 0x04
	boosterSoftStartControl     byte = 0x0C
	deepSleepMode               byte = 0x10
	dataEntryModeSetting        byte = 0x11
	swReset                     byte = 0x12
	hvReadyDetection            byte = 0x14
	vciDetection                byte = 0x15
	tempSensorSelect            byte = 0x18
	tempSensorRegWrite          byte = 0x1A
	tempSensorRegRead           byte = 0x1B
	tempSensorExtWrite          byte = 0x1C
	masterActivation            byte = 0x20
	displayUpdateControl1       byte = 0x21
	displayUpdateControl2       byte = 0x22
	writeRAMBW                  byte = 0x24
	writeRAMRed                 byte = 0x26
	readRAM                     byte = 0x27
	vcomSense                   byte = 0x28
	vcomSenseDuration           byte = 0x29
	vcomProgramOTP              byte = 0x2A
	vcomWriteRegisterControl    byte = 0x2B
	vcomRegisterWrite           byte = 0x2C
	otpReadRegisterDisplayOpt   byte = 0x2D
	userIDRead                  byte = 0x2E
	statusBitRead               byte = 0x2F
	otpProgramWaveformSetting   byte = 0x30
	otpLoadWaveformSetting      byte = 0x31
	writeLutRegister            byte = 0x32
	crcCalculation              byte = 0x34
	crcStatusRead               byte = 0x35
	otpProgramSelect            byte = 0x36
	writeRegisterForDisplayOpt  byte = 0x37
	writeRegisterForUserID      byte = 0x38
	otpProgramMode              byte = 0x39
	borderWaveformControl       byte = 0x3C
	endOption                   byte = 0x3F
	readRAMOption               byte = 0x41
	setRAMXStartEndPosition     byte = 0x44
	setRAMYStartEndPosition     byte = 0x45
	autoWriteRedRAMRegPattern   byte = 0x46
	autoWriteBWRAMRegPattern    byte = 0x47
	setRAMXAddressCounter       byte = 0x4E
	setRAMYAddressCounter       byte = 0x4F
	nop                         byte = 0x7F
)
