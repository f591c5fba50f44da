package st7701s

// General commands are valid whatever Command2 bank is selected, so their
// builders cannot fail.
//
// Commands that set and clear a mode (DISPON/DISPOFF, SLPIN/SLPOUT, ...) have
// no effect when the chip is already in the requested mode, which makes them
// safe to repeat in a write-only workflow.

// NoOperation returns NOP. It can terminate a parameter write.
func NoOperation() Command {
	return NewCommand(cmdNOP)
}

// SoftwareReset returns SWRESET. Registers return to their reset values;
// frame memory is unaffected.
//
// Wait at least 5ms before the next command, or 120ms if the chip was in
// sleep mode. SWRESET cannot be sent during SLPOUT.
func SoftwareReset() Command {
	return NewCommand(cmdSWRESET)
}

// SleepIn returns SLPIN: the buck converter, oscillator and panel scanning
// stop. The control interface and registers stay active.
func SleepIn() Command {
	return NewCommand(cmdSLPIN)
}

// SleepOut returns SLPOUT. Wait 120ms before the next command.
func SleepOut() Command {
	return NewCommand(cmdSLPOUT)
}

// PartialModeOn returns PTLON.
func PartialModeOn() Command {
	return NewCommand(cmdPTLON)
}

// NormalModeOn returns NORON, which also leaves partial mode.
func NormalModeOn() Command {
	return NewCommand(cmdNORON)
}

// InversionOff returns INVOFF.
func InversionOff() Command {
	return NewCommand(cmdINVOFF)
}

// InversionOn returns INVON.
func InversionOn() Command {
	return NewCommand(cmdINVON)
}

// AllPixelsOff returns ALLPOFF (black).
func AllPixelsOff() Command {
	return NewCommand(cmdALLPOFF)
}

// AllPixelsOn returns ALLPON (white).
func AllPixelsOn() Command {
	return NewCommand(cmdALLPON)
}

// GammaCurveSelect returns GAMSET.
//
//	| D7 | D6 | D5 | D4 | D3 | D2 | D1 | D0 |
//	| -- | -- | -- | -- |      GC[3:0]      |
func GammaCurveSelect(gc GammaCurve) Command {
	return NewCommand(cmdGAMSET).WithParameter(Combine(gc))
}

// DisplayOff returns DISPOFF: display data is disabled and pixels blanked.
func DisplayOff() Command {
	return NewCommand(cmdDISPOFF)
}

// DisplayOn returns DISPON.
func DisplayOn() Command {
	return NewCommand(cmdDISPON)
}

// TearingEffectOff returns TEOFF.
func TearingEffectOff() Command {
	return NewCommand(cmdTEOFF)
}

// TearingEffectOn returns TEON.
func TearingEffectOn(te TearingEffect) Command {
	return NewCommand(cmdTEON).WithParameter(Combine(te))
}

// DisplayDataControl returns MADCTL.
//
//	| D7 | D6 | D5 | D4 | D3 | D2 | D1 | D0 |
//	| -- | -- | -- | ML | CO | -- | -- | -- |
func DisplayDataControl(ml ScanDirection, co ColorOrder) Command {
	return NewCommand(cmdMADCTL).WithParameter(Combine(ml, co))
}

// IdleModeOff returns IDMOFF.
func IdleModeOff() Command {
	return NewCommand(cmdIDMOFF)
}

// IdleModeOn returns IDMON: the palette is reduced to 8 colors.
func IdleModeOn() Command {
	return NewCommand(cmdIDMON)
}

// SetColorMode returns COLMOD.
func SetColorMode(bpp BitsPerPixel) Command {
	return NewCommand(cmdCOLMOD).WithParameter(Combine(bpp))
}

// SetDisplayBrightness returns WRDISBV; 0x00 is the lowest brightness.
func SetDisplayBrightness(dbv byte) Command {
	return NewCommand(cmdWRDISBV).WithParameter(dbv)
}

// ConfigureBrightness returns WRCTRLD.
//
//	| D7 | D6 |  D5   | D4 | D3 | D2 | D1 | D0 |
//	| -- | -- | BCTRL | -- | DD | BL | -- | -- |
func ConfigureBrightness(bctrl BrightnessControl, dd DisplayDimming, bl Backlight) Command {
	return NewCommand(cmdWRCTRLD).WithParameter(Combine(bctrl, dd, bl))
}

// ConfigureColorEnhancement returns WRCACE.
//
//	| D7 | D6 |   D5 D4   | D3 | D2 |   D1 D0   |
//	| CE | -- | CEMD[1:0] | -- | -- | CABC[1:0] |
func ConfigureColorEnhancement(ce Enhancement, cemd EnhancementMode, cabc AdaptiveBrightness) Command {
	return NewCommand(cmdWRCACE).WithParameter(Combine(ce, cemd, cabc))
}

// SetMinimumBrightness returns WRCABCMB, the floor used by CABC.
func SetMinimumBrightness(mbv byte) Command {
	return NewCommand(cmdWRCABCMB).WithParameter(mbv)
}

// SetCommand2 returns CND2BKxSEL selecting b.
//
// Building it never fails. The caller must update its bank mirror only after
// the command has been sent successfully; Dev.SelectBank does both.
func SetCommand2(b Bank) Command {
	return NewCommand(cmdCND2BKxSEL).WithParameters(0x77, 0x01, 0x00, 0x00, b.Selector())
}

// ReadDisplayID returns RDDID. The reply is 3 bytes.
func ReadDisplayID() Command {
	return NewCommand(cmdRDDID)
}

// ReadPowerMode returns RDDPM. The reply is 1 byte.
func ReadPowerMode() Command {
	return NewCommand(cmdRDDPM)
}

// ReadDisplayPixelFormat returns RDDCOLMOD. The reply is 1 byte.
func ReadDisplayPixelFormat() Command {
	return NewCommand(cmdRDDCOLMOD)
}

// ReadSelfDiagnostics returns RDDSDR. The reply is 1 byte.
func ReadSelfDiagnostics() Command {
	return NewCommand(cmdRDDSDR)
}

// ReadBrightness returns RDDISBV. The reply is 1 byte.
func ReadBrightness() Command {
	return NewCommand(cmdRDDISBV)
}
