package st7701s

// BK1 Command2 builders: power and voltage settings. Each takes the currently
// selected bank and fails with a *BankError unless it is Bank1.

var (
	regVRHS    = mustLookup("VRHS")
	regVCOMS   = mustLookup("VCOMS")
	regVGHSS   = mustLookup("VGHSS")
	regTESTCMD = mustLookup("TESTCMD")
	regVGLS    = mustLookup("VGLS")
	regPWCTRL1 = mustLookup("PWCTRL1")
	regPWCTRL2 = mustLookup("PWCTRL2")
	regSPD1    = mustLookup("SPD1")
	regSPD2    = mustLookup("SPD2")
)

// SetVopAmplitude returns VRHS.
func SetVopAmplitude(current Bank, vrha byte) (Command, error) {
	return regVRHS.Build(current, vrha)
}

// SetVCOMAmplitude returns VCOMS.
func SetVCOMAmplitude(current Bank, vcom byte) (Command, error) {
	return regVCOMS.Build(current, vcom)
}

// SetVGHVoltage returns VGHSS.
func SetVGHVoltage(current Bank, vgh byte) (Command, error) {
	return regVGHSS.Build(current, vgh)
}

// TestCommandSetting returns TESTCMD with the only value the vendor code
// uses, 0x80.
func TestCommandSetting(current Bank) (Command, error) {
	return regTESTCMD.Build(current, 0x80)
}

// SetVGLVoltage returns VGLS. vgl is VGLS[3:0] and is clamped to 0x0F.
//
//	| D7 | D6 | D5 | D4 | D3 D2 D1 D0 |
//	| -- |  1 | -- | -- |  VGLS[3:0]  |
func SetVGLVoltage(current Bank, vgl byte) (Command, error) {
	return regVGLS.Build(current, 0x40|Combine(Nibble(vgl)))
}

// PowerControlOne returns PWCTRL1.
//
//	| D7 D6 | D5 D4 |   D3 D2   |   D1 D0   |
//	|  AP   |  --   | APIS[1:0] | APOS[1:0] |
func PowerControlOne(current Bank, ap GammaOPBias, apis SourceOPInput, apos SourceOPOutput) (Command, error) {
	return regPWCTRL1.Build(current, Combine(ap, apis, apos))
}

// PowerControlTwo returns PWCTRL2.
func PowerControlTwo(current Bank, avdd VoltageAVDD, avcl VoltageAVCL) (Command, error) {
	return regPWCTRL2.Build(current, Combine(avdd, avcl))
}

// PreDriveTimingOne returns SPD1. t2d is the source pre-drive time in 0.2us
// steps (0 to 3us) and is clamped to 0x0F.
//
//	| D7 | D6 | D5 | D4 | D3 D2 D1 D0 |
//	| -- |  1 |  1 |  1 |     T2D     |
func PreDriveTimingOne(current Bank, t2d byte) (Command, error) {
	return regSPD1.Build(current, 0x70|Combine(Nibble(t2d)))
}

// PreDriveTimingTwo returns SPD2; same layout as SPD1.
func PreDriveTimingTwo(current Bank, t2d byte) (Command, error) {
	return regSPD2.Build(current, 0x70|Combine(Nibble(t2d)))
}
