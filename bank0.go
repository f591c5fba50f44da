package st7701s

import "periph.io/x/devices/v3/st7701s/panel"

// BK0 Command2 builders. Each takes the currently selected bank and fails
// with a *BankError unless it is Bank0.

var (
	regPVGAMCTRL = mustLookup("PVGAMCTRL")
	regNVGAMCTRL = mustLookup("NVGAMCTRL")
	regLNESET    = mustLookup("LNESET")
	regPORCTRL   = mustLookup("PORCTRL")
	regINVSET    = mustLookup("INVSET")
	regRGBCTRL   = mustLookup("RGBCTRL")
	regCOLCTRL   = mustLookup("COLCTRL")
	regSRECTRL   = mustLookup("SRECTRL")
)

// Maximum values of the numeric BK0 fields.
const (
	maxLine      = 0x7F
	maxLineDelta = 0x03
	maxSREAlpha  = 0x0F
)

// PositiveGammaControl returns PVGAMCTRL. The 16 gamma bytes have little
// internal structure and are passed through.
func PositiveGammaControl(current Bank, params []byte) (Command, error) {
	return regPVGAMCTRL.Build(current, params...)
}

// NegativeGammaControl returns NVGAMCTRL. See PositiveGammaControl.
func NegativeGammaControl(current Bank, params []byte) (Command, error) {
	return regNVGAMCTRL.Build(current, params...)
}

// DisplayLineSetting returns LNESET. line is NL[6:0], the number of display
// lines in units of 8 minus one; delta is NL_DELTA[1:0].
//
//	|   D7   | D6 D5 D4 D3 D2 D1 D0 |
//	| LDE_EN |       NL[6:0]        |
//	|   --   |  ... | NL_DELTA[1:0] |
func DisplayLineSetting(current Bank, lde LineDataEnable, line, delta byte) (Command, error) {
	return validate(regLNESET.Name, current, regLNESET.Requires, func() Command {
		return NewCommand(regLNESET.Opcode).WithParameters(
			Combine(lde, Bounded{Value: line, Max: maxLine}),
			Clamp(delta, maxLineDelta),
		)
	})
}

// PorchControl returns PORCTRL with the vertical back and front porch of m.
// Porches larger than a byte are clamped; use panel.Mode.Validate to reject
// such timings up front.
func PorchControl(current Bank, m panel.Mode) (Command, error) {
	vbp, vfp := porch(m.VBackPorch()), porch(m.VFrontPorch())
	return validate(regPORCTRL.Name, current, regPORCTRL.Requires, func() Command {
		return NewCommand(regPORCTRL.Opcode).WithParameters(vbp, vfp)
	})
}

// InversionSelect returns INVSET. rtni is the minimum number of pclk per line
// and is sent verbatim.
func InversionSelect(current Bank, nlinv Inversion, rtni byte) (Command, error) {
	return validate(regINVSET.Name, current, regINVSET.Requires, func() Command {
		return NewCommand(regINVSET.Opcode).WithParameters(0x30|Combine(nlinv), rtni)
	})
}

// RGBControl returns RGBCTRL: interface mode, signal polarities and the
// horizontal and vertical back porch of m.
//
//	|  D7  | D6 | D5 | D4 | D3  | D2  | D1 | D0 |
//	| DEHV | -- | -- | -- | VSP | HSP | DP | EP |
//	|                   HBP                     |
//	|                   VBP                     |
func RGBControl(current Bank, dehv DataEnable, vsp VsyncActive, hsp HsyncActive, dp DataPolarity, ep EnablePolarity, m panel.Mode) (Command, error) {
	hbp, vbp := porch(m.HBackPorch()), porch(m.VBackPorch())
	return validate(regRGBCTRL.Name, current, regRGBCTRL.Requires, func() Command {
		return NewCommand(regRGBCTRL.Opcode).WithParameters(Combine(dehv, vsp, hsp, dp, ep), hbp, vbp)
	})
}

// ColorControl returns COLCTRL.
//
//	| D7 | D6 | D5  | D4  | D3  | D2 D1 D0 |
//	| -- | -- | PWM | LED | MDT |   EPF    |
func ColorControl(current Bank, pwm PWMPolarity, led LEDPolarity, mdt PixelPinout, epf EndPixelFormat) (Command, error) {
	return validate(regCOLCTRL.Name, current, regCOLCTRL.Requires, func() Command {
		return NewCommand(regCOLCTRL.Opcode).WithParameter(Combine(pwm, led, mdt, epf))
	})
}

// SunlightEnhancement returns SRECTRL. alpha is clamped to 0x0F.
//
//	| D7 | D6 | D5 | D4  | D3 D2 D1 D0    |
//	| -- | -- | -- | SRE | SRE_alpha[3:0] |
func SunlightEnhancement(current Bank, sre SunlightReadable, alpha byte) (Command, error) {
	return validate(regSRECTRL.Name, current, regSRECTRL.Requires, func() Command {
		return NewCommand(regSRECTRL.Opcode).WithParameter(Combine(sre, Bounded{Value: alpha, Max: maxSREAlpha}))
	})
}

func porch(v uint32) byte {
	if v > 0xFF {
		return 0xFF
	}
	return byte(v)
}
