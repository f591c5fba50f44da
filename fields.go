package st7701s

import "fmt"

// Field is one option of a register parameter byte, already shifted into its
// bit position.
//
// The fields accepted together by a builder never share bits, so Combine can
// merge them with OR without losing information.
type Field interface {
	Bits() byte
}

// Combine merges fields into one parameter byte, in the order given.
func Combine(fields ...Field) byte {
	var b byte
	for _, f := range fields {
		b |= f.Bits()
	}
	return b
}

// Clamp returns v, or max when v exceeds it.
//
// Over-range numeric fields are clamped rather than rejected, matching how
// the chip treats over-range writes.
func Clamp(v, max byte) byte {
	if v > max {
		return max
	}
	return v
}

// Bounded is a numeric field occupying the low bits of a parameter byte.
// Value is clamped to Max when encoded.
type Bounded struct {
	Value byte
	Max   byte
}

// Bits implements Field.
func (b Bounded) Bits() byte {
	return Clamp(b.Value, b.Max)
}

// Nibble returns a 4-bit Bounded field.
func Nibble(v byte) Bounded {
	return Bounded{Value: v, Max: 0x0F}
}

// GammaCurve selects a predefined gamma curve (GAMSET GC[3:0]).
//
// Only GammaCurve1 is documented; the others are reserved.
type GammaCurve byte

const (
	GammaCurve1 GammaCurve = 0x01 // G=2.2
	GammaCurve2 GammaCurve = 0x02
	GammaCurve3 GammaCurve = 0x04
	GammaCurve4 GammaCurve = 0x08
)

// Bits implements Field.
func (f GammaCurve) Bits() byte { return byte(f) }

// TearingEffect is the TEON output mode.
type TearingEffect byte

const (
	TearingVBlank  TearingEffect = 0x00 // V-blanking only
	TearingVHBlank TearingEffect = 0x01 // V-blanking and H-blanking
)

// Bits implements Field.
func (f TearingEffect) Bits() byte { return byte(f) }

// DataEnable selects the RGB interface mode (RGBCTRL DEHV).
type DataEnable byte

const (
	ModeDE DataEnable = 0x00
	ModeHV DataEnable = 0x80
)

// Bits implements Field.
func (f DataEnable) Bits() byte { return byte(f) }

// VsyncActive is the VSYNC pin polarity (RGBCTRL VSP).
type VsyncActive byte

const (
	VsyncLow  VsyncActive = 0x00
	VsyncHigh VsyncActive = 0x08
)

// Bits implements Field.
func (f VsyncActive) Bits() byte { return byte(f) }

// HsyncActive is the HSYNC pin polarity (RGBCTRL HSP).
type HsyncActive byte

const (
	HsyncLow  HsyncActive = 0x00
	HsyncHigh HsyncActive = 0x04
)

// Bits implements Field.
func (f HsyncActive) Bits() byte { return byte(f) }

// DataPolarity is the DOTCLK edge data is sampled on (RGBCTRL DP).
type DataPolarity byte

const (
	DataRising  DataPolarity = 0x00
	DataFalling DataPolarity = 0x02
)

// Bits implements Field.
func (f DataPolarity) Bits() byte { return byte(f) }

// EnablePolarity is the ENABLE pin polarity (RGBCTRL EP).
type EnablePolarity byte

const (
	EnableLow  EnablePolarity = 0x00
	EnableHigh EnablePolarity = 0x01
)

// Bits implements Field.
func (f EnablePolarity) Bits() byte { return byte(f) }

// PWMPolarity is the LEDPWM polarity (COLCTRL PWM).
type PWMPolarity byte

const (
	PWMLow  PWMPolarity = 0x00
	PWMHigh PWMPolarity = 0x20
)

// Bits implements Field.
func (f PWMPolarity) Bits() byte { return byte(f) }

// LEDPolarity is the LED_ON polarity (COLCTRL LED).
type LEDPolarity byte

const (
	LEDLow  LEDPolarity = 0x00
	LEDHigh LEDPolarity = 0x10
)

// Bits implements Field.
func (f LEDPolarity) Bits() byte { return byte(f) }

// PixelPinout selects how 262K pixels map onto DB pins (COLCTRL MDT).
type PixelPinout byte

const (
	PinoutNormal    PixelPinout = 0x00
	PinoutCondensed PixelPinout = 0x08
)

// Bits implements Field.
func (f PixelPinout) Bits() byte { return byte(f) }

// EndPixelFormat fills the low bits of 65K and 262K pixels (COLCTRL EPF).
type EndPixelFormat byte

const (
	EndSelfMSB  EndPixelFormat = 0x00
	EndGreenMSB EndPixelFormat = 0x01
	EndSelfLSB  EndPixelFormat = 0x02
	EndZero     EndPixelFormat = 0x04
	EndOne      EndPixelFormat = 0x05
)

// Bits implements Field.
func (f EndPixelFormat) Bits() byte { return byte(f) }

// ScanDirection is the MADCTL ML bit.
type ScanDirection byte

const (
	ScanNormal  ScanDirection = 0x00
	ScanReverse ScanDirection = 0x10
)

// Bits implements Field.
func (f ScanDirection) Bits() byte { return byte(f) }

// ColorOrder is the MADCTL RGB/BGR bit.
type ColorOrder byte

const (
	RGB ColorOrder = 0x00
	BGR ColorOrder = 0x08
)

// Bits implements Field.
func (f ColorOrder) Bits() byte { return byte(f) }

// BitsPerPixel is the interface pixel format (COLMOD).
type BitsPerPixel byte

const (
	RGB565 BitsPerPixel = 0x50
	RGB666 BitsPerPixel = 0x60
	RGB888 BitsPerPixel = 0x70
)

// Bits implements Field.
func (f BitsPerPixel) Bits() byte { return byte(f) }

func (f BitsPerPixel) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGB666:
		return "RGB666"
	case RGB888:
		return "RGB888"
	}
	return fmt.Sprintf("BitsPerPixel(0x%02X)", byte(f))
}

// ParseBitsPerPixel decodes an RDDCOLMOD reply. Bits outside VIPF[2:0] are
// ignored.
func ParseBitsPerPixel(b byte) (BitsPerPixel, error) {
	switch f := BitsPerPixel(b & 0x70); f {
	case RGB565, RGB666, RGB888:
		return f, nil
	}
	return 0, fmt.Errorf("st7701s: unknown pixel format 0x%02X", b)
}

// BrightnessControl is the WRCTRLD BCTRL bit.
type BrightnessControl byte

const (
	// BrightnessOff ignores the brightness value and soft-sets it to 0x00.
	BrightnessOff BrightnessControl = 0x00
	// BrightnessOn uses the brightness value normally.
	BrightnessOn BrightnessControl = 0x20
)

// Bits implements Field.
func (f BrightnessControl) Bits() byte { return byte(f) }

// DisplayDimming is the WRCTRLD DD bit. It only affects manual brightness.
type DisplayDimming byte

const (
	DimmingOff DisplayDimming = 0x00
	DimmingOn  DisplayDimming = 0x08
)

// Bits implements Field.
func (f DisplayDimming) Bits() byte { return byte(f) }

// Backlight is the WRCTRLD BL bit.
type Backlight byte

const (
	// BacklightOff disables the backlight circuit. Control lines must be low.
	BacklightOff Backlight = 0x00
	BacklightOn  Backlight = 0x04
)

// Bits implements Field.
func (f Backlight) Bits() byte { return byte(f) }

// Enhancement is the WRCACE CE bit.
type Enhancement byte

const (
	EnhancementOff Enhancement = 0x00
	EnhancementOn  Enhancement = 0x80
)

// Bits implements Field.
func (f Enhancement) Bits() byte { return byte(f) }

// EnhancementMode is WRCACE CEMD[1:0].
type EnhancementMode byte

const (
	EnhancementLow    EnhancementMode = 0x00
	EnhancementMedium EnhancementMode = 0x10
	EnhancementHigh   EnhancementMode = 0x30
)

// Bits implements Field.
func (f EnhancementMode) Bits() byte { return byte(f) }

// AdaptiveBrightness is WRCACE CABC[1:0].
type AdaptiveBrightness byte

const (
	CABCOff           AdaptiveBrightness = 0x00
	CABCUserInterface AdaptiveBrightness = 0x01
	CABCStillPicture  AdaptiveBrightness = 0x02
	CABCMovingImage   AdaptiveBrightness = 0x03
)

// Bits implements Field.
func (f AdaptiveBrightness) Bits() byte { return byte(f) }

// Inversion is INVSET NLINV[2:0].
type Inversion byte

const (
	InversionOneDot Inversion = 0x00
	InversionTwoDot Inversion = 0x01
	InversionColumn Inversion = 0x07
)

// Bits implements Field.
func (f Inversion) Bits() byte { return byte(f) }

// GammaOPBias is PWCTRL1 AP[1:0].
type GammaOPBias byte

const (
	GammaOPOff    GammaOPBias = 0x00
	GammaOPMin    GammaOPBias = 0x40
	GammaOPMiddle GammaOPBias = 0x80
	GammaOPMax    GammaOPBias = 0xC0
)

// Bits implements Field.
func (f GammaOPBias) Bits() byte { return byte(f) }

// SourceOPInput is PWCTRL1 APIS[1:0].
type SourceOPInput byte

const (
	SourceInputOff    SourceOPInput = 0x00
	SourceInputMin    SourceOPInput = 0x04
	SourceInputMiddle SourceOPInput = 0x08
	SourceInputMax    SourceOPInput = 0x0C
)

// Bits implements Field.
func (f SourceOPInput) Bits() byte { return byte(f) }

// SourceOPOutput is PWCTRL1 APOS[1:0].
type SourceOPOutput byte

const (
	SourceOutputOff    SourceOPOutput = 0x00
	SourceOutputMin    SourceOPOutput = 0x01
	SourceOutputMiddle SourceOPOutput = 0x02
	SourceOutputMax    SourceOPOutput = 0x03
)

// Bits implements Field.
func (f SourceOPOutput) Bits() byte { return byte(f) }

// VoltageAVDD is PWCTRL2 AVDD[1:0].
type VoltageAVDD byte

const (
	AVDD6V2 VoltageAVDD = 0x00
	AVDD6V4 VoltageAVDD = 0x10
	AVDD6V6 VoltageAVDD = 0x20
	AVDD6V8 VoltageAVDD = 0x30
)

// Bits implements Field.
func (f VoltageAVDD) Bits() byte { return byte(f) }

// VoltageAVCL is PWCTRL2 AVCL[1:0].
type VoltageAVCL byte

const (
	AVCLNeg4V4 VoltageAVCL = 0x00
	AVCLNeg4V6 VoltageAVCL = 0x01
	AVCLNeg4V8 VoltageAVCL = 0x02
	AVCLNeg5V0 VoltageAVCL = 0x03
)

// Bits implements Field.
func (f VoltageAVCL) Bits() byte { return byte(f) }

// SunlightReadable is the SRECTRL SRE bit.
type SunlightReadable byte

const (
	SunlightOff SunlightReadable = 0x00 // default
	SunlightOn  SunlightReadable = 0x10
)

// Bits implements Field.
func (f SunlightReadable) Bits() byte { return byte(f) }

// LineDataEnable is the LNESET LDE_EN bit.
type LineDataEnable byte

const (
	LineDataOff LineDataEnable = 0x00
	LineDataOn  LineDataEnable = 0x80
)

// Bits implements Field.
func (f LineDataEnable) Bits() byte { return byte(f) }
