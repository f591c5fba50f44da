package sequence

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/devices/v3/st7701s"
	"periph.io/x/devices/v3/st7701s/panel"
)

type bank = st7701s.Bank
type command = st7701s.Command

// ByName returns a built-in recipe: "tdo" or "kernel".
func ByName(name string, m panel.Mode) ([]Step, error) {
	switch strings.ToLower(name) {
	case "tdo":
		return TDO(m), nil
	case "kernel", "linux-kernel":
		return LinuxKernel(m), nil
	}
	return nil, fmt.Errorf("sequence: unknown recipe %q (known: tdo, kernel)", name)
}

// TDO returns the power-up recipe of the TDO 480x480 panel reference code.
//
// The raw blocks are copied from the panel vendor's sample and are not
// documented; they are kept byte for byte and sent only in their bank. The vendor sample selects BK1 a
// second time before the last EF write and labels it BK3.
func TDO(m panel.Mode) []Step {
	return []Step{
		SelectBank(st7701s.Bank0),
		Guarded("LNESET", func(b bank) (command, error) {
			return st7701s.DisplayLineSetting(b, st7701s.LineDataOff, 0x3B, 0x00)
		}),
		Guarded("PORCTRL", func(b bank) (command, error) {
			return st7701s.PorchControl(b, m)
		}),
		Guarded("INVSET", func(b bank) (command, error) {
			return st7701s.InversionSelect(b, st7701s.InversionOneDot, 0x02)
		}),
		Raw(0xCC, 0x10).In(st7701s.Bank0),
		Guarded("COLCTRL", func(b bank) (command, error) {
			return st7701s.ColorControl(b, st7701s.PWMLow, st7701s.LEDLow, st7701s.PinoutCondensed, st7701s.EndSelfMSB)
		}),
		Guarded("PVGAMCTRL", func(b bank) (command, error) {
			return st7701s.PositiveGammaControl(b, []byte{
				0x02, 0x13, 0x1B, 0x0D, 0x10, 0x05, 0x08, 0x07,
				0x07, 0x24, 0x04, 0x11, 0x0E, 0x2C, 0x33, 0x1D,
			})
		}),
		Guarded("NVGAMCTRL", func(b bank) (command, error) {
			return st7701s.NegativeGammaControl(b, []byte{
				0xB1, 0x05, 0x13, 0x1B, 0x0D, 0x11, 0x05, 0x08, 0x07,
				0x07, 0x24, 0x04, 0x11, 0x0E, 0x2C, 0x33, 0x1D,
			})
		}),

		SelectBank(st7701s.Bank1),
		Guarded("VRHS", func(b bank) (command, error) { return st7701s.SetVopAmplitude(b, 0x5D) }),
		Guarded("VCOMS", func(b bank) (command, error) { return st7701s.SetVCOMAmplitude(b, 0x43) }),
		Guarded("VGHSS", func(b bank) (command, error) { return st7701s.SetVGHVoltage(b, 0x81) }),
		Guarded("TESTCMD", st7701s.TestCommandSetting),
		Guarded("VGLS", func(b bank) (command, error) { return st7701s.SetVGLVoltage(b, 0x03) }),
		Guarded("PWCTRL1", func(b bank) (command, error) {
			return st7701s.PowerControlOne(b, st7701s.GammaOPMiddle, st7701s.SourceInputMin, st7701s.SourceOutputMin)
		}),
		Guarded("PWCTRL2", func(b bank) (command, error) {
			return st7701s.PowerControlTwo(b, st7701s.AVDD6V6, st7701s.AVCLNeg4V4)
		}),
		Guarded("SPD1", func(b bank) (command, error) { return st7701s.PreDriveTimingOne(b, 0x08) }),
		Guarded("SPD2", func(b bank) (command, error) { return st7701s.PreDriveTimingTwo(b, 0x08) }),
		Raw(0xD0, 0x88).In(st7701s.Bank1),
		Raw(0xE0, 0x00, 0x00, 0x02).In(st7701s.Bank1),
		Raw(0xE1, 0x03, 0xA0, 0x00, 0x00, 0x04, 0xA0, 0x00, 0x00, 0x00, 0x20, 0x20).In(st7701s.Bank1),
		Raw(0xE2, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xE3, 0x00, 0x00, 0x11, 0x00).In(st7701s.Bank1),
		Raw(0xE4, 0x22, 0x00).In(st7701s.Bank1),
		Raw(0xE5, 0x05, 0xEC, 0xA0, 0xA0, 0x07, 0xEE, 0xA0, 0xA0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xE6, 0x00, 0x00, 0x11, 0x00).In(st7701s.Bank1),
		Raw(0xE7, 0x22, 0x00).In(st7701s.Bank1),
		Raw(0xE8, 0x06, 0xED, 0xA0, 0xA0, 0x08, 0xEF, 0xA0, 0xA0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xEB, 0x00, 0x00, 0x40, 0x40, 0x00, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xED, 0xFF, 0xFF, 0xFF, 0xBA, 0x0A, 0xBF, 0x45, 0xFF, 0xFF, 0x54, 0xFB, 0xA0, 0xAB, 0xFF, 0xFF, 0xFF).In(st7701s.Bank1),
		Raw(0xEF, 0x10, 0x0D, 0x04, 0x08, 0x3F, 0x1F).In(st7701s.Bank1),

		SelectBank(st7701s.Bank1),
		Raw(0xEF, 0x08).In(st7701s.Bank1),

		SelectBank(st7701s.BankDisabled),
		Send("SLPOUT", st7701s.SleepOut()).Wait(120 * time.Millisecond),
		Send("DISPON", st7701s.DisplayOn()),
		Send("MADCTL", st7701s.DisplayDataControl(st7701s.ScanNormal, st7701s.RGB)),
		Send("COLMOD", st7701s.SetColorMode(st7701s.RGB666)),
	}
}

// LinuxKernel returns the power-up recipe of the Linux ST7701 panel driver.
//
// The raw E0-ED block comes from that driver, whose author took it from a
// Sitronix sample without documentation. It is kept byte for byte.
func LinuxKernel(m panel.Mode) []Step {
	return []Step{
		Send("SWRESET", st7701s.SoftwareReset()).Wait(10 * time.Millisecond),
		Send("SLPOUT", st7701s.SleepOut()).Wait(300 * time.Millisecond),

		SelectBank(st7701s.Bank0),
		Guarded("PVGAMCTRL", func(b bank) (command, error) {
			return st7701s.PositiveGammaControl(b, []byte{
				0x00, 0x0E, 0x15, 0x0F, 0x11, 0x08, 0x08, 0x08,
				0x08, 0x23, 0x04, 0x13, 0x12, 0x2B, 0x34, 0x1F,
			})
		}),
		Guarded("NVGAMCTRL", func(b bank) (command, error) {
			return st7701s.NegativeGammaControl(b, []byte{
				0x00, 0x0E, 0x95, 0x0F, 0x13, 0x07, 0x09, 0x08,
				0x08, 0x22, 0x04, 0x10, 0x0E, 0x2C, 0x34, 0x1F,
			})
		}),
		Guarded("LNESET", func(b bank) (command, error) {
			return st7701s.DisplayLineSetting(b, st7701s.LineDataOn, 0x69, 0x02)
		}),
		Guarded("PORCTRL", func(b bank) (command, error) {
			return st7701s.PorchControl(b, m)
		}),
		Guarded("INVSET", func(b bank) (command, error) {
			return st7701s.InversionSelect(b, st7701s.InversionColumn, 0xFF)
		}),
		Guarded("RGBCTRL", func(b bank) (command, error) {
			return st7701s.RGBControl(b, st7701s.ModeDE, st7701s.VsyncLow, st7701s.HsyncLow,
				st7701s.DataRising, st7701s.EnableLow, m)
		}),

		SelectBank(st7701s.Bank1),
		Guarded("VRHS", func(b bank) (command, error) { return st7701s.SetVopAmplitude(b, 0x45) }),
		Guarded("VCOMS", func(b bank) (command, error) { return st7701s.SetVCOMAmplitude(b, 0x13) }),
		Guarded("VGHSS", func(b bank) (command, error) { return st7701s.SetVGHVoltage(b, 0x07) }),
		Guarded("TESTCMD", st7701s.TestCommandSetting),
		Guarded("VGLS", func(b bank) (command, error) { return st7701s.SetVGLVoltage(b, 0x07) }),
		Guarded("PWCTRL1", func(b bank) (command, error) {
			return st7701s.PowerControlOne(b, st7701s.GammaOPMiddle, st7701s.SourceInputMin, st7701s.SourceOutputOff)
		}),
		Guarded("PWCTRL2", func(b bank) (command, error) {
			return st7701s.PowerControlTwo(b, st7701s.AVDD6V6, st7701s.AVCLNeg4V4)
		}),
		Guarded("SPD1", func(b bank) (command, error) { return st7701s.PreDriveTimingOne(b, 0x03) }),
		Guarded("SPD2", func(b bank) (command, error) { return st7701s.PreDriveTimingTwo(b, 0x03) }),
		Raw(0xE0, 0x00, 0x00, 0x02).In(st7701s.Bank1),
		Raw(0xE1, 0x0B, 0x00, 0x0D, 0x00, 0x0C, 0x00, 0x0E, 0x00, 0x00, 0x44, 0x44).In(st7701s.Bank1),
		Raw(0xE2, 0x33, 0x33, 0x44, 0x44, 0x64, 0x00, 0x66, 0x00, 0x65, 0x00, 0x67, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xE3, 0x00, 0x00, 0x33, 0x33).In(st7701s.Bank1),
		Raw(0xE4, 0x44, 0x44).In(st7701s.Bank1),
		Raw(0xE5, 0x0C, 0x78, 0x3C, 0xA0, 0x0E, 0x78, 0x3C, 0xA0, 0x10, 0x78, 0x3C, 0xA0, 0x12, 0x78, 0x3C, 0xA0).In(st7701s.Bank1),
		Raw(0xE6, 0x00, 0x00, 0x33, 0x33).In(st7701s.Bank1),
		Raw(0xE7, 0x44, 0x44).In(st7701s.Bank1),
		Raw(0xE8, 0x0D, 0x78, 0x3C, 0xA0, 0x0F, 0x78, 0x3C, 0xA0, 0x11, 0x78, 0x3C, 0xA0, 0x13, 0x78, 0x3C, 0xA0).In(st7701s.Bank1),
		Raw(0xEB, 0x02, 0x02, 0x39, 0x39, 0xEE, 0x44, 0x00).In(st7701s.Bank1),
		Raw(0xEC, 0x00, 0x00).In(st7701s.Bank1),
		Raw(0xED, 0xFF, 0xF1, 0x04, 0x56, 0x72, 0x3F, 0xFF, 0xFF, 0xFF, 0xFF, 0xF3, 0x27, 0x65, 0x40, 0x1F, 0xFF).In(st7701s.Bank1),

		SelectBank(st7701s.BankDisabled),
		Send("COLMOD", st7701s.SetColorMode(st7701s.RGB666)),
		Send("MADCTL", st7701s.DisplayDataControl(st7701s.ScanNormal, st7701s.RGB)),
		Send("TEON", st7701s.TearingEffectOn(st7701s.TearingVHBlank)),
		Send("DISPON", st7701s.DisplayOn()).Wait(200 * time.Millisecond),
	}
}
