package st7701s

import (
	"sort"
	"strings"
)

// General commands, reachable in every bank.
const (
	cmdNOP        = 0x00 // No Operation
	cmdSWRESET    = 0x01 // Software Reset
	cmdRDDID      = 0x04 // Read Display ID
	cmdRDNUMED    = 0x05 // Read Number of Errors on DSI
	cmdRDRED      = 0x06 // Read the first pixel of Red Color
	cmdRDGREEN    = 0x07 // Read the first pixel of Green Color
	cmdRDBLUE     = 0x08 // Read the first pixel of Blue Color
	cmdRDDPM      = 0x0A // Read Display Power Mode
	cmdRDDMADCTL  = 0x0B // Read Display MADCTL
	cmdRDDCOLMOD  = 0x0C // Read Display Pixel Format
	cmdRDDIM      = 0x0D // Read Display Image Mode
	cmdRDDSM      = 0x0E // Read Display Signal Mode
	cmdRDDSDR     = 0x0F // Read Display Self-Diagnostic Result
	cmdSLPIN      = 0x10 // Sleep In
	cmdSLPOUT     = 0x11 // Sleep Out
	cmdPTLON      = 0x12 // Partial Display Mode On
	cmdNORON      = 0x13 // Normal Display Mode On
	cmdINVOFF     = 0x20 // Display Inversion Off
	cmdINVON      = 0x21 // Display Inversion On
	cmdALLPOFF    = 0x22 // All Pixel Off
	cmdALLPON     = 0x23 // All Pixel On
	cmdGAMSET     = 0x26 // Gamma Set
	cmdDISPOFF    = 0x28 // Display Off
	cmdDISPON     = 0x29 // Display On
	cmdTEOFF      = 0x34 // Tearing Effect Line Off
	cmdTEON       = 0x35 // Tearing Effect Line On
	cmdMADCTL     = 0x36 // Display Data Access Control
	cmdIDMOFF     = 0x38 // Idle Mode Off
	cmdIDMON      = 0x39 // Idle Mode On
	cmdCOLMOD     = 0x3A // Interface Pixel Format
	cmdGSL        = 0x45 // Get Scan Line
	cmdWRDISBV    = 0x51 // Write Display Brightness
	cmdRDDISBV    = 0x52 // Read Display Brightness Value
	cmdWRCTRLD    = 0x53 // Write CTRL Display
	cmdRDCTRLD    = 0x54 // Read CTRL Value Display
	cmdWRCACE     = 0x55 // Write CABC and Color Enhancement
	cmdRDCABC     = 0x56 // Read CABC
	cmdWRCABCMB   = 0x5E // Write CABC Minimum Brightness
	cmdRDCABCMB   = 0x5F // Read CABC Minimum Brightness
	cmdRDABCSDR   = 0x68 // Read Automatic Brightness Control Self-Diagnostic Result
	cmdRDBWLB     = 0x70 // Read Black/White Low Bits
	cmdRDBkx      = 0x71 // Read Bkx
	cmdRDBky      = 0x72 // Read Bky
	cmdRDWx       = 0x73 // Read Wx
	cmdRDWy       = 0x74 // Read Wy
	cmdRDRGLB     = 0x75 // Read Red/Green Low Bits
	cmdRDRx       = 0x76 // Read Rx
	cmdRDRy       = 0x77 // Read Ry
	cmdRDGx       = 0x78 // Read Gx
	cmdRDGy       = 0x79 // Read Gy
	cmdRDBALB     = 0x7A // Read Blue/A Color Low Bits
	cmdRDBx       = 0x7B // Read Bx
	cmdCND2BKxSEL = 0xFF // Set Command2 mode for BK register
)

// BK0 Command2 registers.
const (
	bk0PVGAMCTRL = 0xB0 // Positive Voltage Gamma Control
	bk0NVGAMCTRL = 0xB1 // Negative Voltage Gamma Control
	bk0DGMEN     = 0xB8 // Digital Gamma Enable
	bk0DGMLUTR   = 0xB9 // Digital Gamma Look-up Table for Red
	bk0DGMLUTB   = 0xBA // Digital Gamma Look-up Table for Blue
	bk0PWMCLKSEL = 0xBC // PWM CLK select
	bk0LNESET    = 0xC0 // Display Line Setting
	bk0PORCTRL   = 0xC1 // Porch Control
	bk0INVSET    = 0xC2 // Inversion selection & Frame Rate Control
	bk0RGBCTRL   = 0xC3 // RGB control
	bk0PARCTRL   = 0xC5 // Partial Mode Control
	bk0SDIR      = 0xC7 // X-direction Control
	bk0PDOSET    = 0xC8 // Pseudo-Dot inversion driving setting
	bk0COLCTRL   = 0xCD // Color Control
	bk0SRECTRL   = 0xE0 // Sunlight Readable Enhancement
	bk0NRCTRL    = 0xE1 // Noise Reduce Control
	bk0SECTRL    = 0xE2 // Sharpness Control
	bk0CCCTRL    = 0xE3 // Color Calibration Control
	bk0SKCTRL    = 0xE4 // Skin Tone Preservation Control
)

// BK1 Command2 registers.
const (
	bk1VRHS     = 0xB0 // Vop Amplitude setting
	bk1VCOMS    = 0xB1 // VCOM amplitude setting
	bk1VGHSS    = 0xB2 // VGH Voltage setting
	bk1TESTCMD  = 0xB3 // TEST Command Setting
	bk1VGLS     = 0xB5 // VGL Voltage setting
	bk1PWCTRL1  = 0xB7 // Power Control 1
	bk1PWCTRL2  = 0xB8 // Power Control 2
	bk1PCLKS1   = 0xBA // Power pumping clk selection 1
	bk1PCLKS3   = 0xBC // Power pumping clk selection 3
	bk1SPD1     = 0xC1 // Source pre_drive timing set1
	bk1SPD2     = 0xC2 // Source pre_drive timing set2
	bk1MIPISET1 = 0xD0 // MIPI Setting 1
	bk1MIPISET2 = 0xD1 // MIPI Setting 2
	bk1MIPISET3 = 0xD2 // MIPI Setting 3
	bk1MIPISET4 = 0xD3 // MIPI Setting 4
)

// Register describes one register of the chip: its mnemonic, its opcode and
// the bank that has to be selected for the opcode to reach it.
type Register struct {
	Name     string
	Opcode   byte
	Requires Requirement
}

// Build returns a command for r carrying params verbatim, provided current
// satisfies r.Requires.
func (r Register) Build(current Bank, params ...byte) (Command, error) {
	return validate(r.Name, current, r.Requires, func() Command {
		return NewCommand(r.Opcode).WithParameters(params...)
	})
}

func general(name string, op byte) Register {
	return Register{Name: name, Opcode: op, Requires: AnyBank}
}

func banked(b Bank, name string, op byte) Register {
	return Register{Name: name, Opcode: op, Requires: InBank(b)}
}

var registers = []Register{
	general("NOP", cmdNOP),
	general("SWRESET", cmdSWRESET),
	general("RDDID", cmdRDDID),
	general("RDNUMED", cmdRDNUMED),
	general("RDRED", cmdRDRED),
	general("RDGREEN", cmdRDGREEN),
	general("RDBLUE", cmdRDBLUE),
	general("RDDPM", cmdRDDPM),
	general("RDDMADCTL", cmdRDDMADCTL),
	general("RDDCOLMOD", cmdRDDCOLMOD),
	general("RDDIM", cmdRDDIM),
	general("RDDSM", cmdRDDSM),
	general("RDDSDR", cmdRDDSDR),
	general("SLPIN", cmdSLPIN),
	general("SLPOUT", cmdSLPOUT),
	general("PTLON", cmdPTLON),
	general("NORON", cmdNORON),
	general("INVOFF", cmdINVOFF),
	general("INVON", cmdINVON),
	general("ALLPOFF", cmdALLPOFF),
	general("ALLPON", cmdALLPON),
	general("GAMSET", cmdGAMSET),
	general("DISPOFF", cmdDISPOFF),
	general("DISPON", cmdDISPON),
	general("TEOFF", cmdTEOFF),
	general("TEON", cmdTEON),
	general("MADCTL", cmdMADCTL),
	general("IDMOFF", cmdIDMOFF),
	general("IDMON", cmdIDMON),
	general("COLMOD", cmdCOLMOD),
	general("GSL", cmdGSL),
	general("WRDISBV", cmdWRDISBV),
	general("RDDISBV", cmdRDDISBV),
	general("WRCTRLD", cmdWRCTRLD),
	general("RDCTRLD", cmdRDCTRLD),
	general("WRCACE", cmdWRCACE),
	general("RDCABC", cmdRDCABC),
	general("WRCABCMB", cmdWRCABCMB),
	general("RDCABCMB", cmdRDCABCMB),
	general("RDABCSDR", cmdRDABCSDR),
	general("RDBWLB", cmdRDBWLB),
	general("RDBkx", cmdRDBkx),
	general("RDBky", cmdRDBky),
	general("RDWx", cmdRDWx),
	general("RDWy", cmdRDWy),
	general("RDRGLB", cmdRDRGLB),
	general("RDRx", cmdRDRx),
	general("RDRy", cmdRDRy),
	general("RDGx", cmdRDGx),
	general("RDGy", cmdRDGy),
	general("RDBALB", cmdRDBALB),
	general("RDBx", cmdRDBx),
	general("CND2BKxSEL", cmdCND2BKxSEL),

	banked(Bank0, "PVGAMCTRL", bk0PVGAMCTRL),
	banked(Bank0, "NVGAMCTRL", bk0NVGAMCTRL),
	banked(Bank0, "DGMEN", bk0DGMEN),
	banked(Bank0, "DGMLUTR", bk0DGMLUTR),
	banked(Bank0, "DGMLUTB", bk0DGMLUTB),
	banked(Bank0, "PWMCLKSEL", bk0PWMCLKSEL),
	banked(Bank0, "LNESET", bk0LNESET),
	banked(Bank0, "PORCTRL", bk0PORCTRL),
	banked(Bank0, "INVSET", bk0INVSET),
	banked(Bank0, "RGBCTRL", bk0RGBCTRL),
	banked(Bank0, "PARCTRL", bk0PARCTRL),
	banked(Bank0, "SDIR", bk0SDIR),
	banked(Bank0, "PDOSET", bk0PDOSET),
	banked(Bank0, "COLCTRL", bk0COLCTRL),
	banked(Bank0, "SRECTRL", bk0SRECTRL),
	banked(Bank0, "NRCTRL", bk0NRCTRL),
	banked(Bank0, "SECTRL", bk0SECTRL),
	banked(Bank0, "CCCTRL", bk0CCCTRL),
	banked(Bank0, "SKCTRL", bk0SKCTRL),

	banked(Bank1, "VRHS", bk1VRHS),
	banked(Bank1, "VCOMS", bk1VCOMS),
	banked(Bank1, "VGHSS", bk1VGHSS),
	banked(Bank1, "TESTCMD", bk1TESTCMD),
	banked(Bank1, "VGLS", bk1VGLS),
	banked(Bank1, "PWCTRL1", bk1PWCTRL1),
	banked(Bank1, "PWCTRL2", bk1PWCTRL2),
	banked(Bank1, "PCLKS1", bk1PCLKS1),
	banked(Bank1, "PCLKS3", bk1PCLKS3),
	banked(Bank1, "SPD1", bk1SPD1),
	banked(Bank1, "SPD2", bk1SPD2),
	banked(Bank1, "MIPISET1", bk1MIPISET1),
	banked(Bank1, "MIPISET2", bk1MIPISET2),
	banked(Bank1, "MIPISET3", bk1MIPISET3),
	banked(Bank1, "MIPISET4", bk1MIPISET4),
}

var registersByName = func() map[string]Register {
	m := make(map[string]Register, len(registers))
	for _, r := range registers {
		m[strings.ToUpper(r.Name)] = r
	}
	return m
}()

// Lookup returns the register with the given mnemonic, ignoring case.
func Lookup(name string) (Register, bool) {
	r, ok := registersByName[strings.ToUpper(name)]
	return r, ok
}

// Registers returns every known register ordered by bank, then opcode.
func Registers() []Register {
	out := append([]Register(nil), registers...)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := rank(out[i].Requires), rank(out[j].Requires)
		if ki != kj {
			return ki < kj
		}
		return out[i].Opcode < out[j].Opcode
	})
	return out
}

// rank orders general registers before banked ones.
func rank(r Requirement) int {
	if r.Any() {
		return 0
	}
	return 1 + int(r.Bank())
}

// mustLookup is used by the typed builders; the table is static so a miss is
// a programming error.
func mustLookup(name string) Register {
	r, ok := Lookup(name)
	if !ok {
		panic("st7701s: unknown register " + name)
	}
	return r
}
