// Package st7701s controls the register interface of a Sitronix ST7701S
// TFT-LCD driver via its 3-wire SPI port.
//
// The ST7701S drives panels of up to 480×864 pixels. Pixels arrive over a
// parallel RGB (DPI) or MIPI-DSI link; the serial port carried by this
// package is used to configure the chip: power, voltages, gamma, porches and
// signal polarities. This package builds the commands, checks them against
// the selected register bank and puts them on the wire. It does not decide the
// order of a power-up; see the sequence subpackage for ready recipes.
//
// # Wire Format
//
// Every unit on the bus is a 9-bit word, D/CX first, then 8 bits MSB first.
// A command is an address word (D/CX=0) carrying the opcode, followed by one
// data word (D/CX=1) per parameter:
//
//	MADCTL 0x10  →  [0x36 0x00] [0x10 0x01]
//
// In memory a Word holds the byte first and the D/CX flag in bit 0 of the
// second byte, which is what spidev expects for 9 bits per word.
//
// # Command2 Banks
//
// Opcodes 0xB0 to 0xEF address different registers depending on the
// Command2 bank selected with CND2BKxSEL (0xFF 77 01 00 00 xx):
//
//	Bank          Selector   Registers
//	BankDisabled  0x00       general commands only
//	Bank0         0x10       gamma, line, porch, inversion, RGB, color
//	Bank1         0x11       power and voltages
//
// The chip cannot report its bank, so Dev keeps a mirror updated by
// SelectBank after each successful switch. Banked builders take the current
// bank and return a *BankError, matching ErrWrongBank, instead of a command
// that would land in the wrong register.
//
// # Hardware Connection
//
// Connect the ST7701S serial interface to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCI         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI); tie MISO through 1kΩ to read back
//	CSX         → SPI Chip Select
//	RESX        → Optional: GPIO for hardware reset
//
// There is no D/CX pin; the flag travels in the first bit of each word.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7701s"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device
//		dev, _ := st7701s.NewSPI(spiBus, nil)
//		defer dev.Halt()
//
//		// BK1 registers need BK1 selected first
//		dev.SelectBank(st7701s.Bank1)
//		vgl, _ := st7701s.SetVGLVoltage(dev.Bank(), 0x07)
//		dev.Send(vgl)
//
//		// Back to general commands
//		dev.SelectBank(st7701s.BankDisabled)
//		dev.SendAll(st7701s.SleepOut(), st7701s.DisplayOn())
//	}
//
// # Using Hardware Reset Pin (Optional)
//
//	rstPin := gpioreg.ByName("GPIO25")
//
//	dev, _ := st7701s.NewSPI(spiBus, &st7701s.Opts{
//		RST: rstPin,
//	})
//	dev.Reset()
//
// Reset pulls RESX low for 10ms, then waits 120ms for the chip to load its
// defaults. Without RST it sends SWRESET instead. Either way the bank mirror
// returns to BankDisabled and a halted Dev becomes usable again.
//
// # 8-bit Controllers
//
// Controllers without 9-bit word support can set Opts.Packed. Each word is
// then packed MSB first into 2 bytes with 7 pad bits, which the chip drops
// when chip select is released. TinyGo boards use the tinyspi subpackage the
// same way.
//
// The packed port is opened full-duplex. A read clocks the address word out
// and the reply in on one transfer, and the reply is taken from bit 9 on.
//
// # Reading
//
// Read commands such as RDDID answer on SDA after the address word. Dev.Read
// sends the address word and clocks in the reply on the same chip select
// cycle. SDA carries both directions, so the hardware must route it to MISO
// as well as MOSI.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.displayfuture.com/Display/datasheet/controller/ST7701S.pdf
package st7701s
