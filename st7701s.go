package st7701s

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ErrHalted is returned by Dev methods after Halt.
var ErrHalted = errors.New("st7701s: halted")

// DefaultSpeed is the bus clock used when Opts.Speed is zero.
const DefaultSpeed = 20 * physic.KiloHertz

// Opts is the configuration for the ST7701S device.
type Opts struct {
	// Bus clock (default: DefaultSpeed)
	Speed physic.Frequency

	// Packed sends 9-bit words over a full-duplex connection opened with 8
	// bits per word, for controllers without 9-bit support. Reads then need
	// MOSI and MISO both joined onto SDA.
	Packed bool

	// Optional hardware reset pin (RESX, active low)
	RST gpio.PinOut

	// Logger receives a debug record per transmitted command (default: slog.Default())
	Logger *slog.Logger
}

// Dev is the device handle for the ST7701S.
//
// Dev mirrors the Command2 bank selected on the chip. The mirror is only
// correct when every bank switch goes through SelectBank, since the chip
// cannot report its bank. A Dev must not be used from several goroutines at
// once; commands have to reach the chip strictly in order.
type Dev struct {
	t      Transport
	rst    gpio.PinOut
	log    *slog.Logger
	bank   Bank
	halted bool
}

// NewSPI creates a new ST7701S device connected via SPI.
//
// The port is configured for Mode0 (idle-low clock, leading-edge sample),
// MSB first, half-duplex and 9 bits per word. With opts.Packed it is opened
// full-duplex with 8 bits per word instead: the reply of a read starts in
// the middle of a byte, so it is clocked in on the same transfer as the
// address and extracted afterwards.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	speed := opts.Speed
	if speed == 0 {
		speed = DefaultSpeed
	}

	mode, bits := spi.Mode0|spi.HalfDuplex, 9
	if opts.Packed {
		mode, bits = spi.Mode0, 8
	}
	c, err := p.Connect(speed, mode, bits)
	if err != nil {
		return nil, fmt.Errorf("st7701s: failed to connect SPI: %w", err)
	}

	var t Transport
	if opts.Packed {
		t = NewPackedTransport(c)
	} else {
		t = NewSPITransport(c)
	}
	return New(t, opts), nil
}

// New creates a device on top of an existing transport.
//
// opts can be nil; Speed and Packed are ignored.
func New(t Transport, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Dev{
		t:    t,
		rst:  opts.RST,
		log:  log,
		bank: BankDisabled,
	}
}

// Reset pulses the reset pin: low for 10ms, then high and a 120ms wait for
// the chip to load its defaults. Without a reset pin it sends SWRESET and
// waits 120ms, the delay required when the chip was sleeping.
//
// A reset returns the chip to BankDisabled, and so does the mirror. It also
// clears the effect of Halt.
func (d *Dev) Reset() error {
	if d.rst == nil {
		if err := d.send(SoftwareReset()); err != nil {
			return err
		}
		time.Sleep(120 * time.Millisecond)
		d.bank = BankDisabled
		d.halted = false
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7701s: failed to pull RST low: %w", err)
	}
	time.Sleep(10 * time.Millisecond)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7701s: failed to pull RST high: %w", err)
	}
	time.Sleep(120 * time.Millisecond)

	d.bank = BankDisabled
	d.halted = false
	return nil
}

// Bank returns the mirrored Command2 bank.
func (d *Dev) Bank() Bank {
	return d.bank
}

// Send transmits c: the address word, then each parameter word in order.
//
// Transport errors are returned wrapped and are not retried. A failure part
// way leaves the chip with a truncated parameter list, which the next address
// word terminates.
func (d *Dev) Send(c Command) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(c)
}

// send writes c regardless of the halted state. A successful CND2BKxSEL
// moves the mirror, whoever built it.
func (d *Dev) send(c Command) error {
	d.log.Debug("st7701s: send", slog.String("cmd", c.String()), slog.String("bank", d.bank.String()))
	for i, w := range c.Words() {
		if err := d.t.Write(w); err != nil {
			return fmt.Errorf("st7701s: send %s word %d: %w", c, i, err)
		}
	}
	if c.IsBankSwitch() {
		if b, err := BankOf(c); err == nil {
			d.bank = b
		}
	}
	return nil
}

// SendAll sends cmds in order and stops at the first error.
func (d *Dev) SendAll(cmds ...Command) error {
	for _, c := range cmds {
		if err := d.Send(c); err != nil {
			return err
		}
	}
	return nil
}

// SelectBank sends CND2BKxSEL for b and, once the write succeeded, updates
// the mirror. On failure the mirror keeps the previous bank.
//
// Sending a CND2BKxSEL command built elsewhere through Send has the same
// effect.
func (d *Dev) SelectBank(b Bank) error {
	if !b.Valid() {
		return fmt.Errorf("st7701s: invalid bank %s", b)
	}
	return d.Send(SetCommand2(b))
}

// Resync sends the bank switch for the mirrored bank again. It is the only way
// to bring the chip back in line with the mirror after a failed write.
func (d *Dev) Resync() error {
	return d.SelectBank(d.bank)
}

// Read sends c's address word and reads n reply bytes. Parameters of c are
// not sent.
func (d *Dev) Read(c Command, n int) ([]byte, error) {
	if d.halted {
		return nil, ErrHalted
	}
	if n <= 0 {
		return nil, fmt.Errorf("st7701s: invalid read length %d", n)
	}
	r := make([]byte, n)
	if err := d.t.Read(AddressWord(c.Opcode()), r); err != nil {
		return nil, fmt.Errorf("st7701s: read 0x%02X: %w", c.Opcode(), err)
	}
	d.log.Debug("st7701s: read", slog.String("cmd", c.String()), slog.String("reply", fmt.Sprintf("% X", r)))
	return r, nil
}

// DisplayID returns the 3 ID bytes reported by RDDID.
func (d *Dev) DisplayID() ([]byte, error) {
	return d.Read(ReadDisplayID(), 3)
}

// PixelFormat returns the interface pixel format reported by RDDCOLMOD.
func (d *Dev) PixelFormat() (BitsPerPixel, error) {
	r, err := d.Read(ReadDisplayPixelFormat(), 1)
	if err != nil {
		return 0, err
	}
	return ParseBitsPerPixel(r[0])
}

// SelfDiagnostics returns the RDDSDR result byte.
func (d *Dev) SelfDiagnostics() (byte, error) {
	r, err := d.Read(ReadSelfDiagnostics(), 1)
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// Halt turns the display off and puts the chip to sleep.
// After calling Halt, Send and Read fail until Reset is called, with or
// without a reset pin.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.SendAll(DisplayOff(), SleepIn()); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7701s.Dev{%s}", d.bank)
}
