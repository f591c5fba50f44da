// Package tinyspi carries st7701s words over a TinyGo SPI bus.
//
// TinyGo SPI peripherals transfer 8 bits per word, so every 9-bit word is
// packed with st7701s.Pack9. Chip select is toggled around each transfer
// when a CS pin is given; the pad bits after a lone word are then dropped by
// the chip.
package tinyspi

import (
	"fmt"

	"periph.io/x/devices/v3/st7701s"
	"tinygo.org/x/drivers"
)

// Pin is the chip select line; machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Transport implements st7701s.Transport on a drivers.SPI bus.
type Transport struct {
	bus drivers.SPI
	cs  Pin
}

// New returns a transport on bus. cs may be nil when chip select is driven
// by the SPI peripheral itself.
func New(bus drivers.SPI, cs Pin) *Transport {
	return &Transport{bus: bus, cs: cs}
}

// Write implements st7701s.Transport.
func (t *Transport) Write(w st7701s.Word) error {
	return t.tx(st7701s.Pack9(w), nil)
}

// Read implements st7701s.Transport. MOSI and MISO must both be joined onto
// SDA.
func (t *Transport) Read(addr st7701s.Word, r []byte) error {
	w, buf := st7701s.PackedRead(addr, len(r))
	if err := t.tx(w, buf); err != nil {
		return err
	}
	copy(r, st7701s.Unpack(buf, 9, len(r)))
	return nil
}

func (t *Transport) tx(w, r []byte) error {
	if t.cs != nil {
		t.cs.Low()
		defer t.cs.High()
	}
	if err := t.bus.Tx(w, r); err != nil {
		return fmt.Errorf("tinyspi: %w", err)
	}
	return nil
}

var _ st7701s.Transport = (*Transport)(nil)
