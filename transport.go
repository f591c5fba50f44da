package st7701s

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"
)

// Transport moves words over the 3-wire bus.
//
// The bus is half-duplex: Read must finish clocking in the reply before it
// returns, and no other transfer may start in between.
type Transport interface {
	// Write clocks out a single word with its own chip select cycle.
	Write(w Word) error
	// Read clocks out addr, then clocks in len(r) bytes into r.
	Read(addr Word, r []byte) error
}

// NewSPITransport returns a Transport over a periph connection opened with 9
// bits per word. Each Word is one 16 bit slot of the transfer buffer.
func NewSPITransport(c spi.Conn) Transport {
	return &spiTransport{c: c}
}

type spiTransport struct {
	c spi.Conn
}

func (t *spiTransport) Write(w Word) error {
	return t.c.Tx(w[:], nil)
}

func (t *spiTransport) Read(addr Word, r []byte) error {
	return t.c.TxPackets([]spi.Packet{
		{W: addr[:], KeepCS: true},
		{R: r, BitsPerWord: 8},
	})
}

func (t *spiTransport) String() string {
	return t.c.String()
}

// NewPackedTransport returns a Transport for controllers limited to 8 bits
// per word. Words are packed with Pack9.
//
// c must be full-duplex: a read clocks the address word out and the reply in
// on a single transfer, since the reply starts at bit 9. A half-duplex
// connection would split it into a write followed by a separate read. For
// reads MOSI and MISO must both be joined onto SDA.
func NewPackedTransport(c conn.Conn) Transport {
	return &packedTransport{c: c}
}

type packedTransport struct {
	c conn.Conn
}

func (t *packedTransport) Write(w Word) error {
	return t.c.Tx(Pack9(w), nil)
}

func (t *packedTransport) Read(addr Word, r []byte) error {
	w, buf := PackedRead(addr, len(r))
	if err := t.c.Tx(w, buf); err != nil {
		return err
	}
	copy(r, Unpack(buf, 9, len(r)))
	return nil
}

func (t *packedTransport) String() string {
	return t.c.String()
}

// PackedRead returns the write and read buffers of a full-duplex transfer
// that clocks out addr followed by n bytes worth of clocks on an 8-bit bus.
// The reply starts at bit 9 of the read buffer; extract it with Unpack.
func PackedRead(addr Word, n int) (w, r []byte) {
	size := (9 + 8*n + 7) / 8
	w = make([]byte, size)
	copy(w, Pack9(addr))
	return w, make([]byte, size)
}
