package st7701s

import "fmt"

// Word is one unit on the 3-wire bus.
//
// Byte 0 holds the command or parameter byte. Bit 0 of byte 1 is the D/CX
// flag: 0 for the address (command) phase, 1 for a parameter (data) phase.
// The other bits of byte 1 are always zero.
//
// The layout matches a spidev transfer with 9 bits per word on a
// little-endian host, where the 9-bit value D/CX<<8 | payload is stored in a
// 16 bit slot.
type Word [2]byte

// AddressWord returns the command-phase word for opcode.
func AddressWord(opcode byte) Word {
	return Word{opcode, 0x00}
}

// DataWord returns the parameter-phase word for p.
func DataWord(p byte) Word {
	return Word{p, 0x01}
}

// IsData reports whether w is a parameter word (D/CX high).
func (w Word) IsData() bool {
	return w[1]&0x01 != 0
}

// Payload returns the command or parameter byte.
func (w Word) Payload() byte {
	return w[0]
}

// Value returns the 9-bit value clocked out on the wire, D/CX first.
func (w Word) Value() uint16 {
	return uint16(w[1]&0x01)<<8 | uint16(w[0])
}

func (w Word) String() string {
	if w.IsData() {
		return fmt.Sprintf("D:%02X", w[0])
	}
	return fmt.Sprintf("C:%02X", w[0])
}

// Pack9 packs words MSB first into a byte stream for controllers that only
// support 8 bits per word. The last byte is zero padded.
//
// When a single word is packed, the 7 pad bits never complete a second word,
// so the chip discards them when chip select is released.
func Pack9(words ...Word) []byte {
	out := make([]byte, (len(words)*9+7)/8)
	bit := 0
	for _, w := range words {
		v := w.Value()
		for i := 8; i >= 0; i-- {
			if v&(1<<uint(i)) != 0 {
				out[bit/8] |= 0x80 >> uint(bit%8)
			}
			bit++
		}
	}
	return out
}

// Unpack extracts n bytes from buf starting at bit offset off, MSB first.
//
// Bits past the end of buf read as zero.
func Unpack(buf []byte, off, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n*8; i++ {
		src := off + i
		if src/8 >= len(buf) {
			break
		}
		if buf[src/8]&(0x80>>uint(src%8)) != 0 {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}
