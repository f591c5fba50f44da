package st7701s

import (
	"bytes"
	"fmt"
	"strings"
)

// Command is a register write: one opcode followed by its ordered parameter
// bytes.
//
// A Command is a value. WithParameter and WithParameters return a new Command
// and never modify the receiver, so a Command can be shared freely once built.
// The zero value is a NOP.
type Command struct {
	opcode byte
	params []byte
}

// NewCommand returns a Command for opcode with no parameters.
func NewCommand(opcode byte) Command {
	return Command{opcode: opcode}
}

// WithParameter returns a copy of c with p appended.
func (c Command) WithParameter(p byte) Command {
	return c.WithParameters(p)
}

// WithParameters returns a copy of c with ps appended in order.
func (c Command) WithParameters(ps ...byte) Command {
	params := make([]byte, 0, len(c.params)+len(ps))
	params = append(params, c.params...)
	params = append(params, ps...)
	return Command{opcode: c.opcode, params: params}
}

// Opcode returns the register address sent in the command phase.
func (c Command) Opcode() byte {
	return c.opcode
}

// Parameters returns a copy of the parameter bytes.
func (c Command) Parameters() []byte {
	return append([]byte(nil), c.params...)
}

// Len returns the number of parameter bytes.
func (c Command) Len() int {
	return len(c.params)
}

// Equal reports whether c and o carry the same opcode and parameters.
func (c Command) Equal(o Command) bool {
	return c.opcode == o.opcode && bytes.Equal(c.params, o.params)
}

// IsBankSwitch reports whether c is a CND2BKxSEL command.
func (c Command) IsBankSwitch() bool {
	return c.opcode == cmdCND2BKxSEL
}

// Words serializes c into the bus words the chip expects: the address word
// first, then one data word per parameter in append order.
func (c Command) Words() []Word {
	words := make([]Word, 0, 1+len(c.params))
	words = append(words, AddressWord(c.opcode))
	for _, p := range c.params {
		words = append(words, DataWord(p))
	}
	return words
}

// String returns a representation such as "0x36[10]".
func (c Command) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "0x%02X[", c.opcode)
	for i, p := range c.params {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", p)
	}
	b.WriteByte(']')
	return b.String()
}

// Raw returns an unguarded command carrying literal parameter bytes.
//
// Raw exists for vendor-supplied initialization blocks whose meaning is not
// documented. The bytes are sent verbatim and are not validated against the
// current Command2 bank; prefer the typed builders whenever one exists.
func Raw(opcode byte, params ...byte) Command {
	return NewCommand(opcode).WithParameters(params...)
}
