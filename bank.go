package st7701s

import (
	"errors"
	"fmt"
	"strings"
)

// Bank is a Command2 addressing context.
//
// Bank0 and Bank1 registers share the 0xB0-0xEF opcode range. Which register
// an opcode reaches depends only on the bank last selected with CND2BKxSEL,
// and the chip cannot be asked which bank is active. The driver therefore
// keeps a mirror of the selected bank and refuses to build a banked command
// when the mirror does not match.
type Bank uint8

const (
	// BankDisabled means Command2 is off; only general commands apply.
	BankDisabled Bank = iota
	// Bank0 selects the BK0 Command2 register set (gamma, timing, RGB).
	Bank0
	// Bank1 selects the BK1 Command2 register set (power, voltages).
	Bank1
)

// bankSelectors maps a Bank to the last CND2BKxSEL parameter byte.
var bankSelectors = map[Bank]byte{
	BankDisabled: 0x00,
	Bank0:        0x10,
	Bank1:        0x11,
}

// Selector returns the CND2BKxSEL parameter byte that activates b.
func (b Bank) Selector() byte {
	return bankSelectors[b]
}

// Valid reports whether b is a known bank.
func (b Bank) Valid() bool {
	_, ok := bankSelectors[b]
	return ok
}

func (b Bank) String() string {
	switch b {
	case BankDisabled:
		return "disabled"
	case Bank0:
		return "BK0"
	case Bank1:
		return "BK1"
	}
	return fmt.Sprintf("Bank(%d)", uint8(b))
}

// ParseBank parses a bank name as used in scripts and configuration files.
//
// Accepted forms are "off", "disabled", "none", "0", "1", "bk0" and "bk1",
// case insensitive.
func ParseBank(s string) (Bank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "disabled", "none":
		return BankDisabled, nil
	case "0", "bk0":
		return Bank0, nil
	case "1", "bk1":
		return Bank1, nil
	}
	return 0, fmt.Errorf("st7701s: unknown bank %q", s)
}

// BankOf returns the bank a CND2BKxSEL command selects. It fails for other
// commands and for a bank switch whose payload is not 77 01 00 00 followed by
// a known selector.
func BankOf(c Command) (Bank, error) {
	if !c.IsBankSwitch() {
		return 0, fmt.Errorf("st7701s: %s is not a bank switch", c)
	}
	p := c.params
	if len(p) == 5 && p[0] == 0x77 && p[1] == 0x01 && p[2] == 0x00 && p[3] == 0x00 {
		for b, sel := range bankSelectors {
			if sel == p[4] {
				return b, nil
			}
		}
	}
	return 0, fmt.Errorf("st7701s: malformed bank switch %s", c)
}

// Requirement is the addressing context a register needs to be built.
type Requirement struct {
	bank Bank
	any  bool
}

// AnyBank is the requirement of general commands, valid in every bank.
var AnyBank = Requirement{any: true}

// InBank returns the requirement for registers only reachable in b.
func InBank(b Bank) Requirement {
	return Requirement{bank: b}
}

// Any reports whether r is satisfied by every bank.
func (r Requirement) Any() bool {
	return r.any
}

// Bank returns the required bank. It is meaningless when Any is true.
func (r Requirement) Bank() Bank {
	return r.bank
}

// Allows reports whether a command with requirement r may be built while
// current is selected.
func (r Requirement) Allows(current Bank) bool {
	return r.any || r.bank == current
}

func (r Requirement) String() string {
	if r.any {
		return "any"
	}
	return r.bank.String()
}

// ErrWrongBank is matched by every *BankError.
var ErrWrongBank = errors.New("st7701s: wrong command2 bank")

// BankError is returned when a banked register is requested while another
// bank is selected. No command was built and nothing was sent.
type BankError struct {
	Register string
	Want     Bank
	Have     Bank
}

func (e *BankError) Error() string {
	if e.Register == "" {
		return fmt.Sprintf("st7701s: command requires %s, %s selected", e.Want, e.Have)
	}
	return fmt.Sprintf("st7701s: %s requires %s, %s selected", e.Register, e.Want, e.Have)
}

// Unwrap returns ErrWrongBank.
func (e *BankError) Unwrap() error {
	return ErrWrongBank
}

// Validate invokes build and returns its command if required is satisfied by
// current. Otherwise it returns a *BankError and build is never called.
//
// Validate performs no I/O and does not change current; selecting a bank is
// a separate step, see Dev.SelectBank.
func Validate(current Bank, required Requirement, build func() Command) (Command, error) {
	return validate("", current, required, build)
}

func validate(name string, current Bank, required Requirement, build func() Command) (Command, error) {
	if !required.Allows(current) {
		return Command{}, &BankError{Register: name, Want: required.bank, Have: current}
	}
	return build(), nil
}
