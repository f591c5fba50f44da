// Package sequence runs ordered st7701s command recipes, such as a panel
// power-up, against a device.
//
// The command layer only builds and sends single commands. The order of the
// commands, the delays the datasheet requires between some of them and the
// reaction to a failed write are the caller's business; this package is one
// such caller. A recipe is a []Step. Banked commands are built lazily from
// the bank the device mirrors at the time the step runs, so a recipe cannot
// send a BK0 register while BK1 is selected.
package sequence

import (
	"fmt"
	"time"

	"periph.io/x/devices/v3/st7701s"
)

// Device is the part of *st7701s.Dev a recipe needs.
type Device interface {
	Bank() st7701s.Bank
	Send(c st7701s.Command) error
	SelectBank(b st7701s.Bank) error
}

// Step is one entry of a recipe. It either switches the Command2 bank, or
// builds and sends a command, or does nothing but wait.
type Step struct {
	Label string

	// Switch selects Bank through Device.SelectBank.
	Switch bool
	Bank   st7701s.Bank

	// Build returns the command to send given the mirrored bank.
	Build func(current st7701s.Bank) (st7701s.Command, error)

	// Delay is waited after the step, whether it succeeded or not.
	Delay time.Duration
}

// SelectBank returns a step switching to b.
func SelectBank(b st7701s.Bank) Step {
	return Step{Label: "bank " + b.String(), Switch: true, Bank: b}
}

// Send returns a step sending a prebuilt general or raw command.
func Send(label string, c st7701s.Command) Step {
	return Step{Label: label, Build: func(st7701s.Bank) (st7701s.Command, error) { return c, nil }}
}

// Guarded returns a step whose command is built from the mirrored bank at
// run time; build is expected to reject the wrong bank.
func Guarded(label string, build func(current st7701s.Bank) (st7701s.Command, error)) Step {
	return Step{Label: label, Build: build}
}

// Raw returns a step sending a vendor block verbatim, without bank checks.
// Chain In to tie it to a bank.
func Raw(opcode byte, params ...byte) Step {
	return Send(fmt.Sprintf("raw 0x%02X", opcode), st7701s.Raw(opcode, params...))
}

// Sleep returns a step that only waits.
func Sleep(d time.Duration) Step {
	return Step{Label: "sleep " + d.String(), Delay: d}
}

// In returns a copy of s that fails with a *st7701s.BankError unless the
// mirrored bank is b. Use it for raw blocks that belong to a bank.
func (s Step) In(b st7701s.Bank) Step {
	build := s.Build
	if build == nil || s.Switch {
		return s
	}
	label := s.Label
	s.Build = func(current st7701s.Bank) (st7701s.Command, error) {
		if current != b {
			return st7701s.Command{}, &st7701s.BankError{Register: label, Want: b, Have: current}
		}
		return build(current)
	}
	return s
}

// Wait returns a copy of s that waits d after running.
func (s Step) Wait(d time.Duration) Step {
	s.Delay = d
	return s
}

func (s Step) String() string {
	if s.Delay > 0 && (s.Switch || s.Build != nil) {
		return fmt.Sprintf("%s (+%s)", s.Label, s.Delay)
	}
	return s.Label
}
