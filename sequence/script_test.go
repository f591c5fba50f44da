package sequence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"periph.io/x/devices/v3/st7701s"
)

const testScript = `
# minimal bring-up
SWRESET delay=10ms
slpout delay=120ms

bank 0
PORCTRL 0x0A 0x10        # VBP, VFP
raw 0xCC 0x10
bank BK1
VGLS 0x47
bank off
COLMOD 0x60
sleep 5ms
DISPON
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(testScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(steps) != 11 {
		t.Fatalf("Parse() = %d steps, want 11", len(steps))
	}

	dev := &fakeDevice{}
	r, delays := newRunner(Abort)
	if err := r.Run(context.Background(), dev, steps); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []st7701s.Command{
		st7701s.SoftwareReset(),
		st7701s.SleepOut(),
		st7701s.Raw(0xC1, 0x0A, 0x10),
		st7701s.Raw(0xCC, 0x10),
		st7701s.Raw(0xB5, 0x47),
		st7701s.Raw(0x3A, 0x60),
		st7701s.DisplayOn(),
	}
	if len(dev.sent) != len(want) {
		t.Fatalf("sent = %v, want %v", dev.sent, want)
	}
	for i := range want {
		if !dev.sent[i].Equal(want[i]) {
			t.Errorf("sent[%d] = %v, want %v", i, dev.sent[i], want[i])
		}
	}

	wantDelays := []time.Duration{10 * time.Millisecond, 120 * time.Millisecond, 5 * time.Millisecond}
	if len(*delays) != len(wantDelays) {
		t.Fatalf("delays = %v, want %v", *delays, wantDelays)
	}
	for i := range wantDelays {
		if (*delays)[i] != wantDelays[i] {
			t.Errorf("delays[%d] = %v, want %v", i, (*delays)[i], wantDelays[i])
		}
	}
	if dev.bank != st7701s.BankDisabled {
		t.Errorf("final bank = %v, want %v", dev.bank, st7701s.BankDisabled)
	}
}

func TestParseGuardsBanks(t *testing.T) {
	steps, err := Parse(strings.NewReader("bank 1\nPORCTRL 0x0A 0x10\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	dev := &fakeDevice{}
	r, _ := newRunner(Abort)
	err = r.Run(context.Background(), dev, steps)
	if !errors.Is(err, st7701s.ErrWrongBank) {
		t.Errorf("Run() error = %v, want ErrWrongBank", err)
	}
	if len(dev.sent) != 0 {
		t.Errorf("sent = %v, want nothing", dev.sent)
	}
}

func TestParseBankSwitchLines(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   st7701s.Bank
	}{
		{"by name", "CND2BKxSEL 0x77 0x01 0x00 0x00 0x10\n", st7701s.Bank0},
		{"raw", "raw 0xFF 0x77 0x01 0x00 0x00 0x11\n", st7701s.Bank1},
		{"raw disable", "bank 1\nraw 0xFF 0x77 0x01 0x00 0x00 0x00\n", st7701s.BankDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := Parse(strings.NewReader(tt.script))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			last := steps[len(steps)-1]
			if !last.Switch || last.Bank != tt.want {
				t.Errorf("last step = %v, want bank %v", last, tt.want)
			}

			dev := &fakeDevice{}
			r, _ := newRunner(Abort)
			if err := r.Run(context.Background(), dev, steps); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if dev.bank != tt.want {
				t.Errorf("bank = %v, want %v", dev.bank, tt.want)
			}
			if len(dev.sent) != 0 {
				t.Errorf("sent = %v, want the switch to go through SelectBank", dev.sent)
			}
		})
	}
}

func TestParseBankSwitchThenBankedRegister(t *testing.T) {
	steps, err := Parse(strings.NewReader("CND2BKxSEL 0x77 0x01 0x00 0x00 0x10\nPORCTRL 0x0A 0x10\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	dev := &fakeDevice{}
	r, _ := newRunner(Abort)
	if err := r.Run(context.Background(), dev, steps); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(dev.sent) != 1 || !dev.sent[0].Equal(st7701s.Raw(0xC1, 0x0A, 0x10)) {
		t.Errorf("sent = %v, want PORCTRL", dev.sent)
	}
}

func TestParseRawFollowsDeclaredBank(t *testing.T) {
	steps, err := Parse(strings.NewReader("bank 1\nraw 0xE0 0x00 0x00 0x02\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	dev := &fakeDevice{failBank: map[st7701s.Bank]bool{st7701s.Bank1: true}}
	r, _ := newRunner(BestEffort)
	err = r.Run(context.Background(), dev, steps)
	if !errors.Is(err, st7701s.ErrWrongBank) {
		t.Errorf("Run() error = %v, want ErrWrongBank", err)
	}
	if len(dev.sent) != 0 {
		t.Errorf("sent = %v, want nothing outside BK1", dev.sent)
	}

	// Without a bank line, raw bytes go out as they are.
	steps, err = Parse(strings.NewReader("raw 0xE0 0x00\n"))
	if err != nil {
		t.Fatal(err)
	}
	dev = &fakeDevice{}
	if err := r.Run(context.Background(), dev, steps); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(dev.sent) != 1 {
		t.Errorf("sent = %v, want the raw block", dev.sent)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantLine int
		wantErr  string
	}{
		{"unknown register", "DISPON\n\nFOO 0x01\n", 3, `unknown register "FOO"`},
		{"byte overflow", "raw 0xCC 0x100\n", 1, `invalid byte "0x100"`},
		{"not a number", "COLMOD sixty\n", 1, `invalid byte "sixty"`},
		{"raw without opcode", "raw\n", 1, "raw needs an opcode"},
		{"bank arguments", "bank 0 1\n", 1, "bank takes one argument"},
		{"unknown bank", "bank 2\n", 1, "unknown bank"},
		{"sleep arguments", "sleep\n", 1, "sleep takes one argument"},
		{"bad duration", "sleep soon\n", 1, "invalid duration"},
		{"bad delay", "DISPON delay=later\n", 1, "invalid duration"},
		{"delay alone", "# setup\ndelay=5ms\n", 2, "delay without a step"},
		{"unterminated quote", "raw \"0x01\n", 1, ""},
		{"short bank switch", "raw 0xFF 0x77 0x01\n", 1, "malformed bank switch"},
		{"unknown selector", "DISPON\nCND2BKxSEL 0x77 0x01 0x00 0x00 0x13\n", 2, "malformed bank switch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.script))
			var se *ScriptError
			if !errors.As(err, &se) {
				t.Fatalf("Parse() error = %v, want *ScriptError", err)
			}
			if se.Line != tt.wantLine {
				t.Errorf("ScriptError.Line = %d, want %d", se.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
