package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"periph.io/x/devices/v3/st7701s"
)

// ScriptError reports a malformed script line.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("sequence: line %d: %v", e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Parse reads a recipe written one step per line:
//
//	# comment
//	bank 0                    select BK0 ("0", "1", "off")
//	PVGAMCTRL 0x00 0x0E ...   register by name, checked against the bank
//	raw 0xCC 0x10             vendor bytes, sent only in the last declared bank
//	SLPOUT delay=120ms        any step can wait afterwards
//	sleep 5ms                 wait only
//
// Numbers accept the Go integer prefixes (0x, 0b, 0o) and must fit a byte.
// A CND2BKxSEL line, by name or as raw 0xFF, is read as a bank line so the
// device keeps track of it; its payload must be a valid bank switch.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	var p parser
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line, _, _ := strings.Cut(sc.Text(), "#")
		tokens, err := shlex.Split(line)
		if err != nil {
			return nil, &ScriptError{Line: n, Err: err}
		}
		if len(tokens) == 0 {
			continue
		}
		s, err := p.line(tokens)
		if err != nil {
			return nil, &ScriptError{Line: n, Err: err}
		}
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}
	return steps, nil
}

// parser remembers the bank the script last selected.
type parser struct {
	declared st7701s.Bank
	inBank   bool
}

func (p *parser) line(tokens []string) (Step, error) {
	var delay time.Duration
	if last := tokens[len(tokens)-1]; strings.HasPrefix(last, "delay=") {
		d, err := time.ParseDuration(strings.TrimPrefix(last, "delay="))
		if err != nil {
			return Step{}, err
		}
		delay = d
		tokens = tokens[:len(tokens)-1]
		if len(tokens) == 0 {
			return Step{}, fmt.Errorf("delay without a step")
		}
	}

	verb, args := tokens[0], tokens[1:]
	switch strings.ToLower(verb) {
	case "bank":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("bank takes one argument, got %d", len(args))
		}
		b, err := st7701s.ParseBank(args[0])
		if err != nil {
			return Step{}, err
		}
		return p.selectBank(b).Wait(delay), nil

	case "sleep":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("sleep takes one argument, got %d", len(args))
		}
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return Step{}, err
		}
		return Sleep(d + delay), nil

	case "raw":
		if len(args) == 0 {
			return Step{}, fmt.Errorf("raw needs an opcode")
		}
		b, err := parseBytes(args)
		if err != nil {
			return Step{}, err
		}
		c := st7701s.Raw(b[0], b[1:]...)
		if c.IsBankSwitch() {
			return p.bankSwitch(c, delay)
		}
		s := Raw(b[0], b[1:]...)
		if p.inBank {
			s = s.In(p.declared)
		}
		return s.Wait(delay), nil
	}

	reg, ok := st7701s.Lookup(verb)
	if !ok {
		return Step{}, fmt.Errorf("unknown register %q", verb)
	}
	params, err := parseBytes(args)
	if err != nil {
		return Step{}, err
	}
	if c := st7701s.Raw(reg.Opcode, params...); c.IsBankSwitch() {
		return p.bankSwitch(c, delay)
	}
	return Guarded(reg.Name, func(current st7701s.Bank) (st7701s.Command, error) {
		return reg.Build(current, params...)
	}).Wait(delay), nil
}

func (p *parser) selectBank(b st7701s.Bank) Step {
	p.declared, p.inBank = b, true
	return SelectBank(b)
}

func (p *parser) bankSwitch(c st7701s.Command, delay time.Duration) (Step, error) {
	b, err := st7701s.BankOf(c)
	if err != nil {
		return Step{}, fmt.Errorf("%w; use \"bank 0|1|off\"", err)
	}
	return p.selectBank(b).Wait(delay), nil
}

func parseBytes(args []string) ([]byte, error) {
	out := make([]byte, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q", a)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
