package sequence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Policy is the reaction of a Runner to a failed step.
type Policy int

const (
	// Abort stops at the first failed step. It is the default: after a lost
	// write the chip state is unknown and later steps may land in the wrong
	// bank.
	Abort Policy = iota
	// BestEffort logs failed steps and keeps going. Banked steps following a
	// failed bank switch then fail the bank check instead of being sent; raw
	// blocks take part in that check only when tied to a bank with Step.In.
	BestEffort
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case BestEffort:
		return "best-effort"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "abort" or "best-effort".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return Abort, nil
	case "best-effort", "besteffort", "continue":
		return BestEffort, nil
	}
	return 0, fmt.Errorf("sequence: unknown policy %q", s)
}

// StepError reports which step of a recipe failed.
type StepError struct {
	Index int
	Label string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("sequence: step %d (%s): %v", e.Index, e.Label, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes recipes.
type Runner struct {
	Policy Policy
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Wait replaces the context-aware sleep between steps, mainly for tests.
	Wait func(ctx context.Context, d time.Duration) error
}

// Run executes steps in order against dev.
//
// With Abort the first failure is returned as a *StepError. With BestEffort
// every failure is returned, joined. Cancelling ctx stops the recipe between
// steps and interrupts delays; a command already on the wire is completed.
func (r *Runner) Run(ctx context.Context, dev Device, steps []Step) error {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}
	wait := r.Wait
	if wait == nil {
		wait = sleep
	}

	var errs []error
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		log.Debug("sequence: step", slog.Int("index", i), slog.String("step", s.String()))
		if err := run(dev, s); err != nil {
			se := &StepError{Index: i, Label: s.Label, Err: err}
			if r.Policy == Abort {
				return se
			}
			log.Warn("sequence: step failed", slog.Int("index", i), slog.String("step", s.Label), slog.Any("err", err))
			errs = append(errs, se)
		}
		if s.Delay > 0 {
			if err := wait(ctx, s.Delay); err != nil {
				return errors.Join(append(errs, err)...)
			}
		}
	}
	return errors.Join(errs...)
}

func run(dev Device, s Step) error {
	switch {
	case s.Switch:
		return dev.SelectBank(s.Bank)
	case s.Build != nil:
		c, err := s.Build(dev.Bank())
		if err != nil {
			return err
		}
		return dev.Send(c)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
