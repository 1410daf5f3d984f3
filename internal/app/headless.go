package app

import (
	"context"
	"time"
)

// Stepper is the part of a sim the headless driver needs.
type Stepper interface {
	Step()
}

// Headless drives a sim without a window, optionally pacing generations in
// real time the way the GUI does.
type Headless struct {
	Sim Stepper
	// Pacer spaces generations out. Nil runs them back to back.
	Pacer interface {
		ShouldStep() bool
		Remaining() time.Duration
	}
	// Generations is the number of steps to run; <= 0 runs until ctx is done.
	Generations int
	// ReportEvery calls Report after every n-th generation when both are set.
	ReportEvery int
	Report      func(generation int)
}

// Run advances the sim until the generation budget is spent or ctx is done.
// It returns the number of generations run. Cancellation is an error only when
// a finite budget was cut short.
func (h *Headless) Run(ctx context.Context) (int, error) {
	gen := 0
	for h.Generations <= 0 || gen < h.Generations {
		if err := ctx.Err(); err != nil {
			return gen, h.stopErr(err)
		}
		if h.Pacer != nil && !h.Pacer.ShouldStep() {
			timer := time.NewTimer(h.Pacer.Remaining())
			select {
			case <-ctx.Done():
				timer.Stop()
				return gen, h.stopErr(ctx.Err())
			case <-timer.C:
			}
			continue
		}
		h.Sim.Step()
		gen++
		if h.Report != nil && h.ReportEvery > 0 && gen%h.ReportEvery == 0 {
			h.Report(gen)
		}
	}
	return gen, nil
}

func (h *Headless) stopErr(err error) error {
	if h.Generations <= 0 {
		return nil
	}
	return err
}
