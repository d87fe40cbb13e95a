package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fancontrol/core"
)

// Step is the controller output after one sample.
type Step struct {
	Index       int           `json:"index"`
	Raw         core.ADCValue `json:"raw"`
	Duty        core.PWMValue `json:"duty"`
	Compare     core.PWMValue `json:"compare"`
	Top         core.PWMValue `json:"top"`
	HighPercent float64       `json:"high_percent"`
}

// Machine is a simulated board: the firmware runs on its own goroutine
// and every sample is delivered as an interrupt while it sleeps.
type Machine struct {
	ADC *ADC
	PWM *PWM

	// Interval paces samples in real time; zero delivers them back to back.
	Interval time.Duration

	Logger *slog.Logger
}

// NewMachine returns a machine with fresh peripherals.
func NewMachine(logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Machine{
		ADC:    &ADC{},
		PWM:    &PWM{},
		Logger: logger,
	}
}

// Run boots the firmware and feeds it every sample from src. observe, if
// set, is called after each interrupt has been serviced. Run returns nil
// once src is exhausted; the firmware is powered down on return.
func (m *Machine) Run(ctx context.Context, src Source, observe func(Step)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sleeper := NewSleeper(ctx.Done())
	go core.Run(core.Board{PWM: m.PWM, ADC: m.ADC, Sleep: sleeper})

	select {
	case <-sleeper.Prepared():
	case <-ctx.Done():
		return ctx.Err()
	}
	m.Logger.Debug("firmware booted",
		slog.Int("top", int(m.PWM.Top())),
		slog.Int("channel", int(m.ADC.Config().Channel)),
		slog.Int("prescaler", int(m.ADC.Config().Prescaler)))

	var tick <-chan time.Time
	if m.Interval > 0 {
		ticker := time.NewTicker(m.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; ; i++ {
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			m.Logger.Debug("sample source exhausted", slog.Int("samples", i))
			return nil
		}
		if err != nil {
			return fmt.Errorf("read sample %d: %w", i, err)
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				return ctx.Err()
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		m.ADC.Feed(raw)
		sleeper.Interrupt()

		if observe != nil {
			observe(m.step(i, raw))
		}
	}
}

// RunReporter runs src through the machine and reports every step to r.
// The run stops at the first report error, which is returned. r is flushed
// before returning.
func (m *Machine) RunReporter(ctx context.Context, src Source, r Reporter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reportErr error
	runErr := m.Run(ctx, src, func(s Step) {
		if reportErr != nil {
			return
		}
		if err := r.Report(s); err != nil {
			reportErr = fmt.Errorf("report step %d: %w", s.Index, err)
			cancel()
		}
	})
	flushErr := r.Flush()

	switch {
	case reportErr != nil:
		return reportErr
	case runErr != nil:
		return runErr
	default:
		return flushErr
	}
}

func (m *Machine) step(i int, raw core.ADCValue) Step {
	top := m.PWM.Top()
	compare := m.PWM.Compare()
	return Step{
		Index:       i,
		Raw:         raw,
		Duty:        top - compare,
		Compare:     compare,
		Top:         top,
		HighPercent: m.PWM.HighFraction() * 100,
	}
}
