package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fancontrol/core"
)

// Source yields raw samples. It returns io.EOF when exhausted.
type Source interface {
	Next() (core.ADCValue, error)
}

// SweepSource steps through samples from one value to another, inclusive.
type SweepSource struct {
	next, to, step int
	done           bool
}

// NewSweep returns a sweep from from to to in steps of step. The sweep runs
// downwards when to < from.
func NewSweep(from, to, step int) (*SweepSource, error) {
	if from < 0 || from > core.SampleMax || to < 0 || to > core.SampleMax {
		return nil, fmt.Errorf("sweep range %d..%d outside 0..%d", from, to, core.SampleMax)
	}
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %d", step)
	}
	if to < from {
		step = -step
	}
	return &SweepSource{next: from, to: to, step: step}, nil
}

// Next implements Source.
func (s *SweepSource) Next() (core.ADCValue, error) {
	if s.done {
		return 0, io.EOF
	}
	v := s.next
	s.next += s.step
	if (s.step > 0 && s.next > s.to) || (s.step < 0 && s.next < s.to) {
		s.done = true
	}
	return core.ADCValue(v), nil
}

// SliceSource replays a fixed list of samples.
type SliceSource struct {
	values []core.ADCValue
}

// NewSlice returns a source replaying values in order.
func NewSlice(values ...core.ADCValue) *SliceSource {
	return &SliceSource{values: values}
}

// NewConstant returns a source yielding v count times, as a steady
// potentiometer would.
func NewConstant(v core.ADCValue, count int) *SliceSource {
	values := make([]core.ADCValue, count)
	for i := range values {
		values[i] = v
	}
	return NewSlice(values...)
}

// Next implements Source.
func (s *SliceSource) Next() (core.ADCValue, error) {
	if len(s.values) == 0 {
		return 0, io.EOF
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, nil
}

// ErrSampleRange is returned for a reading wider than the declared input bits.
var ErrSampleRange = errors.New("sample out of range")

// LineSource reads one reading per line, such as the raw values a Pico
// prints from machine.ADC.Get, and rescales them to 10 bits. Blank lines
// and lines starting with '#' are skipped; only the first field is read.
type LineSource struct {
	scanner *bufio.Scanner
	bits    uint
	line    int
}

// NewLineSource reads readings of inputBits width from r.
func NewLineSource(r io.Reader, inputBits uint) (*LineSource, error) {
	if inputBits == 0 || inputBits > 16 {
		return nil, fmt.Errorf("input bits must be 1..16, got %d", inputBits)
	}
	return &LineSource{scanner: bufio.NewScanner(r), bits: inputBits}, nil
}

// Next implements Source.
func (s *LineSource) Next() (core.ADCValue, error) {
	for s.scanner.Scan() {
		s.line++
		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		v, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", s.line, err)
		}
		if v>>s.bits != 0 {
			return 0, fmt.Errorf("line %d: %d does not fit %d bits: %w", s.line, v, s.bits, ErrSampleRange)
		}
		return scaleSample(uint32(v), s.bits), nil
	}
	if err := s.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// scaleSample converts a reading of bits width to a core.SampleBits sample.
func scaleSample(v uint32, bits uint) core.ADCValue {
	switch {
	case bits > core.SampleBits:
		return core.ADCValue(v >> (bits - core.SampleBits))
	case bits < core.SampleBits:
		return core.ADCValue(v << (core.SampleBits - bits))
	default:
		return core.ADCValue(v)
	}
}
