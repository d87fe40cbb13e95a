//go:build avr

package core

// The AVR parts have no output to dump a trace to, and 512 bytes of SRAM.
// Only the latest sample is kept.
const TraceRingSize = 0

// SetTraceEnabled has no effect on AVR.
func SetTraceEnabled(enabled bool) {}

func traceAppend(ev SampleEvent) {}

// TraceSnapshot always returns nil on AVR.
func TraceSnapshot() []SampleEvent {
	return nil
}

func traceReset() {}
