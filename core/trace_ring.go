//go:build !avr

package core

const (
	TraceRingSize = 32 // Keep the last 32 samples for post-mortem
)

var (
	// traceEnabled controls whether samples are captured in the ring.
	// Disabled by default; the handler then only keeps the latest sample.
	traceEnabled bool

	traceRing  [TraceRingSize]SampleEvent
	traceHead  uint8  // Next write position
	traceCount uint32 // Samples captured since the last clear
)

// SetTraceEnabled turns sample capture on or off.
func SetTraceEnabled(enabled bool) {
	state := disableInterrupts()
	traceEnabled = enabled
	restoreInterrupts(state)
}

// traceAppend runs in interrupt context, from recordSample.
func traceAppend(ev SampleEvent) {
	if !traceEnabled {
		return
	}
	idx := traceHead
	traceRing[idx] = ev
	traceHead = (idx + 1) % TraceRingSize
	traceCount++
}

// TraceSnapshot copies the captured samples, oldest first.
func TraceSnapshot() []SampleEvent {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	n := traceCount
	if n > TraceRingSize {
		n = TraceRingSize
	}
	out := make([]SampleEvent, 0, n)
	start := (uint32(traceHead) + TraceRingSize - n) % TraceRingSize
	for i := uint32(0); i < n; i++ {
		out = append(out, traceRing[(start+i)%TraceRingSize])
	}
	return out
}

// traceReset empties the ring. Callers mask interrupts.
func traceReset() {
	for i := range traceRing {
		traceRing[i] = SampleEvent{}
	}
	traceHead = 0
	traceCount = 0
}
