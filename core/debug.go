package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// SampleEvent captures one pass of the conversion handler.
type SampleEvent struct {
	Raw     ADCValue // Sample as read from the converter
	Duty    PWMValue // Clamped duty in normal (active-high) terms
	Compare PWMValue // Value written to the inverted compare register
}

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	lastSample     SampleEvent
	haveLastSample bool
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugPrintln != nil {
		debugPrintln(msg)
	}
}

// recordSample runs in interrupt context; it must stay short and must not
// mask interrupts itself.
func recordSample(raw ADCValue, duty, compare PWMValue) {
	ev := SampleEvent{Raw: raw, Duty: duty, Compare: compare}
	lastSample = ev
	haveLastSample = true
	traceAppend(ev)
}

// LastSample returns the most recently handled sample, if any.
func LastSample() (SampleEvent, bool) {
	state := disableInterrupts()
	ev, ok := lastSample, haveLastSample
	restoreInterrupts(state)
	return ev, ok
}

// DumpTrace writes the captured samples through the debug writer.
func DumpTrace() {
	events := TraceSnapshot()

	DebugPrintln("[TRACE] === Sample Trace ===")
	buf := make([]byte, 0, 48)
	for _, ev := range events {
		buf = append(buf[:0], "[TRACE] "...)
		buf = AppendSampleEvent(buf, ev, PeriodTop)
		DebugPrintln(string(buf))
	}
	DebugPrintln("[TRACE] === End Trace ===")
}

// ClearTrace clears the trace buffer and the latest sample
func ClearTrace() {
	state := disableInterrupts()
	traceReset()
	lastSample = SampleEvent{}
	haveLastSample = false
	restoreInterrupts(state)
}
