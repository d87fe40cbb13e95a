package core

import (
	"strings"
	"testing"
)

func TestTraceDisabledKeepsOnlyLastSample(t *testing.T) {
	ClearTrace()
	SetTraceEnabled(false)
	ctrl, _ := newTestController(160)

	if _, ok := LastSample(); ok {
		t.Fatal("Expected no sample after ClearTrace")
	}

	ctrl.HandleSample(512)
	ev, ok := LastSample()
	if !ok {
		t.Fatal("Expected a last sample")
	}
	if ev.Raw != 512 || ev.Duty != 80 || ev.Compare != 80 {
		t.Errorf("Unexpected last sample %+v", ev)
	}
	if n := len(TraceSnapshot()); n != 0 {
		t.Errorf("Expected empty trace while disabled, got %d events", n)
	}
}

func TestTraceRingWrapsOldestFirst(t *testing.T) {
	ClearTrace()
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	ctrl, _ := newTestController(160)
	for raw := ADCValue(0); raw < TraceRingSize+8; raw++ {
		ctrl.HandleSample(raw * 10)
	}

	events := TraceSnapshot()
	if len(events) != TraceRingSize {
		t.Fatalf("Expected %d events, got %d", TraceRingSize, len(events))
	}
	if events[0].Raw != 80 {
		t.Errorf("Expected oldest raw 80, got %d", events[0].Raw)
	}
	if last := events[len(events)-1].Raw; last != (TraceRingSize+7)*10 {
		t.Errorf("Expected newest raw %d, got %d", (TraceRingSize+7)*10, last)
	}
}

func TestDumpTrace(t *testing.T) {
	ClearTrace()
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	ctrl, _ := newTestController(PeriodTop)
	ctrl.HandleSample(512)
	DumpTrace()

	if len(lines) != 3 {
		t.Fatalf("Expected header, one event and footer, got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "[TRACE] raw=512 ") {
		t.Errorf("Unexpected trace line %q", lines[1])
	}
}

func TestAppendSampleEvent(t *testing.T) {
	got := string(AppendSampleEvent(nil, SampleEvent{Raw: 512, Duty: 80, Compare: 80}, 160))
	if got != "raw=512 duty=80 ocr=80 50%" {
		t.Errorf("Unexpected formatting %q", got)
	}

	got = string(AppendDutyPercent(nil, 0, 0))
	if got != "0%" {
		t.Errorf("Expected 0%% for zero top, got %q", got)
	}
}
