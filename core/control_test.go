package core

import "testing"

func newTestController(top PWMValue) (*Controller, *MockPWMDriver) {
	drv := &MockPWMDriver{}
	pwm := NewPWMGenerator(drv)
	pwm.Init(top)
	return NewController(pwm), drv
}

func TestControllerHandleSample(t *testing.T) {
	ctrl, drv := newTestController(160)

	testCases := []struct {
		raw     ADCValue
		compare PWMValue
	}{
		{0, 160},
		{512, 80},
		{1023, 0},
		{51, 160},
		{52, 152},
	}

	for _, tc := range testCases {
		ctrl.HandleSample(tc.raw)
		if drv.compare != tc.compare {
			t.Errorf("raw=%d: expected compare %d, got %d", tc.raw, tc.compare, drv.compare)
		}
	}

	// One write for Init plus one per sample.
	if len(drv.writes) != len(testCases)+1 {
		t.Errorf("Expected %d compare writes, got %d", len(testCases)+1, len(drv.writes))
	}
}

func TestControllerIsStateless(t *testing.T) {
	ctrl, drv := newTestController(160)

	ctrl.HandleSample(512)
	first := drv.compare

	ctrl.HandleSample(1023)
	ctrl.HandleSample(0)
	ctrl.HandleSample(512)

	if drv.compare != first {
		t.Errorf("Expected compare %d after returning to 512, got %d", first, drv.compare)
	}
}

func TestControllerOscillatesAcrossThreshold(t *testing.T) {
	ctrl, drv := newTestController(160)

	// No hysteresis: each crossing of the bottom threshold switches the output.
	for i, raw := range []ADCValue{51, 52, 51, 52} {
		ctrl.HandleSample(raw)
		want := PWMValue(160)
		if raw == 52 {
			want = 152
		}
		if drv.compare != want {
			t.Errorf("sample %d (raw=%d): expected compare %d, got %d", i, raw, want, drv.compare)
		}
	}
}

func TestStartWiresSamplerToController(t *testing.T) {
	pwmDrv := &MockPWMDriver{}
	adcDrv := &MockADCDriver{}

	Start(Board{PWM: pwmDrv, ADC: adcDrv, Sleep: &MockSleeper{limit: 1}})

	if pwmDrv.top != PeriodTop {
		t.Errorf("Expected top %d, got %d", PeriodTop, pwmDrv.top)
	}
	if pwmDrv.compare != PeriodTop/2 {
		t.Errorf("Expected mid-scale compare %d, got %d", PeriodTop/2, pwmDrv.compare)
	}
	if adcDrv.handler == nil {
		t.Fatal("ADC started without a handler")
	}

	adcDrv.complete(SampleMax)
	if pwmDrv.compare != 0 {
		t.Errorf("Expected compare 0 at full travel, got %d", pwmDrv.compare)
	}
}
