package core

import "testing"

func TestIdleReArmsSleepEveryIteration(t *testing.T) {
	s := &MockSleeper{limit: 5}

	if !runUntilPowerDown(func() { Idle(s) }) {
		t.Fatal("Idle returned without a power down")
	}
	if s.sleeps != 5 {
		t.Errorf("Expected 5 sleep requests, got %d", s.sleeps)
	}
}

func TestRunServicesInterruptsWhileIdle(t *testing.T) {
	pwmDrv := &MockPWMDriver{}
	adcDrv := &MockADCDriver{}
	samples := []ADCValue{0, 512, 1023}

	var seen []PWMValue
	s := &MockSleeper{limit: len(samples)}
	s.onSleep = func() {
		// Each wake-up is one conversion-complete interrupt.
		adcDrv.complete(samples[s.sleeps-1])
		seen = append(seen, pwmDrv.compare)
	}

	if !runUntilPowerDown(func() { Run(Board{PWM: pwmDrv, ADC: adcDrv, Sleep: s}) }) {
		t.Fatal("Run returned without a power down")
	}
	if !s.prepared {
		t.Error("Sleeper was not prepared before idling")
	}

	want := []PWMValue{CompareValue(0, PeriodTop), CompareValue(512, PeriodTop), CompareValue(1023, PeriodTop)}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("wake %d: expected compare %d, got %d", i, want[i], seen[i])
		}
	}
}
