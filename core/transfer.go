package core

// ADC result resolution.
const (
	SampleBits  = 10
	SampleScale = 1 << SampleBits
	SampleMax   = SampleScale - 1
)

// Dead zones at both ends of the potentiometer travel, as 1/deadZoneDivisor
// of the period: the bottom 5% snaps to off and the top 5% to full on.
const deadZoneDivisor = 20

// Candidate maps a raw sample onto [0, top), truncating toward zero.
// Values above SampleMax are treated as SampleMax.
func Candidate(raw ADCValue, top PWMValue) PWMValue {
	if raw > SampleMax {
		raw = SampleMax
	}
	return PWMValue(uint32(top) * uint32(raw) / SampleScale)
}

// Clamp applies the dead zones to a candidate duty: below 5% of top it
// becomes 0, above 95% of top it becomes top, anything else passes through.
// There is no hysteresis around either threshold.
func Clamp(candidate, top PWMValue) PWMValue {
	c := uint32(candidate) * deadZoneDivisor
	t := uint32(top)
	switch {
	case c < t:
		return 0
	case c > t*(deadZoneDivisor-1):
		return top
	default:
		return candidate
	}
}

// DutyCycle returns the clamped duty for a raw sample in normal (active-high)
// terms: the number of ticks per period the fan is driven on.
func DutyCycle(raw ADCValue, top PWMValue) PWMValue {
	return Clamp(Candidate(raw, top), top)
}

// CompareValue returns the compare register value for a raw sample. The
// PWM output is inverted, so the duty is complemented against top.
func CompareValue(raw ADCValue, top PWMValue) PWMValue {
	return top - DutyCycle(raw, top)
}
