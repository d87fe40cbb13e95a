package core

// appendUint appends the decimal form of n without using the fmt package.
// This is a lightweight alternative for embedded systems
func appendUint(buf []byte, n uint32) []byte {
	if n == 0 {
		return append(buf, '0')
	}

	var tmp [10]byte
	pos := len(tmp)
	for n > 0 {
		pos--
		tmp[pos] = byte('0' + n%10)
		n /= 10
	}
	return append(buf, tmp[pos:]...)
}

// AppendDutyPercent appends duty as a whole percentage of top, e.g. "42%".
func AppendDutyPercent(buf []byte, duty, top PWMValue) []byte {
	if top == 0 {
		return append(buf, "0%"...)
	}
	pct := uint32(duty) * 100 / uint32(top)
	buf = appendUint(buf, pct)
	return append(buf, '%')
}

// AppendSampleEvent appends "raw=512 duty=80 ocr=80 50%".
func AppendSampleEvent(buf []byte, ev SampleEvent, top PWMValue) []byte {
	buf = append(buf, "raw="...)
	buf = appendUint(buf, uint32(ev.Raw))
	buf = append(buf, " duty="...)
	buf = appendUint(buf, uint32(ev.Duty))
	buf = append(buf, " ocr="...)
	buf = appendUint(buf, uint32(ev.Compare))
	buf = append(buf, ' ')
	return AppendDutyPercent(buf, ev.Duty, top)
}

// AppendSampleValue appends a raw sample in decimal.
func AppendSampleValue(buf []byte, raw ADCValue) []byte {
	return appendUint(buf, uint32(raw))
}
