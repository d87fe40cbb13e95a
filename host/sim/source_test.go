package sim

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fancontrol/core"
)

func drain(t *testing.T, src Source) []core.ADCValue {
	t.Helper()
	var out []core.ADCValue
	for {
		v, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, v)
	}
}

func TestSweep(t *testing.T) {
	tests := []struct {
		name         string
		from, to, by int
		want         []core.ADCValue
	}{
		{"up", 0, 10, 5, []core.ADCValue{0, 5, 10}},
		{"up uneven", 0, 7, 5, []core.ADCValue{0, 5}},
		{"down", 1023, 1000, 10, []core.ADCValue{1023, 1013, 1003}},
		{"single", 42, 42, 1, []core.ADCValue{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSweep(tt.from, tt.to, tt.by)
			require.NoError(t, err)
			assert.Equal(t, tt.want, drain(t, src))
		})
	}
}

func TestSweepRejectsBadArgs(t *testing.T) {
	_, err := NewSweep(-1, 10, 1)
	assert.Error(t, err)
	_, err = NewSweep(0, 1024, 1)
	assert.Error(t, err)
	_, err = NewSweep(0, 10, 0)
	assert.Error(t, err)
}

func TestConstant(t *testing.T) {
	assert.Equal(t, []core.ADCValue{7, 7, 7}, drain(t, NewConstant(7, 3)))
	assert.Empty(t, drain(t, NewConstant(7, 0)))
}

func TestLineSource(t *testing.T) {
	input := "# pico potpick\n\n0\n32768 V: 1.6\n65535\n"
	src, err := NewLineSource(strings.NewReader(input), 16)
	require.NoError(t, err)

	assert.Equal(t, []core.ADCValue{0, 512, 1023}, drain(t, src))
}

func TestLineSourceWidensNarrowReadings(t *testing.T) {
	src, err := NewLineSource(strings.NewReader("255\n128\n"), 8)
	require.NoError(t, err)

	assert.Equal(t, []core.ADCValue{1020, 512}, drain(t, src))
}

func TestLineSourceErrors(t *testing.T) {
	src, err := NewLineSource(strings.NewReader("1024\n"), 10)
	require.NoError(t, err)
	_, err = src.Next()
	assert.ErrorIs(t, err, ErrSampleRange)
	assert.Contains(t, err.Error(), "line 1")

	src, err = NewLineSource(strings.NewReader("\n-5\n"), 10)
	require.NoError(t, err)
	_, err = src.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = NewLineSource(strings.NewReader(""), 0)
	assert.Error(t, err)
	_, err = NewLineSource(strings.NewReader(""), 17)
	assert.Error(t, err)
}
