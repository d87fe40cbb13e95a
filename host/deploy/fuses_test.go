package deploy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fancontrol/core"
)

func TestAttiny85Args(t *testing.T) {
	f, err := Lookup("ATtiny85")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-p", "t85",
		"-U", "lfuse:w:0xe2:m",
		"-U", "hfuse:w:0xdc:m",
		"-U", "efuse:w:0xff:m",
	}, f.AvrdudeArgs())
	assert.Equal(t, []string{
		"tinygo build -target=attiny85 -o fancontrol.hex ./targets/attiny85",
		"avrdude -p t85 -U flash:w:fancontrol.hex:i",
		"avrdude -p t85 -U lfuse:w:0xe2:m -U hfuse:w:0xdc:m -U efuse:w:0xff:m",
	}, f.Commands())
}

func TestAttiny13Args(t *testing.T) {
	f, err := Lookup("attiny13")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-p", "t13",
		"-U", "lfuse:w:0x7a:m",
		"-U", "hfuse:w:0xfb:m",
	}, f.AvrdudeArgs())
	assert.Empty(t, f.Firmware)
	assert.Equal(t, []string{
		"avrdude -p t13 -U lfuse:w:0x7a:m -U hfuse:w:0xfb:m",
	}, f.Commands())
}

func TestFirmwarePackagesExist(t *testing.T) {
	for _, chip := range Chips() {
		f, err := Lookup(chip)
		require.NoError(t, err)
		if f.Firmware == "" {
			continue
		}
		dir := filepath.Join("..", "..", filepath.FromSlash(f.Firmware))
		info, err := os.Stat(dir)
		require.NoError(t, err, chip)
		assert.True(t, info.IsDir(), chip)
	}
}

func TestDefaultBuildMatchesFuses(t *testing.T) {
	if core.CPUFrequency != 8000000 {
		t.Skip("not the default clock build")
	}
	f, err := Lookup("attiny85")
	require.NoError(t, err)
	assert.Equal(t, uint32(core.CPUFrequency), f.Clock)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("atmega328p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attiny13, attiny85")
}

func TestChips(t *testing.T) {
	assert.Equal(t, []string{"attiny13", "attiny85"}, Chips())
}
