// Package deploy holds the programming parameters for the AVR fan controller.
package deploy

import (
	"fmt"
	"sort"
	"strings"
)

// Fuses is the fuse configuration written when a chip is flashed.
type Fuses struct {
	Chip     string // chip name, also the TinyGo target when Firmware is set
	Part     string // avrdude part id
	Low      uint8
	High     uint8
	Extended uint8
	HasExt   bool
	Clock    uint32 // CPU clock the fuses select, in Hz

	// Firmware is the package built for this chip, empty when the chip
	// can only be fused. TinyGo has no attiny13 target.
	Firmware string
}

// attiny85: internal 8 MHz RC oscillator, CKDIV8 unprogrammed.
// attiny13: internal 9.6 MHz RC oscillator, CKDIV8 unprogrammed.
var chips = map[string]Fuses{
	"attiny85": {
		Chip:     "attiny85",
		Part:     "t85",
		Low:      0xE2,
		High:     0xDC,
		Extended: 0xFF,
		HasExt:   true,
		Clock:    8000000,
		Firmware: "./targets/attiny85",
	},
	"attiny13": {
		Chip:  "attiny13",
		Part:  "t13",
		Low:   0x7A,
		High:  0xFB,
		Clock: 9600000,
	},
}

// Lookup returns the fuse settings for chip.
func Lookup(chip string) (Fuses, error) {
	f, ok := chips[strings.ToLower(chip)]
	if !ok {
		return Fuses{}, fmt.Errorf("no fuse settings for chip %q (known: %s)", chip, strings.Join(Chips(), ", "))
	}
	return f, nil
}

// Chips lists the supported chips in name order.
func Chips() []string {
	names := make([]string, 0, len(chips))
	for name := range chips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvrdudeArgs renders the part and fuse write arguments for avrdude.
func (f Fuses) AvrdudeArgs() []string {
	args := []string{
		"-p", f.Part,
		"-U", fuseArg("lfuse", f.Low),
		"-U", fuseArg("hfuse", f.High),
	}
	if f.HasExt {
		args = append(args, "-U", fuseArg("efuse", f.Extended))
	}
	return args
}

// Commands returns the shell commands that build, flash and fuse the chip,
// one per line. Only the fuse command is given for chips without firmware.
func (f Fuses) Commands() []string {
	fuse := "avrdude " + strings.Join(f.AvrdudeArgs(), " ")
	if f.Firmware == "" {
		return []string{fuse}
	}
	return []string{
		fmt.Sprintf("tinygo build -target=%s -o fancontrol.hex %s", f.Chip, f.Firmware),
		fmt.Sprintf("avrdude -p %s -U flash:w:fancontrol.hex:i", f.Part),
		fuse,
	}
}

func fuseArg(name string, v uint8) string {
	return fmt.Sprintf("%s:w:0x%02x:m", name, v)
}
