// Package config loads simulator profiles for the fansim host tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fancontrol/core"
)

// Sample sources understood by the simulator.
const (
	SourceSweep    = "sweep"
	SourceConstant = "constant"
	SourceStdin    = "stdin"
	SourceFile     = "file"
	SourceSerial   = "serial"
)

// Profile describes where samples come from and how results are reported.
type Profile struct {
	Source    string `json:"source"`
	Device    string `json:"device,omitempty"`
	Baud      int    `json:"baud,omitempty"`
	File      string `json:"file,omitempty"`
	InputBits int    `json:"input_bits"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Step      int    `json:"step"`
	Value     int    `json:"value"`
	Count     int    `json:"count"`
	Interval  string `json:"interval,omitempty"`
	Format    string `json:"format"`
	Trace     bool   `json:"trace,omitempty"`

	// MQTT, when set, is a broker host:port that also receives every step.
	MQTT      string `json:"mqtt,omitempty"`
	MQTTTopic string `json:"mqtt_topic,omitempty"`
}

// Default returns a profile that sweeps the full 10-bit range once.
func Default() *Profile {
	p := &Profile{
		Source: SourceSweep,
		To:     core.SampleMax,
		Value:  core.SampleScale / 2,
	}
	applyDefaults(p)
	return p
}

// LoadProfile parses a JSON profile. Fields missing from the document keep
// their default values.
func LoadProfile(jsonData []byte) (*Profile, error) {
	p := Default()

	if err := json.Unmarshal(jsonData, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	applyDefaults(p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProfileFile reads and parses the profile at path.
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return LoadProfile(data)
}

// applyDefaults fills in zero values that have a sensible default
func applyDefaults(p *Profile) {
	if p.Source == "" {
		p.Source = SourceSweep
	}
	if p.Baud == 0 {
		p.Baud = 115200
	}
	if p.InputBits == 0 {
		p.InputBits = core.SampleBits
	}
	if p.Step == 0 {
		p.Step = 1
	}
	if p.Count == 0 {
		p.Count = 1
	}
	if p.Format == "" {
		p.Format = "text"
	}
}

// IntervalDuration parses Interval. An empty interval means no pacing.
func (p *Profile) IntervalDuration() (time.Duration, error) {
	if p.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Interval)
	if err != nil {
		return 0, fmt.Errorf("interval %q: %w", p.Interval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("interval %q is negative", p.Interval)
	}
	return d, nil
}

// Validate checks that the profile can drive a simulation.
func (p *Profile) Validate() error {
	switch p.Source {
	case SourceSweep:
		if p.From < 0 || p.From > core.SampleMax || p.To < 0 || p.To > core.SampleMax {
			return fmt.Errorf("sweep bounds %d..%d outside 0..%d", p.From, p.To, core.SampleMax)
		}
		if p.Step <= 0 {
			return fmt.Errorf("sweep step %d must be positive", p.Step)
		}
	case SourceConstant:
		if p.Value < 0 || p.Value > core.SampleMax {
			return fmt.Errorf("constant value %d outside 0..%d", p.Value, core.SampleMax)
		}
		if p.Count < 0 {
			return fmt.Errorf("constant count %d is negative", p.Count)
		}
	case SourceStdin:
	case SourceFile:
		if p.File == "" {
			return fmt.Errorf("source %q needs a file", p.Source)
		}
	case SourceSerial:
		if p.Device == "" {
			return fmt.Errorf("source %q needs a device", p.Source)
		}
		if p.Baud <= 0 {
			return fmt.Errorf("baud %d must be positive", p.Baud)
		}
	default:
		return fmt.Errorf("unknown source %q", p.Source)
	}

	if p.InputBits < 1 || p.InputBits > 16 {
		return fmt.Errorf("input_bits %d outside 1..16", p.InputBits)
	}

	switch p.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", p.Format)
	}

	_, err := p.IntervalDuration()
	return err
}
