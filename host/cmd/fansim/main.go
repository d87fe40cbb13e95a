// Command fansim runs the fan controller core against simulated or
// recorded potentiometer readings and prints the PWM output per sample.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fancontrol/core"
	"fancontrol/host/config"
	"fancontrol/host/deploy"
	"fancontrol/host/serial"
	"fancontrol/host/sim"
	"fancontrol/host/telemetry"
)

var (
	profilePath = flag.String("profile", "", "JSON profile to load before applying flags")
	source      = flag.String("source", config.SourceSweep, "Sample source: sweep, constant, stdin, file, serial")
	device      = flag.String("device", "", "Serial device streaming readings, e.g. /dev/ttyACM0")
	baud        = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	file        = flag.String("file", "", "File of readings, one per line")
	inputBits   = flag.Int("bits", core.SampleBits, "Width of the incoming readings in bits")
	from        = flag.Int("from", 0, "Sweep start")
	to          = flag.Int("to", core.SampleMax, "Sweep end (inclusive)")
	step        = flag.Int("step", 1, "Sweep step")
	value       = flag.Int("value", core.SampleScale/2, "Constant sample value")
	count       = flag.Int("count", 1, "Number of constant samples")
	interval    = flag.String("interval", "", "Delay between samples, e.g. 10ms")
	format      = flag.String("format", "text", "Output format: text or json")
	trace       = flag.Bool("trace", false, "Dump the last samples seen by the handler on exit")
	mqttAddr    = flag.String("mqtt", "", "MQTT broker host:port to publish steps to")
	mqttTopic   = flag.String("topic", telemetry.DefaultTopic, "MQTT topic for published steps")
	fuses       = flag.String("fuses", "", "Print avrdude fuse arguments for a chip and exit")
	verbose     = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *fuses != "" {
		f, err := deploy.Lookup(*fuses)
		if err != nil {
			fatal(logger, "fuse lookup failed", err)
		}
		for _, cmd := range f.Commands() {
			fmt.Println(cmd)
		}
		return
	}

	profile, err := loadProfile()
	if err != nil {
		fatal(logger, "invalid profile", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, profile, logger); err != nil {
		fatal(logger, "simulation failed", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("err", err))
	os.Exit(1)
}

// loadProfile starts from the profile file, if any, and overrides it with
// every flag given on the command line.
func loadProfile() (*config.Profile, error) {
	p := config.Default()
	if *profilePath != "" {
		var err error
		if p, err = config.LoadProfileFile(*profilePath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			p.Source = *source
		case "device":
			p.Device = *device
		case "baud":
			p.Baud = *baud
		case "file":
			p.File = *file
		case "bits":
			p.InputBits = *inputBits
		case "from":
			p.From = *from
		case "to":
			p.To = *to
		case "step":
			p.Step = *step
		case "value":
			p.Value = *value
		case "count":
			p.Count = *count
		case "interval":
			p.Interval = *interval
		case "format":
			p.Format = *format
		case "trace":
			p.Trace = *trace
		case "mqtt":
			p.MQTT = *mqttAddr
		case "topic":
			p.MQTTTopic = *mqttTopic
		}
	})

	return p, p.Validate()
}

func run(ctx context.Context, p *config.Profile, logger *slog.Logger) error {
	src, closer, err := openSource(p, logger)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	reporter, err := sim.NewReporter(p.Format, os.Stdout)
	if err != nil {
		return err
	}

	if p.MQTT != "" {
		pub, err := telemetry.Dial(ctx, telemetry.Config{Addr: p.MQTT, Topic: p.MQTTTopic}, logger)
		if err != nil {
			return err
		}
		defer pub.Close()
		reporter = sim.MultiReporter(reporter, pub)
	}

	if p.Trace {
		core.SetDebugWriter(func(s string) { logger.Info(s) })
		core.SetTraceEnabled(true)
		defer core.DumpTrace()
	}

	m := sim.NewMachine(logger)
	if m.Interval, err = p.IntervalDuration(); err != nil {
		return err
	}

	logger.Info("starting simulation",
		slog.String("source", p.Source),
		slog.Int("top", core.PeriodTop),
		slog.Uint64("pwm_hz", uint64(core.PWMFrequency())))

	return m.RunReporter(ctx, src, reporter)
}

// openSource builds the sample source named by the profile. The returned
// closer, if not nil, releases the underlying device or file.
func openSource(p *config.Profile, logger *slog.Logger) (sim.Source, io.Closer, error) {
	switch p.Source {
	case config.SourceSweep:
		src, err := sim.NewSweep(p.From, p.To, p.Step)
		return src, nil, err

	case config.SourceConstant:
		return sim.NewConstant(core.ADCValue(p.Value), p.Count), nil, nil

	case config.SourceStdin:
		src, err := sim.NewLineSource(os.Stdin, uint(p.InputBits))
		return src, nil, err

	case config.SourceFile:
		f, err := os.Open(p.File)
		if err != nil {
			return nil, nil, fmt.Errorf("open readings: %w", err)
		}
		src, err := sim.NewLineSource(f, uint(p.InputBits))
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return src, f, nil

	case config.SourceSerial:
		cfg := serial.DefaultConfig(p.Device)
		cfg.Baud = p.Baud
		readings, err := serial.OpenReadings(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("serial port open", slog.String("device", p.Device), slog.Int("baud", p.Baud))
		src, err := sim.NewLineSource(readings, uint(p.InputBits))
		if err != nil {
			readings.Close()
			return nil, nil, err
		}
		return src, readings, nil
	}
	return nil, nil, fmt.Errorf("unknown source %q", p.Source)
}
