// Package telemetry publishes controller steps to an MQTT broker.
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	mqtt "github.com/soypat/natiu-mqtt"

	"fancontrol/host/sim"
)

// DefaultTopic is used when Config.Topic is empty.
const DefaultTopic = "fancontrol/steps"

var pubFlags, _ = mqtt.NewPublishFlags(mqtt.QoS0, false, false)

// Config describes the broker connection.
type Config struct {
	Addr     string // host:port
	Topic    string
	ClientID string
	Timeout  time.Duration
}

func (c *Config) applyDefaults() {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.ClientID == "" {
		c.ClientID = "fansim"
	}
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Second
	}
}

// Publisher implements sim.Reporter by publishing every step as a JSON
// message at QoS 0.
type Publisher struct {
	conn   net.Conn
	client *mqtt.Client
	vars   mqtt.VariablesPublish
	nextID uint16
	cfg    Config
	logger *slog.Logger
}

// Dial connects to the broker at cfg.Addr.
func Dial(ctx context.Context, cfg Config, logger *slog.Logger) (*Publisher, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	p, err := Connect(conn, cfg, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

// Connect performs the MQTT handshake over an established connection.
func Connect(conn net.Conn, cfg Config, logger *slog.Logger) (*Publisher, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 1024)},
		OnPub: func(_ mqtt.Header, varPub mqtt.VariablesPublish, _ io.Reader) error {
			logger.Debug("ignoring message", slog.String("topic", string(varPub.TopicName)))
			return nil
		},
	})

	var varconn mqtt.VariablesConnect
	varconn.SetDefaultMQTT([]byte(cfg.ClientID))

	conn.SetDeadline(time.Now().Add(cfg.Timeout))
	if err := client.StartConnect(conn, &varconn); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	for !client.IsConnected() {
		if err := client.HandleNext(); err != nil {
			return nil, fmt.Errorf("mqtt connack: %w", err)
		}
	}
	conn.SetDeadline(time.Time{})

	logger.Info("mqtt connected", slog.String("topic", cfg.Topic))
	return &Publisher{
		conn:   conn,
		client: client,
		vars:   mqtt.VariablesPublish{TopicName: []byte(cfg.Topic)},
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Report implements sim.Reporter.
func (p *Publisher) Report(s sim.Step) error {
	if !p.client.IsConnected() {
		return errors.New("mqtt: not connected")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}

	p.vars.PacketIdentifier = p.packetID()
	p.conn.SetWriteDeadline(time.Now().Add(p.cfg.Timeout))
	if err := p.client.PublishPayload(pubFlags, p.vars, payload); err != nil {
		return fmt.Errorf("mqtt publish step %d: %w", s.Index, err)
	}
	return nil
}

// packetID returns the next packet identifier. Zero is reserved, so the
// counter wraps from 0xFFFF to 1.
func (p *Publisher) packetID() uint16 {
	p.nextID++
	if p.nextID == 0 {
		p.nextID = 1
	}
	return p.nextID
}

// Flush implements sim.Reporter. Messages are written as they are reported.
func (p *Publisher) Flush() error {
	return nil
}

// Close disconnects from the broker and closes the connection.
func (p *Publisher) Close() error {
	p.conn.SetWriteDeadline(time.Now().Add(p.cfg.Timeout))
	if err := p.client.Disconnect(nil); err != nil {
		p.logger.Debug("mqtt disconnect", slog.Any("err", err))
	}
	return p.conn.Close()
}
