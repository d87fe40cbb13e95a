package telemetry

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fancontrol/host/sim"
)

// fakeBroker accepts one client on a pipe, answers CONNECT with a CONNACK
// and records every byte the client sends.
type fakeBroker struct {
	conn net.Conn

	mu       sync.Mutex
	received bytes.Buffer
	done     chan struct{}
}

func newFakeBroker(conn net.Conn) *fakeBroker {
	b := &fakeBroker{conn: conn, done: make(chan struct{})}
	go b.serve()
	return b
}

func (b *fakeBroker) serve() {
	defer close(b.done)
	buf := make([]byte, 512)
	acked := false
	for {
		n, err := b.conn.Read(buf)
		if n > 0 {
			b.mu.Lock()
			b.received.Write(buf[:n])
			b.mu.Unlock()
			if !acked {
				acked = true
				// CONNACK, session not present, accepted.
				go b.conn.Write([]byte{0x20, 0x02, 0x00, 0x00})
			}
		}
		if err != nil {
			return
		}
	}
}

func (b *fakeBroker) bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.received.Bytes()...)
}

func TestPublisherSendsSteps(t *testing.T) {
	client, server := net.Pipe()
	broker := newFakeBroker(server)

	p, err := Connect(client, Config{Topic: "fans/test", Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)

	step := sim.Step{Index: 3, Raw: 512, Duty: 80, Compare: 80, Top: 160, HighPercent: 50}
	require.NoError(t, p.Report(step))
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Report(sim.Step{Index: 4 + i, Raw: 100, Top: 160}), "step %d", i)
	}
	require.NoError(t, p.Flush())
	require.NoError(t, p.Close())

	select {
	case <-broker.done:
	case <-time.After(5 * time.Second):
		t.Fatal("broker did not see the connection close")
	}

	got := broker.bytes()
	require.NotEmpty(t, got)
	assert.Equal(t, byte(0x10), got[0], "first packet must be CONNECT")
	assert.Contains(t, string(got), "fansim")
	assert.Contains(t, string(got), "fans/test")
	assert.Contains(t, string(got), `"raw":512`)
	assert.Contains(t, string(got), `"compare":80`)
	assert.Equal(t, 4, bytes.Count(got, []byte(`"top":160`)))
}

func TestPacketIDSkipsZero(t *testing.T) {
	p := &Publisher{nextID: 0xFFFE}

	assert.Equal(t, uint16(0xFFFF), p.packetID())
	assert.Equal(t, uint16(1), p.packetID())
	assert.Equal(t, uint16(2), p.packetID())
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	assert.Equal(t, DefaultTopic, cfg.Topic)
	assert.Equal(t, "fansim", cfg.ClientID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestDialRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	_, err = Dial(context.Background(), Config{Addr: addr}, nil)
	assert.Error(t, err)
}
