// File: pipeline/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pipeline

import (
	"fmt"
	"strings"

	"github.com/momentics/hioload-sync/control"
)

// ShutdownMode selects how Fanout tells consumers to exit once producers finish.
type ShutdownMode int

const (
	// ShutdownDrain appends one stop marker per consumer; every item is consumed.
	ShutdownDrain ShutdownMode = iota
	// ShutdownUrgent inserts the stop markers at the front; pending items are dropped.
	ShutdownUrgent
	// ShutdownStop stops the queue; pending items are dropped.
	ShutdownStop
)

var shutdownNames = map[ShutdownMode]string{
	ShutdownDrain:  "drain",
	ShutdownUrgent: "urgent",
	ShutdownStop:   "stop",
}

func (m ShutdownMode) String() string {
	if s, ok := shutdownNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ShutdownMode(%d)", int(m))
}

// ParseShutdownMode maps "drain", "urgent" or "stop" to a ShutdownMode.
func ParseShutdownMode(s string) (ShutdownMode, error) {
	for m, name := range shutdownNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShutdown, s)
}

// Config keys read by FromStore.
const (
	KeyProducers  = "pipeline.producers"
	KeyConsumers  = "pipeline.consumers"
	KeyItems      = "pipeline.items"
	KeyBatch      = "pipeline.batch"
	KeyBufferSize = "pipeline.buffer_size"
	KeyRounds     = "pipeline.rounds"
	KeyShutdown   = "pipeline.shutdown"
	KeyPin        = "pipeline.pin"
)

// Config sizes the demo pipelines.
type Config struct {
	Producers  int          // Fanout producer goroutines
	Consumers  int          // Fanout consumer goroutines
	Items      int          // messages per producer
	Batch      int          // messages per Buffer call; 1 uses Push
	BufferSize int          // payload bytes per message
	Rounds     int          // PingPong round trips
	Shutdown   ShutdownMode // Fanout shutdown protocol
	Pin        bool         // lock stage goroutines to OS threads
}

// DefaultConfig returns a small configuration suitable for tests.
func DefaultConfig() Config {
	return Config{
		Producers:  2,
		Consumers:  2,
		Items:      1000,
		Batch:      1,
		BufferSize: 256,
		Rounds:     1000,
		Shutdown:   ShutdownDrain,
	}
}

// Validate reports the first non-positive field.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"producers", c.Producers},
		{"consumers", c.Consumers},
		{"items", c.Items},
		{"batch", c.Batch},
		{"buffer size", c.BufferSize},
		{"rounds", c.Rounds},
	}
	for _, chk := range checks {
		if chk.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, chk.name, chk.v)
		}
	}
	if _, ok := shutdownNames[c.Shutdown]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownShutdown, c.Shutdown)
	}
	return nil
}

// FromStore overlays store values on DefaultConfig and validates the result.
func FromStore(cs *control.ConfigStore) (Config, error) {
	cfg := DefaultConfig()
	cfg.Producers = cs.Int(KeyProducers, cfg.Producers)
	cfg.Consumers = cs.Int(KeyConsumers, cfg.Consumers)
	cfg.Items = cs.Int(KeyItems, cfg.Items)
	cfg.Batch = cs.Int(KeyBatch, cfg.Batch)
	cfg.BufferSize = cs.Int(KeyBufferSize, cfg.BufferSize)
	cfg.Rounds = cs.Int(KeyRounds, cfg.Rounds)
	cfg.Pin = cs.Bool(KeyPin, cfg.Pin)

	mode, err := ParseShutdownMode(cs.String(KeyShutdown, cfg.Shutdown.String()))
	if err != nil {
		return Config{}, err
	}
	cfg.Shutdown = mode

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
