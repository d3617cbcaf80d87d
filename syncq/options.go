// File: syncq/options.go
// Package syncq defines functional options shared by Queue and Value.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package syncq

import (
	"log/slog"

	"github.com/momentics/hioload-sync/api"
)

// WakePolicy selects how many waiters Buffer wakes after a batch insert.
type WakePolicy int

const (
	// WakeEach signals once per inserted item.
	WakeEach WakePolicy = iota
	// WakeOne signals a single waiter regardless of batch size.
	WakeOne
	// WakeAll broadcasts to every waiter.
	WakeAll
)

func (p WakePolicy) String() string {
	switch p {
	case WakeEach:
		return "each"
	case WakeOne:
		return "one"
	case WakeAll:
		return "all"
	default:
		return "unknown"
	}
}

// Option customizes a Queue or a Value.
type Option func(*options)

type options struct {
	name       string
	bufferWake WakePolicy
	metrics    api.Counter
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		name:       "syncq",
		bufferWake: WakeEach,
		logger:     slog.New(slog.DiscardHandler),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the prefix used for metric keys and log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithBufferWake overrides the wake policy used by Queue.Buffer.
func WithBufferWake(p WakePolicy) Option {
	return func(o *options) {
		o.bufferWake = p
	}
}

// WithMetrics records operation counters under "<name>.<op>".
func WithMetrics(c api.Counter) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithLogger enables debug records on Stop, Reset and Finish.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *options) count(op string, delta int64) {
	if o.metrics != nil && delta != 0 {
		o.metrics.Add(o.name+"."+op, delta)
	}
}
