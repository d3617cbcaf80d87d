// File: pipeline/fanout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/osthread"
	"github.com/momentics/hioload-sync/pool"
	"github.com/momentics/hioload-sync/syncq"
)

// Message is the unit moved from producers to consumers.
type Message struct {
	Producer int
	Seq      int
	Payload  []byte
	stop     bool
}

// FanoutReport summarises one Fanout run. Produced == Consumed + Dropped.
type FanoutReport struct {
	Produced    int
	Consumed    int
	Dropped     int
	PerConsumer []int
	Elapsed     time.Duration
}

// Fanout runs cfg.Producers producers and cfg.Consumers consumers around a
// single queue and shuts them down with cfg.Shutdown. Cancelling ctx stops
// the queue; the run then returns ctx's error with the partial report.
func Fanout(ctx context.Context, cfg Config, ctrl api.Control, logger *slog.Logger) (FanoutReport, error) {
	if err := cfg.Validate(); err != nil {
		return FanoutReport{}, err
	}

	start := time.Now()
	bufs := pool.NewBytePool(cfg.BufferSize)
	q := syncq.New[Message](
		syncq.WithName("fanout"),
		syncq.WithMetrics(ctrl),
		syncq.WithLogger(logger),
	)
	ctrl.RegisterDebugProbe("fanout.size", func() any { return q.Size() })
	ctrl.RegisterDebugProbe("fanout.done", func() any { return q.Done() })

	stopOnCancel := context.AfterFunc(ctx, q.Stop)
	defer stopOnCancel()

	var (
		produced    atomic.Int64
		consumed    atomic.Int64
		perConsumer = make([]int, cfg.Consumers)
	)

	var cg errgroup.Group
	for c := 0; c < cfg.Consumers; c++ {
		cg.Go(func() error {
			if cfg.Pin {
				tid, unpin := osthread.Pin()
				defer unpin()
				logger.Debug("consumer pinned", "consumer", c, "tid", tid)
			}
			n := 0
			syncq.Consume(q, func(m Message) bool {
				if m.stop {
					return false
				}
				n++
				bufs.Put(m.Payload)
				return true
			})
			perConsumer[c] = n
			consumed.Add(int64(n))
			return nil
		})
	}

	pg, pctx := errgroup.WithContext(ctx)
	for p := 0; p < cfg.Producers; p++ {
		pg.Go(func() error {
			if cfg.Pin {
				tid, unpin := osthread.Pin()
				defer unpin()
				logger.Debug("producer pinned", "producer", p, "tid", tid)
			}
			batch := make([]Message, 0, cfg.Batch)
			for seq := 0; seq < cfg.Items; seq++ {
				payload := bufs.Get()
				payload[0] = byte(seq)
				batch = append(batch, Message{Producer: p, Seq: seq, Payload: payload})
				if len(batch) < cfg.Batch && seq < cfg.Items-1 {
					continue
				}
				if err := pctx.Err(); err != nil {
					return err
				}
				if len(batch) == 1 {
					q.Push(batch[0])
				} else {
					q.Buffer(batch...)
				}
				produced.Add(int64(len(batch)))
				batch = batch[:0]
			}
			return nil
		})
	}
	perr := pg.Wait()

	switch cfg.Shutdown {
	case ShutdownDrain:
		for i := 0; i < cfg.Consumers; i++ {
			q.Push(Message{stop: true})
		}
	case ShutdownUrgent:
		for i := 0; i < cfg.Consumers; i++ {
			q.PushFront(Message{stop: true})
		}
	case ShutdownStop:
		q.Stop()
	}
	_ = cg.Wait()

	dropped := 0
	for _, m := range q.Drain() {
		if !m.stop {
			dropped++
			bufs.Put(m.Payload)
		}
	}

	report := FanoutReport{
		Produced:    int(produced.Load()),
		Consumed:    int(consumed.Load()),
		Dropped:     dropped,
		PerConsumer: perConsumer,
		Elapsed:     time.Since(start),
	}
	logger.Info("fanout finished",
		"shutdown", cfg.Shutdown,
		"produced", report.Produced,
		"consumed", report.Consumed,
		"dropped", report.Dropped,
		"elapsed", report.Elapsed,
	)
	if perr != nil {
		return report, fmt.Errorf("fanout producers: %w", perr)
	}
	return report, nil
}
