// File: pipeline/pingpong.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/osthread"
	"github.com/momentics/hioload-sync/pool"
	"github.com/momentics/hioload-sync/syncq"
)

// PingPongReport summarises one PingPong run.
type PingPongReport struct {
	Rounds       int
	Mismatches   int
	IOThread     int
	WorkerThread int
	Elapsed      time.Duration
}

// PingPong passes one pooled buffer between an I/O stage and a worker stage
// for cfg.Rounds round trips. The I/O stage stamps the round number into the
// buffer, the worker inverts every byte, and the I/O stage checks the result.
func PingPong(ctx context.Context, cfg Config, ctrl api.Control, logger *slog.Logger) (PingPongReport, error) {
	if err := cfg.Validate(); err != nil {
		return PingPongReport{}, err
	}

	start := time.Now()
	bufs := pool.NewBytePool(cfg.BufferSize)
	toWorker := syncq.NewValue[[]byte](syncq.WithName("pingpong.request"), syncq.WithMetrics(ctrl), syncq.WithLogger(logger))
	toIO := syncq.NewValue[[]byte](syncq.WithName("pingpong.response"), syncq.WithMetrics(ctrl), syncq.WithLogger(logger))

	finish := context.AfterFunc(ctx, func() {
		toWorker.Finish()
		toIO.Finish()
	})
	defer finish()

	var report PingPongReport
	var g errgroup.Group

	g.Go(func() error {
		if cfg.Pin {
			tid, unpin := osthread.Pin()
			defer unpin()
			report.WorkerThread = tid
		}
		for {
			buf, ok := toWorker.Get()
			if !ok {
				return nil
			}
			for i := range buf {
				buf[i] = ^buf[i]
			}
			toIO.Put(buf)
		}
	})

	g.Go(func() error {
		defer toWorker.Finish()
		if cfg.Pin {
			tid, unpin := osthread.Pin()
			defer unpin()
			report.IOThread = tid
		}
		buf := bufs.Get()
		for r := 0; r < cfg.Rounds; r++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			stamp := byte(r)
			for i := range buf {
				buf[i] = stamp
			}
			toWorker.Put(buf)

			var ok bool
			if buf, ok = toIO.Get(); !ok {
				return ctx.Err()
			}
			report.Rounds++
			for _, b := range buf {
				if b != ^stamp {
					report.Mismatches++
					break
				}
			}
		}
		bufs.Put(buf)
		return nil
	})

	err := g.Wait()
	report.Elapsed = time.Since(start)
	logger.Info("pingpong finished",
		"rounds", report.Rounds,
		"mismatches", report.Mismatches,
		"io_tid", report.IOThread,
		"worker_tid", report.WorkerThread,
		"elapsed", report.Elapsed,
	)
	if err != nil {
		return report, fmt.Errorf("pingpong: %w", err)
	}
	if report.Mismatches > 0 {
		return report, fmt.Errorf("%w: %d of %d rounds", ErrMismatch, report.Mismatches, report.Rounds)
	}
	return report, nil
}
