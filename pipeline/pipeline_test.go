package pipeline_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-sync/adapters"
	"github.com/momentics/hioload-sync/control"
	"github.com/momentics/hioload-sync/pipeline"
)

var discard = slog.New(slog.DiscardHandler)

func TestFanout(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mode    pipeline.ShutdownMode
		batch   int
		pin     bool
		markers int // stop markers each consumer pops
	}{
		"drain with push":      {mode: pipeline.ShutdownDrain, batch: 1, markers: 1},
		"drain with buffer":    {mode: pipeline.ShutdownDrain, batch: 7, markers: 1},
		"urgent stop markers":  {mode: pipeline.ShutdownUrgent, batch: 4, markers: 1},
		"queue stop":           {mode: pipeline.ShutdownStop, batch: 1},
		"pinned stage threads": {mode: pipeline.ShutdownDrain, batch: 3, pin: true, markers: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := pipeline.DefaultConfig()
			cfg.Producers = 3
			cfg.Consumers = 4
			cfg.Items = 500
			cfg.Batch = tc.batch
			cfg.Shutdown = tc.mode
			cfg.Pin = tc.pin

			ctrl := adapters.NewControlAdapter()
			report, err := pipeline.Fanout(context.Background(), cfg, ctrl, discard)
			require.NoError(t, err)

			assert.Equal(t, cfg.Producers*cfg.Items, report.Produced)
			assert.Equal(t, report.Produced, report.Consumed+report.Dropped)
			require.Len(t, report.PerConsumer, cfg.Consumers)

			sum := 0
			for _, n := range report.PerConsumer {
				sum += n
			}
			assert.Equal(t, report.Consumed, sum)

			if tc.mode == pipeline.ShutdownDrain {
				assert.Zero(t, report.Dropped)
			}

			stats := ctrl.Stats()
			popped, _ := stats["fanout.popped"].(int64)
			assert.Equal(t, int64(report.Consumed+cfg.Consumers*tc.markers), popped)
			assert.Equal(t, 0, stats["debug.fanout.size"])
		})
	}
}

func TestFanout_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := pipeline.DefaultConfig()
	report, err := pipeline.Fanout(ctx, cfg, adapters.NewControlAdapter(), discard)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, report.Produced, report.Consumed+report.Dropped)
}

func TestFanout_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.Consumers = 0
	_, err := pipeline.Fanout(context.Background(), cfg, adapters.NewControlAdapter(), discard)
	require.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}

func TestPingPong(t *testing.T) {
	t.Parallel()

	for _, pin := range []bool{false, true} {
		cfg := pipeline.DefaultConfig()
		cfg.Rounds = 2000
		cfg.BufferSize = 32
		cfg.Pin = pin

		ctrl := adapters.NewControlAdapter()
		report, err := pipeline.PingPong(context.Background(), cfg, ctrl, discard)
		require.NoError(t, err)
		assert.Equal(t, cfg.Rounds, report.Rounds)
		assert.Zero(t, report.Mismatches)

		stats := ctrl.Stats()
		assert.Equal(t, int64(cfg.Rounds), stats["pingpong.request.gets"])
		assert.Equal(t, int64(cfg.Rounds), stats["pingpong.response.gets"])
		assert.NotContains(t, stats, "pingpong.request.overwrites")
	}
}

func TestPingPong_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := pipeline.DefaultConfig()
	cfg.Rounds = 1 << 20
	report, err := pipeline.PingPong(ctx, cfg, adapters.NewControlAdapter(), discard)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, report.Rounds, cfg.Rounds)
}

func TestFromStore(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		values  map[string]any
		want    func(*pipeline.Config)
		wantErr error
	}{
		"defaults": {
			values: map[string]any{},
			want:   func(*pipeline.Config) {},
		},
		"overrides": {
			values: map[string]any{
				pipeline.KeyProducers: 8,
				pipeline.KeyShutdown:  "Urgent",
				pipeline.KeyPin:       true,
			},
			want: func(c *pipeline.Config) {
				c.Producers = 8
				c.Shutdown = pipeline.ShutdownUrgent
				c.Pin = true
			},
		},
		"unknown shutdown": {
			values:  map[string]any{pipeline.KeyShutdown: "later"},
			wantErr: pipeline.ErrUnknownShutdown,
		},
		"zero items": {
			values:  map[string]any{pipeline.KeyItems: 0},
			wantErr: pipeline.ErrInvalidConfig,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cs := control.NewConfigStore()
			cs.SetConfig(tc.values)

			got, err := pipeline.FromStore(cs)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			want := pipeline.DefaultConfig()
			tc.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestShutdownMode_String(t *testing.T) {
	t.Parallel()

	for _, m := range []pipeline.ShutdownMode{pipeline.ShutdownDrain, pipeline.ShutdownUrgent, pipeline.ShutdownStop} {
		parsed, err := pipeline.ParseShutdownMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "ShutdownMode(9)", pipeline.ShutdownMode(9).String())
}
