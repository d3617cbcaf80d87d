package adapters_test

import (
	"testing"

	"github.com/momentics/hioload-sync/adapters"
	"github.com/momentics/hioload-sync/syncq"
)

func TestControlAdapterBasic(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	cfg := ctrl.GetConfig()
	if len(cfg) != 0 {
		t.Error("Expected empty config on init")
	}
	if err := ctrl.SetConfig(map[string]any{"k": 1}); err != nil {
		t.Fatal(err)
	}
	if got := ctrl.Config().Int("k", 0); got != 1 {
		t.Errorf("SetConfig did not apply: got %d", got)
	}
	called := false
	ctrl.OnReload(func() { called = true })
	ctrl.SetConfig(map[string]any{"x": 2})
	if !called {
		t.Error("Reload hook not called")
	}
}

func TestControlAdapterQueueStats(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	q := syncq.New[int](syncq.WithName("work"), syncq.WithMetrics(ctrl))
	ctrl.RegisterDebugProbe("work.size", func() any { return q.Size() })

	q.Buffer(1, 2, 3)
	q.Pop()

	stats := ctrl.Stats()
	if stats["work.pushed"] != int64(3) {
		t.Errorf("work.pushed = %v", stats["work.pushed"])
	}
	if stats["work.popped"] != int64(1) {
		t.Errorf("work.popped = %v", stats["work.popped"])
	}
	if stats["debug.work.size"] != 2 {
		t.Errorf("debug.work.size = %v", stats["debug.work.size"])
	}
	if _, ok := stats["debug.platform.cpus"]; !ok {
		t.Error("platform probes missing")
	}
}
