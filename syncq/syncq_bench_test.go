package syncq_test

import (
	"testing"

	"github.com/momentics/hioload-sync/syncq"
)

func BenchmarkQueue_PushPop(b *testing.B) {
	q := syncq.New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}

func BenchmarkQueue_Parallel(b *testing.B) {
	q := syncq.New[int]()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Push(1)
			q.Pop()
		}
	})
}

func BenchmarkValue_PingPong(b *testing.B) {
	toWorker := syncq.NewValue[int]()
	toIO := syncq.NewValue[int]()
	go func() {
		for {
			v, ok := toWorker.Get()
			if !ok {
				return
			}
			toIO.Put(v)
		}
	}()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		toWorker.Put(i)
		toIO.Get()
	}
	b.StopTimer()
	toWorker.Finish()
}
