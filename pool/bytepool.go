// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

var _ ObjectPool[[]byte] = (*BytePool)(nil)

// BytePool recycles fixed-size message buffers handed between pipeline stages.
type BytePool struct {
	pool *SyncPool[*[]byte]
	size int
}

// NewBytePool returns a pool of buffers of exactly size bytes.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		pool: NewSyncPool(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
		size: size,
	}
}

// Size is the length of every buffer returned by Get.
func (b *BytePool) Size() int {
	return b.size
}

// Get returns a buffer of Size bytes. Contents are unspecified.
func (b *BytePool) Get() []byte {
	return (*b.pool.Get())[:b.size]
}

// Put returns buf to the pool. Buffers of a foreign capacity are dropped.
func (b *BytePool) Put(buf []byte) {
	if cap(buf) != b.size {
		return
	}
	buf = buf[:b.size]
	b.pool.Put(&buf)
}
