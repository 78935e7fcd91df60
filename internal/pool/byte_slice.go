package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices for scratch use.
// Slices keep whatever capacity they accumulated before being put
// back, so hot paths converge on buffers sized for their workload.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlice = &ByteSlicePool{
	pool: sync.Pool{
		New: func() interface{} {
			return make([]byte, 0, defaultCapacity)
		},
	},
}

// ByteSlice returns the shared byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlice
}

func (p *ByteSlicePool) Get() []byte {
	return p.GetCapacity(defaultCapacity)
}

// GetCapacity returns an empty slice whose capacity is at least n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.pool.Get().([]byte)
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns a slice to the pool. The slice must not be used after
// it has been put back.
func (p *ByteSlicePool) Put(b []byte) {
	if b == nil {
		return
	}
	p.pool.Put(b[:0])
}
