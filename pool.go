package hexxdump

import "sync"

const maxScratchCap = 64 * 1024

type rowBuffer struct {
	buf []byte
}

var rowBufferPool = sync.Pool{
	New: func() any {
		return &rowBuffer{buf: make([]byte, 0, 256)}
	},
}

func acquireRowBuffer() *rowBuffer {
	return rowBufferPool.Get().(*rowBuffer)
}

func releaseRowBuffer(rb *rowBuffer) {
	if rb == nil {
		return
	}
	if cap(rb.buf) > maxScratchCap {
		rb.buf = nil
	} else {
		rb.buf = rb.buf[:0]
	}
	rowBufferPool.Put(rb)
}
