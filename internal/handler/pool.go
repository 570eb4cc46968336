package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a full nine-plot snapshot without growing
const initialBufferSize = 2048

// bufferPool recycles JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
