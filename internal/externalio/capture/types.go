package capture

import (
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Appends records to a zstd compressed capture file.
// The stream is plain concatenated wire records; each header's length field delimits it.
type Writer struct {
	Path    string
	file    *os.File
	encoder *zstd.Encoder
	mutex   sync.Mutex
	written uint64
}

// Iterates the records of a capture file in write order
type Reader struct {
	Path    string
	file    *os.File
	decoder *zstd.Decoder
	buf     []byte
}
