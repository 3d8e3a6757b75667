// Capture files holding raw wire records for later replay
package capture

import (
	"context"
	"fmt"
	"hilog/pkg/protocol"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Creates (or truncates) the capture file. Returns nil nil if no path.
func NewWriter(path string) (writer *Writer, err error) {
	if path == "" {
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0640)
	if err != nil {
		err = fmt.Errorf("failed to open capture file: %v", err)
		return
	}

	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		file.Close()
		err = fmt.Errorf("failed to create capture compressor: %v", err)
		return
	}

	writer = &Writer{
		Path:    path,
		file:    file,
		encoder: encoder,
	}
	return
}

// Encodes and appends one record
func (writer *Writer) Write(ctx context.Context, record protocol.Record) (err error) {
	if writer == nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}

	datagram, err := record.Encode()
	if err != nil {
		return
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	_, err = writer.encoder.Write(datagram)
	if err != nil {
		err = fmt.Errorf("failed to write to capture file '%s': %v", writer.Path, err)
		return
	}
	writer.written++
	return
}

// Number of records written so far
func (writer *Writer) Count() (count uint64) {
	if writer == nil {
		return
	}
	writer.mutex.Lock()
	defer writer.mutex.Unlock()
	count = writer.written
	return
}

// Flushes the compressed stream and closes the file. Safe on nil writer.
func (writer *Writer) Close() (err error) {
	if writer == nil {
		return
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	err = writer.encoder.Close()
	closeErr := writer.file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		err = fmt.Errorf("failed to finish capture file '%s': %v", writer.Path, err)
	}
	return
}
