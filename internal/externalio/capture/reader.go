package capture

import (
	"errors"
	"fmt"
	"hilog/pkg/protocol"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func Open(path string) (reader *Reader, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed to open capture file: %v", err)
		return
	}

	decoder, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		err = fmt.Errorf("failed to create capture decompressor: %v", err)
		return
	}

	reader = &Reader{
		Path:    path,
		file:    file,
		decoder: decoder,
		buf:     make([]byte, protocol.MaxRecordLen),
	}
	return
}

// Returns the next record, or io.EOF after the last one.
// A stream ending inside a record is reported as io.ErrUnexpectedEOF.
func (reader *Reader) Next() (record protocol.Record, err error) {
	head := reader.buf[:protocol.HeaderLen]
	_, err = io.ReadFull(reader.decoder, head)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			err = fmt.Errorf("failed reading capture header: %w", err)
		}
		return
	}

	header, err := protocol.DecodeHeader(head)
	if err != nil {
		return
	}

	recordLen := int(header.Len)
	if recordLen < protocol.MinRecordLen || recordLen > protocol.MaxRecordLen {
		err = fmt.Errorf("corrupt capture: record length %d out of range %d-%d",
			recordLen, protocol.MinRecordLen, protocol.MaxRecordLen)
		return
	}

	_, err = io.ReadFull(reader.decoder, reader.buf[protocol.HeaderLen:recordLen])
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		err = fmt.Errorf("failed reading capture record: %w", err)
		return
	}

	record, err = protocol.DecodeRecord(reader.buf[:recordLen])
	return
}

func (reader *Reader) Close() (err error) {
	if reader == nil {
		return
	}
	reader.decoder.Close()
	err = reader.file.Close()
	return
}
