package sender

import (
	"context"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/pkg/protocol"
)

// Stamps, encodes and sends one entry as a single datagram.
// No buffering or retry: a failed send is returned to the caller.
func (writer *Writer) Write(ctx context.Context, entry Entry) (err error) {
	stamp, err := NewStamp()
	if err != nil {
		return
	}
	err = writer.WriteRecord(ctx, stamp.Record(entry))
	return
}

// Encodes and sends a fully populated record
func (writer *Writer) WriteRecord(ctx context.Context, record protocol.Record) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}

	datagram, err := record.Encode()
	if err != nil {
		return
	}

	// Zero deadline (no ctx deadline) clears any left by a previous call
	deadline, _ := ctx.Deadline()
	err = writer.conn.SetWriteDeadline(deadline)
	if err != nil {
		err = fmt.Errorf("failed to set write deadline: %v", err)
		return
	}

	bytesWritten, err := writer.conn.Write(datagram)
	if err != nil {
		err = fmt.Errorf("failed to send record to '%s': %w", writer.Path, err)
		return
	}
	if bytesWritten != len(datagram) {
		err = fmt.Errorf("short write to '%s': %d of %d bytes", writer.Path, bytesWritten, len(datagram))
		return
	}

	logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
		"Sent %d byte record (tag '%s', type %d, level %d)\n", len(datagram), record.Tag, record.Type, record.Level)
	return
}
