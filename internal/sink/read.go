package sink

import (
	"context"
	"errors"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/pkg/protocol"
	"net"
	"time"
)

// Reads datagrams until ctx is cancelled or the sink is closed.
// Each valid record is passed to handler; invalid datagrams are counted and logged.
func (sink *Sink) Run(ctx context.Context, handler Handler) (err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSListen)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// Unblock the pending read
			sink.conn.SetReadDeadline(time.Now())
		case <-stop:
		}
	}()

	// One extra byte detects datagrams larger than any valid record
	buf := make([]byte, protocol.MaxRecordLen+1)
	var suppressed uint64
	for {
		var n int
		n, err = sink.conn.Read(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				err = nil
			}
			return
		}
		sink.metrics.Received.Add(1)

		if n > protocol.MaxRecordLen {
			suppressed, _ = sink.reject(ctx, suppressed, "oversized datagram (more than %d bytes)", protocol.MaxRecordLen)
			continue
		}

		record, decodeErr := protocol.DecodeRecord(buf[:n])
		if decodeErr != nil {
			suppressed = sink.rejectUndecodable(ctx, suppressed, buf[:n], decodeErr)
			continue
		}
		sink.metrics.Decoded.Add(1)

		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"Received record pid %d tid %d tag '%s' (%d bytes)\n", record.Pid, record.Tid, record.Tag, n)

		if handlerErr := handler(ctx, record); handlerErr != nil {
			sink.metrics.HandlerErrors.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Failed to handle record from pid %d: %v\n", record.Pid, handlerErr)
		}
	}
}

// Counts a rejected datagram and warns about it unless warnings are being throttled.
// Returns the number of warnings suppressed since the last one printed.
func (sink *Sink) reject(ctx context.Context, suppressed uint64, reason string, vars ...any) (stillSuppressed uint64, printed bool) {
	sink.metrics.Rejected.Add(1)

	if sink.rejectLog != nil && !sink.rejectLog.Allow() {
		stillSuppressed = suppressed + 1
		return
	}

	message := fmt.Sprintf(reason, vars...)
	if suppressed > 0 {
		message += fmt.Sprintf(" (%d similar warnings suppressed)", suppressed)
	}
	logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Rejected %s\n", message)
	printed = true
	return
}

// Rejects a datagram that failed to decode. The debug hex dump shares the warning throttle.
func (sink *Sink) rejectUndecodable(ctx context.Context, suppressed uint64, datagram []byte, decodeErr error) (stillSuppressed uint64) {
	stillSuppressed, printed := sink.reject(ctx, suppressed, "%d byte datagram: %v", len(datagram), decodeErr)
	if printed {
		logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
			"Rejected datagram bytes: % X\n", datagram)
	}
	return
}
