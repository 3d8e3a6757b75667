package sink

import (
	"context"
	"fmt"
	"hilog/internal/ebpf"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/pkg/protocol"
	"net"
	"os"
	"time"

	"github.com/pbnjay/memory"
	"golang.org/x/time/rate"
)

const (
	// Rejection warnings allowed per interval before they are summarized
	rejectLogInterval time.Duration = time.Second
	rejectLogBurst    int           = 5
)

// Binds the inspector socket, replacing a stale socket file left at the path
func Listen(ctx context.Context, cfg Config) (sink *Sink, err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSListen)

	path := cfg.Path
	if path == "" {
		path = protocol.SocketPath
	}

	err = removeStaleSocket(path)
	if err != nil {
		return
	}

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		err = fmt.Errorf("failed to bind '%s': %w", path, err)
		return
	}

	bufSize := receiveBufferSize(cfg.ReceiveBuffer, memory.FreeMemory())
	err = conn.SetReadBuffer(bufSize)
	if err != nil {
		conn.Close()
		os.Remove(path)
		err = fmt.Errorf("failed to set receive buffer to %d bytes: %v", bufSize, err)
		return
	}

	sink = &Sink{
		Path:          path,
		ReceiveBuffer: bufSize,
		conn:          conn,
		rejectLog:     rate.NewLimiter(rate.Every(rejectLogInterval), rejectLogBurst),
	}

	if cfg.Filter {
		filterCtx := logctx.AppendCtxTag(ctx, global.NSFilter)
		sink.FilterAttached, err = ebpf.AttachMinLengthFilter(conn, uint32(protocol.MinRecordLen))
		if err != nil {
			// Filtering is an optimization, decoding still rejects short records
			logctx.LogEvent(filterCtx, global.VerbosityStandard, global.WarnLog,
				"Socket filter unavailable: %v\n", err)
			err = nil
		} else if !sink.FilterAttached {
			logctx.LogEvent(filterCtx, global.VerbosityProgress, global.InfoLog,
				"Socket filter not permitted, continuing without it\n")
		}
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"Listening on '%s' (receive buffer %d bytes, filter %t)\n", path, bufSize, sink.FilterAttached)
	return
}

// Removes an existing socket file. Refuses to remove anything that is not a socket.
func removeStaleSocket(path string) (err error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("failed to stat '%s': %v", path, err)
		return
	}

	if info.Mode().Type() != os.ModeSocket {
		err = fmt.Errorf("refusing to replace '%s': not a socket (mode %s)", path, info.Mode())
		return
	}

	err = os.Remove(path)
	if err != nil {
		err = fmt.Errorf("failed to remove stale socket '%s': %v", path, err)
		return
	}
	return
}

// Requested size (or default), capped at a share of free memory, never below one full record
func receiveBufferSize(requested int, freeMemory uint64) (size int) {
	size = requested
	if size <= 0 {
		size = global.DefaultReceiveBuffer
	}

	if freeMemory > 0 {
		limit := freeMemory / global.ReceiveBufferMemoryDivisor
		if uint64(size) > limit {
			size = int(limit)
		}
	}

	if size < protocol.MaxRecordLen {
		size = protocol.MaxRecordLen
	}
	return
}

// Closes the socket and unlinks its path. Safe to call more than once.
func (sink *Sink) Close() (err error) {
	if sink == nil {
		return
	}
	sink.closeOnce.Do(func() {
		err = sink.conn.Close()
		removeErr := os.Remove(sink.Path)
		if err == nil && removeErr != nil && !os.IsNotExist(removeErr) {
			err = removeErr
		}
	})
	return
}

func (sink *Sink) Stats() (stats Stats) {
	stats = Stats{
		Received:      sink.metrics.Received.Load(),
		Decoded:       sink.metrics.Decoded.Load(),
		Rejected:      sink.metrics.Rejected.Load(),
		HandlerErrors: sink.metrics.HandlerErrors.Load(),
	}
	return
}
