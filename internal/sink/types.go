package sink

import (
	"context"
	"hilog/pkg/protocol"
	"net"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

type Config struct {
	Path          string // socket path to bind, protocol.SocketPath when empty
	ReceiveBuffer int    // requested SO_RCVBUF bytes, capped by free memory
	Filter        bool   // attach the eBPF minimum length filter
}

// Called for every decoded record. Errors are logged and counted, never fatal.
type Handler func(ctx context.Context, record protocol.Record) (err error)

// Local stand-in for the daemon end of the hilog input socket
type Sink struct {
	Path           string
	ReceiveBuffer  int
	FilterAttached bool
	conn           *net.UnixConn
	closeOnce      sync.Once
	metrics        MetricStorage
	rejectLog      *rate.Limiter // throttles per-datagram rejection warnings
}

type MetricStorage struct {
	Received      atomic.Uint64
	Decoded       atomic.Uint64
	Rejected      atomic.Uint64
	HandlerErrors atomic.Uint64
}

// Point in time copy of the counters
type Stats struct {
	Received      uint64
	Decoded       uint64
	Rejected      uint64
	HandlerErrors uint64
}
