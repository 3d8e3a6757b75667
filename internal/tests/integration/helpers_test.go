package integration

import (
	"context"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/pkg/protocol"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elastic/go-lumber/lj"
	lumberserver "github.com/elastic/go-lumber/server/v2"
)

// Socket path under a short temp dir (sun_path is limited to 108 bytes)
func shortSocketPath(t *testing.T) (path string) {
	t.Helper()

	dir, err := os.MkdirTemp("", "hilogit")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path = filepath.Join(dir, protocol.InputSocketName)
	return
}

// Context carrying a logger whose watcher output is discarded
func newTestContext(t *testing.T) (ctx context.Context, cancel context.CancelFunc) {
	ctx, cancel = context.WithCancel(context.Background())
	logger := logctx.NewLogger(global.NSTest, global.VerbosityStandard, ctx.Done())
	ctx = logctx.WithLogger(ctx, logger)
	t.Cleanup(cancel)
	return
}

// Starts an in-process beats server. Every batch is acknowledged and its events forwarded.
func startBeatsServer(t *testing.T) (endpoint string, events chan map[string]interface{}) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen for beats test server: %v", err)
	}

	server, err := lumberserver.NewWithListener(listener)
	if err != nil {
		listener.Close()
		t.Fatalf("failed to start beats test server: %v", err)
	}
	t.Cleanup(func() { server.Close() })

	events = make(chan map[string]interface{}, 16)
	go func() {
		for batch := range server.ReceiveChan() {
			forwardBatch(batch, events)
		}
	}()

	endpoint = listener.Addr().String()
	return
}

func forwardBatch(batch *lj.Batch, events chan map[string]interface{}) {
	for _, event := range batch.Events {
		fields, ok := event.(map[string]interface{})
		if ok {
			events <- fields
		}
	}
	batch.ACK()
}

func waitEvent(t *testing.T, events chan map[string]interface{}) (event map[string]interface{}) {
	t.Helper()

	select {
	case event = <-events:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for beats event")
	}
	return
}

// Walks nested event maps, returning nil when any level is missing
func lookupField(event map[string]interface{}, path ...string) (value interface{}) {
	current := event
	for i, key := range path {
		value = current[key]
		if i == len(path)-1 {
			return
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			value = nil
			return
		}
		current = next
	}
	return
}
