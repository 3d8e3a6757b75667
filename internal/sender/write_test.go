package sender

import (
	"context"
	"errors"
	"hilog/pkg/protocol"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Bound datagram socket standing in for the daemon
func newReceiver(t *testing.T) (conn *net.UnixConn, path string) {
	t.Helper()

	// Short directory: unix socket paths are limited to 108 bytes
	dir, err := os.MkdirTemp("", "hilog")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path = filepath.Join(dir, protocol.InputSocketName)
	conn, err = net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Fatalf("failed to bind receiver: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return
}

func readDatagram(t *testing.T, conn *net.UnixConn) []byte {
	t.Helper()
	buf := make([]byte, protocol.MaxRecordLen+1)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("failed to read datagram: %v", err)
	}
	return buf[:n]
}

func TestWriter_Write(t *testing.T) {
	receiver, path := newReceiver(t)

	writer, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer writer.Close()

	tests := []struct {
		name  string
		entry Entry
	}{
		{"Normal", Entry{Type: 0, Level: 4, Domain: 0xD003200, Tag: "testTag", Message: "hello"}},
		{"EmptyMessage", Entry{Type: 3, Level: 6, Tag: "core"}},
		{"LongMessage", Entry{Type: 0, Level: 3, Tag: "long", Message: strings.Repeat("x", protocol.MaxLogLen*2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := NewStamp()
			if err != nil {
				t.Fatalf("NewStamp: %v", err)
			}

			if err = writer.Write(context.Background(), tt.entry); err != nil {
				t.Fatalf("Write: %v", err)
			}

			record, err := protocol.DecodeRecord(readDatagram(t, receiver))
			if err != nil {
				t.Fatalf("DecodeRecord: %v", err)
			}

			if record.Type != tt.entry.Type || record.Level != tt.entry.Level {
				t.Errorf("type/level: expected %d/%d, got %d/%d", tt.entry.Type, tt.entry.Level, record.Type, record.Level)
			}
			if record.Tag != tt.entry.Tag {
				t.Errorf("tag: expected %q, got %q", tt.entry.Tag, record.Tag)
			}
			if record.Domain != tt.entry.Domain {
				t.Errorf("domain: expected %d, got %d", tt.entry.Domain, record.Domain)
			}
			expectedMsg := tt.entry.Message
			if len(expectedMsg) > protocol.MaxLogLen-1 {
				expectedMsg = expectedMsg[:protocol.MaxLogLen-1]
			}
			if record.Message != expectedMsg {
				t.Errorf("message: expected %d bytes, got %d", len(expectedMsg), len(record.Message))
			}
			if record.Pid != uint32(os.Getpid()) {
				t.Errorf("pid: expected %d, got %d", os.Getpid(), record.Pid)
			}
			if record.TvSec < before.TvSec || record.MonoSec < before.MonoSec {
				t.Errorf("clock went backwards: before %+v, record %d/%d", before, record.TvSec, record.MonoSec)
			}
		})
	}
}

func TestWriter_WriteRejectsLongTag(t *testing.T) {
	receiver, path := newReceiver(t)

	writer, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer writer.Close()

	err = writer.Write(context.Background(), Entry{Tag: strings.Repeat("t", protocol.MaxTagLen), Message: "m"})
	if !errors.Is(err, protocol.ErrInvalidTagLen) {
		t.Fatalf("expected ErrInvalidTagLen, got %v", err)
	}

	// Nothing may reach the socket
	receiver.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	buf := make([]byte, 64)
	if n, err := receiver.Read(buf); err == nil {
		t.Fatalf("unexpected datagram of %d bytes", n)
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	_, path := newReceiver(t)

	writer, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = writer.Write(ctx, Entry{Tag: "t", Message: "m"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpen_MissingSocket(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(context.Background(), filepath.Join(dir, "absent"))
	if err == nil {
		t.Fatal("expected error dialing missing socket")
	}
}

func TestWriter_CloseNil(t *testing.T) {
	var writer *Writer
	if err := writer.Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStampRecord(t *testing.T) {
	stamp := Stamp{TvSec: 1, TvNsec: 2, MonoSec: 3, Pid: 4, Tid: 5}
	record := stamp.Record(Entry{Type: 1, Level: 7, Domain: 9, Tag: "t", Message: "m"})

	expected := protocol.Record{Type: 1, Level: 7, Tag: "t", Message: "m", TvSec: 1, TvNsec: 2, MonoSec: 3, Pid: 4, Tid: 5, Domain: 9}
	if record != expected {
		t.Fatalf("expected %+v, got %+v", expected, record)
	}
}
