package ebpf

import (
	"hilog/pkg/protocol"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/asm"
)

func TestFilterSpec(t *testing.T) {
	spec := FilterSpec(uint32(protocol.HeaderLen))

	if spec.Type != ebpf.SocketFilter {
		t.Fatalf("expected socket filter program, got %v", spec.Type)
	}
	if spec.Name != FilterProgName {
		t.Errorf("expected name %q, got %q", FilterProgName, spec.Name)
	}
	if len(spec.Instructions) != 6 {
		t.Fatalf("expected 6 instructions, got %d", len(spec.Instructions))
	}

	cmp := spec.Instructions[1]
	if cmp.OpCode.JumpOp() != asm.JGE {
		t.Errorf("expected JGE comparison, got %v", cmp.OpCode)
	}
	if cmp.Constant != int64(protocol.HeaderLen) {
		t.Errorf("expected comparison against %d, got %d", protocol.HeaderLen, cmp.Constant)
	}
	if spec.Instructions[4].Symbol() != "keep" {
		t.Errorf("jump target symbol missing")
	}
}

func TestAttachMinLengthFilter(t *testing.T) {
	dir, err := os.MkdirTemp("", "hilogbpf")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer conn.Close()

	attached, err := AttachMinLengthFilter(conn, uint32(protocol.HeaderLen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !attached {
		t.Skip("socket filters not permitted in this environment")
	}

	client, err := net.Dial("unixgram", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	client.Write([]byte("short"))
	client.Write(make([]byte, protocol.HeaderLen))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 128)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != protocol.HeaderLen {
		t.Fatalf("expected short datagram to be dropped, first read returned %d bytes", n)
	}
}
