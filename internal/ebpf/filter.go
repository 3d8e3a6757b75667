// Socket filters attached to the inspector socket
package ebpf

import (
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/asm"
	"golang.org/x/sys/unix"
)

// Builds a socket filter that keeps packets of at least minLen bytes and drops the rest
func FilterSpec(minLen uint32) (spec *ebpf.ProgramSpec) {
	spec = &ebpf.ProgramSpec{
		Name:    FilterProgName,
		Type:    ebpf.SocketFilter,
		License: FilterLicense,
		Instructions: asm.Instructions{
			// r0 = skb->len
			asm.LoadMem(asm.R0, asm.R1, skbLenOffset, asm.Word),
			asm.JGE.Imm(asm.R0, int32(minLen), "keep"),
			asm.Mov.Imm(asm.R0, dropPacket),
			asm.Return(),
			asm.Mov.Imm(asm.R0, keepPacket).WithSymbol("keep"),
			asm.Return(),
		},
	}
	return
}

// Loads the minimum length filter and attaches it to conn.
// Returns attached=false with nil error when the kernel or privileges do not allow socket filters.
func AttachMinLengthFilter(conn *net.UnixConn, minLen uint32) (attached bool, err error) {
	if runtime.GOOS != "linux" {
		return
	}

	prog, err := ebpf.NewProgram(FilterSpec(minLen))
	if err != nil {
		if errors.Is(err, ebpf.ErrNotSupported) || errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) || errors.Is(err, os.ErrPermission) {
			// No-op when not permitted
			err = nil
			return
		}
		err = fmt.Errorf("load socket filter: %v", err)
		return
	}
	// Kernel keeps its own reference once attached
	defer prog.Close()

	rawConn, err := conn.SyscallConn()
	if err != nil {
		err = fmt.Errorf("failed to access socket: %v", err)
		return
	}

	var sockErr error
	err = rawConn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_ATTACH_BPF, prog.FD())
	})
	if err != nil {
		err = fmt.Errorf("failed to access socket: %v", err)
		return
	}
	if sockErr != nil {
		if errors.Is(sockErr, unix.EPERM) {
			return
		}
		err = fmt.Errorf("setsockopt SO_ATTACH_BPF failed: %v", sockErr)
		return
	}

	attached = true
	return
}
