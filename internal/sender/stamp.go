package sender

import (
	"fmt"
	"hilog/pkg/protocol"

	"golang.org/x/sys/unix"
)

// Reads realtime and monotonic clocks plus the calling process/thread ids.
// The thread id is the OS thread currently running the goroutine.
func NewStamp() (stamp Stamp, err error) {
	var realtime, monotonic unix.Timespec

	err = unix.ClockGettime(unix.CLOCK_REALTIME, &realtime)
	if err != nil {
		err = fmt.Errorf("failed to read realtime clock: %v", err)
		return
	}
	err = unix.ClockGettime(unix.CLOCK_MONOTONIC, &monotonic)
	if err != nil {
		err = fmt.Errorf("failed to read monotonic clock: %v", err)
		return
	}

	stamp = Stamp{
		TvSec:   uint32(realtime.Sec),
		TvNsec:  uint32(realtime.Nsec),
		MonoSec: uint32(monotonic.Sec),
		Pid:     uint32(unix.Getpid()),
		Tid:     uint32(unix.Gettid()),
	}
	return
}

// Combines entry and stamp into a wire record
func (stamp Stamp) Record(entry Entry) (record protocol.Record) {
	record = protocol.Record{
		Type:    entry.Type,
		Level:   entry.Level,
		Tag:     entry.Tag,
		Message: entry.Message,
		TvSec:   stamp.TvSec,
		TvNsec:  stamp.TvNsec,
		MonoSec: stamp.MonoSec,
		Pid:     stamp.Pid,
		Tid:     stamp.Tid,
		Domain:  entry.Domain,
	}
	return
}
