package sender

import (
	"hilog/pkg/protocol"
	"net"
)

// Connected client for the hilog input socket
type Writer struct {
	Path string
	conn *net.UnixConn
}

// Caller supplied part of a log record. Timing and identity fields are stamped on write.
type Entry struct {
	Type    protocol.LogType
	Level   protocol.LogLevel
	Domain  uint32
	Tag     string
	Message string
}

// Clock and identity values for one record
type Stamp struct {
	TvSec   uint32
	TvNsec  uint32
	MonoSec uint32
	Pid     uint32
	Tid     uint32
}
