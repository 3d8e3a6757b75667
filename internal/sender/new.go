package sender

import (
	"context"
	"fmt"
	"hilog/pkg/protocol"
	"net"
)

// Connects to the daemon input socket. Empty path uses protocol.SocketPath.
func Open(ctx context.Context, path string) (writer *Writer, err error) {
	if path == "" {
		path = protocol.SocketPath
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unixgram", path)
	if err != nil {
		err = fmt.Errorf("failed to connect to log socket '%s': %w", path, err)
		return
	}

	unixConn, ok := conn.(*net.UnixConn)
	if !ok {
		conn.Close()
		err = fmt.Errorf("unexpected connection type %T for '%s'", conn, path)
		return
	}

	writer = &Writer{
		Path: path,
		conn: unixConn,
	}
	return
}

// Closes the socket. Safe on nil writer.
func (writer *Writer) Close() (err error) {
	if writer == nil || writer.conn == nil {
		return
	}
	err = writer.conn.Close()
	return
}
