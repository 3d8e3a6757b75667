// Handles process lifecycle for long running modes (signals, service manager notifications)
package lifecycle

import (
	"context"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// Sends READY=1 to systemd to indicate startup complete.
func NotifyReady(ctx context.Context) (err error) {
	err = notify(ctx, notifyReady)
	return
}

// Sends STOPPING=1 with the monotonic timestamp of the shutdown request.
func NotifyStopping(ctx context.Context) (err error) {
	var ts unix.Timespec
	err = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		return
	}

	usec := ts.Sec*1_000_000 + int64(ts.Nsec)/1_000

	err = notify(ctx, fmt.Sprintf("%s\nMONOTONIC_USEC=%d", notifyStopping, usec))
	return
}

// Sends custom status message to systemd for context.
func NotifyStatus(ctx context.Context, msg string) (err error) {
	err = notify(ctx, notifyStatus+msg)
	return
}

// Sends a raw sd_notify message.
// If NOTIFY_SOCKET is unset, this is a no-op and returns nil.
func notify(ctx context.Context, msg string) (err error) {
	sockPath := os.Getenv(EnvNameNotifySocket)
	if sockPath == "" {
		// Not running under systemd
		return
	}

	addr := &net.UnixAddr{
		Name: sockPath,
		Net:  "unixgram",
	}

	conn, err := net.DialUnix("unixgram", nil, addr)
	if err != nil {
		err = fmt.Errorf("notify dial failed: %v", err)
		return
	}
	defer conn.Close()

	_, err = conn.Write([]byte(msg))
	if err != nil {
		err = fmt.Errorf("notify write failed: %v", err)
		return
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "Notified service manager with message '%s'\n", msg)
	return
}
