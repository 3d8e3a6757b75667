package lifecycle

import (
	"context"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"os"
	"os/signal"
	"syscall"
)

// Returns a context cancelled on the first SIGINT, SIGTERM or SIGQUIT.
// Release stops signal delivery; call it once the caller no longer needs the context.
func SignalContext(ctx context.Context) (sigCtx context.Context, release context.CancelFunc) {
	sigCtx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case sig := <-sigChan:
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", sig)

			err := NotifyStopping(ctx)
			if err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify stopping failed: %v\n", err)
			}
			cancel()
		case <-sigCtx.Done():
		}
	}()

	release = func() {
		signal.Stop(sigChan)
		cancel()
	}
	return
}
