package cli

import (
	"context"
	"flag"
	"fmt"
	"hilog/internal/externalio/beats"
	"hilog/internal/externalio/capture"
	"hilog/internal/global"
	"hilog/internal/lifecycle"
	"hilog/internal/logctx"
	"hilog/internal/sink"
	"hilog/pkg/protocol"
	"os"
)

func ListenMode(ctx context.Context, commandname string, args []string) {
	var opts listenFlags
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	setListenFlags(commandFlags, &opts)

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	cfg, err := loadListenConfig(opts.configPath, flagSet(commandFlags, "c", "config"))
	if err != nil {
		exitError(err)
	}
	opts.apply(commandFlags, &cfg)
	setDefaults(&cfg)

	err = runListen(ctx, cfg, newRenderer(os.Stdout))
	if err != nil {
		exitError(err)
	}
}

// Runs the inspector until a shutdown signal arrives
func runListen(ctx context.Context, cfg global.ListenConfig, render renderer) (err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSListen)

	sigCtx, release := lifecycle.SignalContext(ctx)
	defer release()

	output, err := beats.NewOutput(cfg.BeatsEndpoint)
	if err != nil {
		return
	}
	defer func() {
		if shutdownErr := output.Shutdown(); shutdownErr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Beats shutdown failed: %v\n", shutdownErr)
		}
	}()

	captureFile, err := capture.NewWriter(cfg.CapturePath)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := captureFile.Close(); closeErr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "%v\n", closeErr)
			return
		}
		if captureFile != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
				"Saved %d records to '%s'\n", captureFile.Count(), captureFile.Path)
		}
	}()

	inspector, err := sink.Listen(sigCtx, newSinkConfig(cfg))
	if err != nil {
		return
	}
	defer inspector.Close()

	err = lifecycle.NotifyReady(ctx)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify ready failed: %v\n", err)
		err = nil
	}

	beatsCtx := logctx.AppendCtxTag(ctx, global.NSoBeats)
	handler := func(_ context.Context, record protocol.Record) (err error) {
		render.Record(record)

		err = captureFile.Write(ctx, record)
		if err != nil {
			return
		}

		_, err = output.Write(beatsCtx, record)
		if err != nil {
			err = fmt.Errorf("beats forward failed: %w", err)
			return
		}
		return
	}

	err = inspector.Run(sigCtx, handler)

	stats := inspector.Stats()
	status := fmt.Sprintf("received %d, decoded %d, rejected %d, handler errors %d",
		stats.Received, stats.Decoded, stats.Rejected, stats.HandlerErrors)
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Listener stopped: %s\n", status)

	notifyErr := lifecycle.NotifyStatus(ctx, status)
	if notifyErr != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify status failed: %v\n", notifyErr)
	}
	return
}
