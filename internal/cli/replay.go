package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hilog/internal/externalio/capture"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/internal/sender"
	"io"
	"os"
)

type replayFlags struct {
	socketPath string
	resend     bool
	quiet      bool
}

func ReplayMode(ctx context.Context, commandname string, args []string) {
	var opts replayFlags
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetSocket(commandFlags, &opts.socketPath)
	commandFlags.BoolVar(&opts.resend, "S", false, "Resend every record to the log socket with its original stamp")
	commandFlags.BoolVar(&opts.resend, "send", false, "Resend every record to the log socket with its original stamp")
	commandFlags.BoolVar(&opts.quiet, "q", false, "Do not print records")
	commandFlags.BoolVar(&opts.quiet, "quiet", false, "Do not print records")

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	if len(args) < 1 {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	if commandFlags.NArg() != 1 {
		exitError(fmt.Errorf("expected exactly one capture file, got %d arguments", commandFlags.NArg()))
	}

	err := runReplay(ctx, newRenderer(os.Stdout), opts, commandFlags.Arg(0))
	if err != nil {
		exitError(err)
	}
}

// Walks a capture file, rendering and optionally resending each record
func runReplay(ctx context.Context, render renderer, opts replayFlags, path string) (err error) {
	reader, err := capture.Open(path)
	if err != nil {
		return
	}
	defer reader.Close()

	var writer *sender.Writer
	if opts.resend {
		writer, err = sender.Open(ctx, opts.socketPath)
		if err != nil {
			return
		}
		defer writer.Close()
	}

	var replayed int
	for {
		record, nextErr := reader.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			err = fmt.Errorf("after %d records: %w", replayed, nextErr)
			return
		}

		if !opts.quiet {
			render.Record(record)
		}
		if writer != nil {
			err = writer.WriteRecord(ctx, record)
			if err != nil {
				err = fmt.Errorf("failed to resend record %d: %w", replayed+1, err)
				return
			}
		}
		replayed++
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "Replayed %d records from '%s'\n", replayed, path)
	return
}
