package main

import (
	"context"
	"flag"
	"fmt"
	"hilog/internal/cli"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"os"
	"runtime"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[1:])

	// Retrieve command and args
	command := args[1]
	args = args[2:]

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger(global.NSCLI, global.Verbosity, ctx.Done()) // New logger tied to global
	ctx = logctx.WithLogger(ctx, logger)                                   // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stderr)                                 // Records go to stdout, progress to stderr
	cli.SetExitHook(func() {
		cancel()
		logger.Wake()
		logger.Wait()
	})

	// Process commands
	switch command {
	case "send":
		cli.SendMode(ctx, command, args)
	case "encode":
		cli.EncodeMode(ctx, command, args)
	case "decode":
		cli.DecodeMode(ctx, command, args)
	case "listen":
		cli.ListenMode(ctx, command, args)
	case "replay":
		cli.ReplayMode(ctx, command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("%s %s\n", global.ProgBaseName, global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	default:
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	// Finish up any writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()
}
