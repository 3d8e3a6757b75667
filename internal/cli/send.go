package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/internal/sender"
	"io"
	"os"
	"strings"
)

func SendMode(ctx context.Context, commandname string, args []string) {
	var socketPath string
	var recOpts recordFlags
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetSocket(commandFlags, &socketPath)
	setRecordFlags(commandFlags, &recOpts)

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	err := runSend(ctx, socketPath, recOpts, commandFlags.Args(), os.Stdin)
	if err != nil {
		exitError(err)
	}
}

// Sends the joined message arguments as one record, or one record per input line when there are none
func runSend(ctx context.Context, socketPath string, recOpts recordFlags, messageArgs []string, input io.Reader) (err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSSend)

	logType, level, domain, err := recOpts.parse()
	if err != nil {
		return
	}
	entry := sender.Entry{
		Type:   logType,
		Level:  level,
		Domain: domain,
		Tag:    recOpts.tag,
	}

	writer, err := sender.Open(ctx, socketPath)
	if err != nil {
		return
	}
	defer writer.Close()

	if len(messageArgs) > 0 {
		entry.Message = strings.Join(messageArgs, " ")
		err = writer.Write(ctx, entry)
		return
	}

	var sent int
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		entry.Message = scanner.Text()
		err = writer.Write(ctx, entry)
		if err != nil {
			err = fmt.Errorf("failed after %d records: %w", sent, err)
			return
		}
		sent++
	}
	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("failed reading input: %v", err)
		return
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "Sent %d records to '%s'\n", sent, writer.Path)
	return
}
