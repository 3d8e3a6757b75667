package cli

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/internal/sender"
	"hilog/pkg/protocol"
	"io"
	"os"
	"strings"
)

// Encode mode flags on top of the record fields
type encodeFlags struct {
	record     recordFlags
	headerOnly bool
	zeroStamp  bool
}

func EncodeMode(ctx context.Context, commandname string, args []string) {
	var opts encodeFlags
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	setRecordFlags(commandFlags, &opts.record)
	commandFlags.BoolVar(&opts.headerOnly, "H", false, "Print only the fixed header bytes")
	commandFlags.BoolVar(&opts.headerOnly, "header-only", false, "Print only the fixed header bytes")
	commandFlags.BoolVar(&opts.zeroStamp, "z", false, "Leave time, pid and tid fields zero (reproducible output)")
	commandFlags.BoolVar(&opts.zeroStamp, "zero-stamp", false, "Leave time, pid and tid fields zero (reproducible output)")

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	err := runEncode(os.Stdout, opts, commandFlags.Args())
	if err != nil {
		exitError(err)
	}
}

// Writes the hex encoding of the record (or header) followed by a newline
func runEncode(out io.Writer, opts encodeFlags, messageArgs []string) (err error) {
	logType, level, domain, err := opts.record.parse()
	if err != nil {
		return
	}

	entry := sender.Entry{
		Type:    logType,
		Level:   level,
		Domain:  domain,
		Tag:     opts.record.tag,
		Message: strings.Join(messageArgs, " "),
	}

	var stamp sender.Stamp
	if !opts.zeroStamp {
		stamp, err = sender.NewStamp()
		if err != nil {
			return
		}
	}
	record := stamp.Record(entry)

	var encoded []byte
	if opts.headerOnly {
		var header protocol.Header
		header, err = record.Header()
		if err != nil {
			return
		}
		encoded, err = header.MarshalBinary()
	} else {
		encoded, err = record.Encode()
	}
	if err != nil {
		err = fmt.Errorf("failed to encode record: %w", err)
		return
	}

	_, err = fmt.Fprintln(out, hex.EncodeToString(encoded))
	return
}
