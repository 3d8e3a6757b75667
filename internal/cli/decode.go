package cli

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/logctx"
	"hilog/pkg/protocol"
	"io"
	"os"
	"strings"
	"unicode"
)

func DecodeMode(ctx context.Context, commandname string, args []string) {
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])
	logctx.SetLogLevel(ctx, global.Verbosity)

	var input string
	if commandFlags.NArg() > 0 {
		input = strings.Join(commandFlags.Args(), "")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitError(fmt.Errorf("failed reading input: %v", err))
		}
		input = string(raw)
	}

	err := runDecode(newRenderer(os.Stdout), input)
	if err != nil {
		exitError(err)
	}
}

// Decodes hex text (whitespace ignored). Exactly HeaderLen bytes is a lone header, anything else a full record.
func runDecode(render renderer, input string) (err error) {
	raw, err := parseHex(input)
	if err != nil {
		return
	}

	if len(raw) == protocol.HeaderLen {
		var header protocol.Header
		header, err = protocol.DecodeHeader(raw)
		if err != nil {
			return
		}
		render.Header(header)
		return
	}

	record, err := protocol.DecodeRecord(raw)
	if err != nil {
		return
	}
	render.Record(record)
	return
}

func parseHex(input string) (raw []byte, err error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")

	if cleaned == "" {
		err = fmt.Errorf("no hex input")
		return
	}

	raw, err = hex.DecodeString(cleaned)
	if err != nil {
		err = fmt.Errorf("invalid hex input: %v", err)
		return
	}
	return
}
