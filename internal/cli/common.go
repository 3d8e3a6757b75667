package cli

import (
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/pkg/protocol"
	"io"
	"os"
	"strconv"
)

// Raw record field flags shared by send and encode
type recordFlags struct {
	tag     string
	logType string
	level   string
	domain  string
}

func SetGlobalArguments(fs *flag.FlagSet) {
	fs.IntVar(&global.Verbosity, "v", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
	fs.IntVar(&global.Verbosity, "verbosity", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
}

func SetSocket(fs *flag.FlagSet, socketPath *string) {
	fs.StringVar(socketPath, "s", protocol.SocketPath, "Path to the hilog input socket")
	fs.StringVar(socketPath, "socket", protocol.SocketPath, "Path to the hilog input socket")
}

func setRecordFlags(fs *flag.FlagSet, opts *recordFlags) {
	fs.StringVar(&opts.tag, "t", "", "Record tag (at most 31 bytes)")
	fs.StringVar(&opts.tag, "tag", "", "Record tag (at most 31 bytes)")
	fs.StringVar(&opts.logType, "T", "app", "Log type name or code <app|init|core|kmsg|0...15>")
	fs.StringVar(&opts.logType, "type", "app", "Log type name or code <app|init|core|kmsg|0...15>")
	fs.StringVar(&opts.level, "l", "info", "Log level name or code <debug|info|warn|error|fatal|0...7>")
	fs.StringVar(&opts.level, "level", "info", "Log level name or code <debug|info|warn|error|fatal|0...7>")
	fs.StringVar(&opts.domain, "d", "0", "Log domain id (decimal or 0x hex)")
	fs.StringVar(&opts.domain, "domain", "0", "Log domain id (decimal or 0x hex)")
}

// Validates flag text into wire values
func (opts recordFlags) parse() (logType protocol.LogType, level protocol.LogLevel, domain uint32, err error) {
	logType, err = ParseLogType(opts.logType)
	if err != nil {
		return
	}
	level, err = ParseLogLevel(opts.level)
	if err != nil {
		return
	}
	domain, err = ParseDomain(opts.domain)
	return
}

func ParseDomain(raw string) (domain uint32, err error) {
	value, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		err = fmt.Errorf("invalid domain '%s': %v", raw, err)
		return
	}
	domain = uint32(value)
	return
}

// Runs before an error exit so queued log events still reach their output
var exitHook func()

// Registers the global logger shutdown for error exits
func SetExitHook(hook func()) {
	exitHook = hook
}

// Prints error and exits
func exitError(err error) {
	reportError(os.Stderr, err)
	os.Exit(1)
}

// Flushes pending log output, then prints the error
func reportError(out io.Writer, err error) {
	if exitHook != nil {
		exitHook()
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
