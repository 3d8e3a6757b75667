package cli

import (
	"fmt"
	"hilog/pkg/protocol"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"
)

// Prints records and headers, aligned blocks for terminals and one line each otherwise
type renderer struct {
	out    io.Writer
	pretty bool
}

func newRenderer(out *os.File) (r renderer) {
	r = renderer{
		out:    out,
		pretty: term.IsTerminal(int(out.Fd())),
	}
	return
}

func (r renderer) Record(record protocol.Record) {
	ts := time.Unix(int64(record.TvSec), int64(record.TvNsec)).UTC().Format("01-02 15:04:05.000")

	if !r.pretty {
		fmt.Fprintf(r.out, "%s %5d %5d %s %s %05X/%s: %s\n",
			ts, record.Pid, record.Tid, levelLetter(record.Level), LogTypeName(record.Type),
			record.Domain, record.Tag, strings.TrimRight(record.Message, "\n"))
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Time:\t%s (mono %ds)\n", ts, record.MonoSec)
	fmt.Fprintf(tw, "Process:\tpid %d tid %d\n", record.Pid, record.Tid)
	fmt.Fprintf(tw, "Type:\t%s\n", LogTypeName(record.Type))
	fmt.Fprintf(tw, "Level:\t%s\n", LogLevelName(record.Level))
	fmt.Fprintf(tw, "Domain:\t0x%X\n", record.Domain)
	fmt.Fprintf(tw, "Tag:\t%s\n", record.Tag)
	fmt.Fprintf(tw, "Message:\t%s\n", strings.TrimRight(record.Message, "\n"))
	tw.Flush()
	fmt.Fprintln(r.out)
}

func (r renderer) Header(header protocol.Header) {
	version, logType, level, tagLen := header.Meta.Unpack()

	if !r.pretty {
		fmt.Fprintf(r.out, "len=%d version=%d type=%d level=%d taglen=%d tv_sec=%d tv_nsec=%d mono_sec=%d pid=%d tid=%d domain=0x%X\n",
			header.Len, version, logType, level, tagLen, header.TvSec, header.TvNsec, header.MonoSec, header.Pid, header.Tid, header.Domain)
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Length:\t%d\n", header.Len)
	fmt.Fprintf(tw, "Meta:\t0x%04X (version %d, type %s, level %s, tag length %d)\n",
		header.Meta.Uint16(), version, LogTypeName(header.Meta.Type()), LogLevelName(header.Meta.Level()), tagLen)
	fmt.Fprintf(tw, "Realtime:\t%d.%09d\n", header.TvSec, header.TvNsec)
	fmt.Fprintf(tw, "Monotonic:\t%d\n", header.MonoSec)
	fmt.Fprintf(tw, "Process:\tpid %d tid %d\n", header.Pid, header.Tid)
	fmt.Fprintf(tw, "Domain:\t0x%X\n", header.Domain)
	tw.Flush()
}

// Single letter level marker in the style of hilog's own output
func levelLetter(level protocol.LogLevel) (letter string) {
	name := LogLevelName(level)
	letter = name[:1]
	return
}
