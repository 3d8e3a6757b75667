package cli

import (
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/pkg/protocol"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = "\nDaemon socket: " + protocol.SocketPath + "\n"
)

// Full standardized help menu (wraps option printer as well)
func PrintHelpMenu(out io.Writer, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	curCmdSet := rootCmd
	if command != "" && command != RootCLICommand {
		cmd, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(out, "Unknown command: %s\n", command)
			return
		}
		curCmdSet = cmd
	}

	usageParts := []string{os.Args[0]}
	if curCmdSet != rootCmd {
		usageParts = append(usageParts, curCmdSet.CommandName)
	} else if len(curCmdSet.ChildCommands) > 0 {
		usageParts = append(usageParts, "[subcommand]")
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}
	fmt.Fprintf(out, "Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if curCmdSet == rootCmd {
		fmt.Fprintln(out, curCmdSet.Description)
		fmt.Fprintln(out, curCmdSet.FullDescription)
		fmt.Fprintln(out)
	} else if curCmdSet.FullDescription != "" {
		fmt.Fprintln(out, "  Description:")
		fmt.Fprintf(out, "    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		subNames := make([]string, 0, len(curCmdSet.ChildCommands))
		maxLen := 0
		for name := range curCmdSet.ChildCommands {
			subNames = append(subNames, name)
			maxLen = max(maxLen, len(name))
		}
		sort.Strings(subNames)

		fmt.Fprintf(out, "%sSubcommands:\n", strings.Repeat(" ", baseIndentSpaces))
		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Fprintf(out, "%s%s%s - %s\n", cmdIndent, name, padding, curCmdSet.ChildCommands[name].Description)
		}
		fmt.Fprintln(out)
	}

	printFlagOptions(out, fs, baseIndentSpaces)

	if curCmdSet == rootCmd {
		fmt.Fprint(out, helpMenuTrailer)
	}
}

// Custom printer joining short/long forms that share usage text, e.g. "  -t, --tag  Tag text"
func printFlagOptions(out io.Writer, fs *flag.FlagSet, baseIndentSpaces int) {
	const argToUsageSpaces int = 2

	type optInfo struct {
		short      string
		long       string
		usage      string
		defaultVal string
	}

	byUsage := make(map[string]*optInfo)
	fs.VisitAll(func(arg *flag.Flag) {
		opt, seen := byUsage[arg.Usage]
		if !seen {
			opt = &optInfo{usage: arg.Usage, defaultVal: arg.DefValue}
			byUsage[arg.Usage] = opt
		}
		if len(arg.Name) == 1 {
			opt.short = "-" + arg.Name
		} else {
			opt.long = "--" + arg.Name
		}
	})
	if len(byUsage) == 0 {
		return
	}

	opts := make([]*optInfo, 0, len(byUsage))
	lefts := make(map[*optInfo]string, len(byUsage))
	maxLen := 0
	for _, opt := range byUsage {
		// Long-only options line up with the long form of paired ones
		left := "    " + opt.long
		if opt.short != "" && opt.long != "" {
			left = opt.short + ", " + opt.long
		} else if opt.short != "" {
			left = opt.short
		}
		lefts[opt] = left
		maxLen = max(maxLen, len(left))
		opts = append(opts, opt)
	}

	sort.Slice(opts, func(a, b int) bool {
		return strings.TrimLeft(lefts[opts[a]], " -") < strings.TrimLeft(lefts[opts[b]], " -")
	})

	indent := strings.Repeat(" ", baseIndentSpaces)
	fmt.Fprintf(out, "%sOptions:\n", indent)
	for _, opt := range opts {
		left := lefts[opt]
		padding := strings.Repeat(" ", maxLen-len(left)+argToUsageSpaces)

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}
		fmt.Fprintf(out, "%s%s%s%s\n", indent, left, padding, desc)
	}
}
