package cli

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestPrintHelpMenu(t *testing.T) {
	rootCmd := DefineOptions()

	tests := []struct {
		name     string
		command  string
		setFlags func(fs *flag.FlagSet)
		contains []string
		excludes []string
	}{
		{
			name:     "root",
			command:  RootCLICommand,
			setFlags: SetGlobalArguments,
			contains: []string{"Subcommands:", "decode", "encode", "listen", "replay", "send", "version", "-v, --verbosity", "Daemon socket:"},
		},
		{
			name:    "send",
			command: "send",
			setFlags: func(fs *flag.FlagSet) {
				var socketPath string
				var opts recordFlags
				SetSocket(fs, &socketPath)
				setRecordFlags(fs, &opts)
			},
			contains: []string{"send [message...]", "-t, --tag", "-T, --type", "[default: app]", "-s, --socket"},
			excludes: []string{"Subcommands:", "Daemon socket:"},
		},
		{
			name:    "listen long only options",
			command: "listen",
			setFlags: func(fs *flag.FlagSet) {
				var opts listenFlags
				setListenFlags(fs, &opts)
			},
			contains: []string{"--no-filter", "--rcvbuf", "-c, --config"},
		},
		{
			name:     "unknown",
			command:  "bogus",
			setFlags: func(fs *flag.FlagSet) {},
			contains: []string{"Unknown command: bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.command, flag.ContinueOnError)
			tt.setFlags(fs)

			var out bytes.Buffer
			PrintHelpMenu(&out, fs, tt.command, rootCmd)

			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("expected help to contain %q:\n%s", want, out.String())
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out.String(), unwanted) {
					t.Errorf("expected help to not contain %q:\n%s", unwanted, out.String())
				}
			}
		})
	}
}
