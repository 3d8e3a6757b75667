package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"hilog/internal/global"
	"hilog/internal/sink"
	"hilog/pkg/protocol"
	"os"
)

// Raw listen mode flags, merged over the JSON config
type listenFlags struct {
	configPath    string
	socketPath    string
	receiveBuffer int
	noFilter      bool
	beatsEndpoint string
	capturePath   string
}

func setListenFlags(fs *flag.FlagSet, opts *listenFlags) {
	fs.StringVar(&opts.configPath, "c", global.DefaultConfigPath, "Path to the JSON configuration file (optional)")
	fs.StringVar(&opts.configPath, "config", global.DefaultConfigPath, "Path to the JSON configuration file (optional)")
	SetSocket(fs, &opts.socketPath)
	fs.IntVar(&opts.receiveBuffer, "rcvbuf", 0, "Socket receive buffer in bytes (capped by free memory)")
	fs.BoolVar(&opts.noFilter, "no-filter", false, "Do not attach the kernel minimum length filter")
	fs.StringVar(&opts.beatsEndpoint, "beats", "", "Forward records to a beats (lumberjack) server at host:port")
	fs.StringVar(&opts.capturePath, "capture", "", "Save received records to a zstd compressed capture file")
}

// Loads JSON config from file. A missing file is only an error when the path was given explicitly.
func loadListenConfig(path string, explicit bool) (cfg global.ListenConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
			return
		}
		err = fmt.Errorf("failed to read config file: %v", err)
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}
	return
}

// Overrides config values with every flag the user actually set
func (opts listenFlags) apply(fs *flag.FlagSet, cfg *global.ListenConfig) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s", "socket":
			cfg.SocketPath = opts.socketPath
		case "rcvbuf":
			cfg.ReceiveBuffer = opts.receiveBuffer
		case "no-filter":
			filter := !opts.noFilter
			cfg.Filter = &filter
		case "beats":
			cfg.BeatsEndpoint = opts.beatsEndpoint
		case "capture":
			cfg.CapturePath = opts.capturePath
		}
	})
}

// Sets defaults for any missing values
func setDefaults(cfg *global.ListenConfig) {
	if cfg.SocketPath == "" {
		cfg.SocketPath = protocol.SocketPath
	}
	if cfg.ReceiveBuffer <= 0 {
		cfg.ReceiveBuffer = global.DefaultReceiveBuffer
	}
	if cfg.Filter == nil {
		filter := true
		cfg.Filter = &filter
	}
}

// Parses JSON config into sink config
func newSinkConfig(cfg global.ListenConfig) (config sink.Config) {
	config = sink.Config{
		Path:          cfg.SocketPath,
		ReceiveBuffer: cfg.ReceiveBuffer,
		Filter:        cfg.Filter != nil && *cfg.Filter,
	}
	return
}

// Reports whether the named flag was set on the command line
func flagSet(fs *flag.FlagSet, names ...string) (set bool) {
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				set = true
			}
		}
	})
	return
}
