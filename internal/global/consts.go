package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgBaseName string = "hilog"
	ProgVersion  string = "v0.3.1"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific

	DefaultConfigPath    string        = "/etc/hilog-inspect.json"
	DefaultReceiveBuffer int           = 4 * 1024 * 1024
	DefaultBeatsTimeout  time.Duration = 3 * time.Second

	// Share of free system memory the inspector socket buffer may claim (1/N)
	ReceiveBufferMemoryDivisor uint64 = 64

	// Namespacing Name Components
	NSTest   string = "Test"
	NSCLI    string = "CLI"
	NSSend   string = "Sender"
	NSListen string = "Listener"
	NSFilter string = "Filter"
	NSoBeats string = "Beats"
)
