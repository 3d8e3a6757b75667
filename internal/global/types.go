package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// Inspector (listen mode) JSON configuration
type ListenConfig struct {
	SocketPath    string `json:"socketPath"`
	ReceiveBuffer int    `json:"receiveBuffer,omitempty"`
	Filter        *bool  `json:"filter,omitempty"`
	BeatsEndpoint string `json:"beatsEndpoint,omitempty"`
	CapturePath   string `json:"capturePath,omitempty"`
}
