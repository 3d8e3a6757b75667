package cli

import "hilog/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "HiLog Client Tool",
		FullDescription: "  Builds, sends and inspects hilog records on the local log socket",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	root.ChildCommands["send"] = &global.CommandSet{
		CommandName:     "send",
		UsageOption:     "[message...]",
		Description:     "Send Log Records",
		FullDescription: "Sends one record per argument list (or per stdin line) to the hilog input socket",
	}

	root.ChildCommands["encode"] = &global.CommandSet{
		CommandName:     "encode",
		UsageOption:     "[message...]",
		Description:     "Encode Record to Hex",
		FullDescription: "Prints the wire bytes of a record (or only its header) as hex without sending it",
	}

	root.ChildCommands["decode"] = &global.CommandSet{
		CommandName:     "decode",
		UsageOption:     "[hex]",
		Description:     "Decode Hex Record",
		FullDescription: "Parses a hex encoded header or full record from the argument or stdin",
	}

	root.ChildCommands["listen"] = &global.CommandSet{
		CommandName:     "listen",
		Description:     "Inspect Log Socket",
		FullDescription: "Binds a log socket, decodes every received record and prints, forwards or captures it",
	}

	root.ChildCommands["replay"] = &global.CommandSet{
		CommandName:     "replay",
		UsageOption:     "<capture file>",
		Description:     "Replay Capture File",
		FullDescription: "Prints the records saved by listen --capture, optionally resending them to the log socket",
	}

	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
