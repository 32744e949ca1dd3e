package defs

// MessageCommand is configuration data required to parse a discord message into a server operation
type MessageCommand struct {
	Command         string
	FlagArgs        []string
	AllowUnnamedArg bool
	RequestCode     ServerRequestOpCode
	HelpText        string
}

// Commands is a list of all available Commands
var Commands = []MessageCommand{
	{
		Command:     "start",
		RequestCode: Start,
		HelpText:    "start : boot the instance hosting the server. it won't immediately be joinable - check with \"status\"",
	},
	{
		Command:     "stop",
		RequestCode: Stop,
		HelpText:    "stop : shut down the instance hosting the server",
	},
	{
		Command:     "status",
		RequestCode: Status,
		HelpText:    "status : report on the state of the instance (and the server, if it's up)",
	},
	{
		Command:     "address",
		RequestCode: Address,
		HelpText:    "address : get the address of the server (what you'll use to connect to it)",
	},
	{
		Command:     "help",
		RequestCode: Help,
		HelpText:    "help : list available Commands",
	},
}
