package defs

// ServerRequestOpCode is an int describing the operation type in a server request
type ServerRequestOpCode int

const (
	// Start describes a request to start the stopped instance
	Start ServerRequestOpCode = iota
	// Stop describes a request to stop the running instance
	Stop
	// Status describes a request to get the current state of the instance
	Status
	// Address describes a request to get the address with which to connect to the server
	Address
	// Help describes a request to get the available commands and other help for the bot
	Help
)

// ServerRequestOp is a unit describing an operation in a server request
type ServerRequestOp struct {
	Code ServerRequestOpCode
	Args map[string]string
}
