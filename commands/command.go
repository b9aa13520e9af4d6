package commands

// Signal tells the top-level loop what to do once a command is done.
type Signal int

const (
	// back to the prompt, the normal outcome
	Reset Signal = iota
	// stop the shell
	Terminate
)

type Command interface {
	Parser() *Parser
	Execute(context Context, args Args) Signal
}
