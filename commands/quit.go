package commands

type Quit struct {
	parser *Parser
}

// name is either .quit or .exit
func NewQuit(name string) Quit {
	return Quit{parser: NewParser(name, "Exit the program")}
}

func (cmd Quit) Parser() *Parser {
	return cmd.parser
}

func (cmd Quit) Execute(context Context, args Args) Signal {
	return Terminate
}
