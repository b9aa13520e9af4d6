package commands

type Timer struct {
	parser *Parser
}

func NewTimer() Timer {
	return Timer{parser: NewParser(".timer", "Turn the statement timer on or off").
		Choice("SWITCH", "", []string{"on", "off"})}
}

func (cmd Timer) Parser() *Parser {
	return cmd.parser
}

func (cmd Timer) Execute(context Context, args Args) Signal {
	switch args.String("SWITCH") {
	case "on":
		context.SetTimer(true)
	case "off":
		context.SetTimer(false)
	default:
		if context.Timer() {
			context.WriteString("Timer is on")
		} else {
			context.WriteString("Timer is off")
		}
	}
	return Reset
}
