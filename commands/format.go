package commands

type Mode struct {
	parser *Parser
}

func NewMode(modes []string) Mode {
	return Mode{parser: NewParser(".mode", "Set the output mode").
		Choice("MODE", "", modes)}
}

func (cmd Mode) Parser() *Parser {
	return cmd.parser
}

func (cmd Mode) Execute(context Context, args Args) Signal {
	if !args.Has("MODE") {
		context.WriteString("current output mode: " + context.Mode())
		return Reset
	}
	if err := context.SetMode(args.String("MODE")); err != nil {
		context.WriteError("Error: " + err.Error())
	}
	return Reset
}

type Output struct {
	parser *Parser
}

func NewOutput() Output {
	return Output{parser: NewParser(".output", "Send output to FILE or stdout if FILE is omitted").
		Optional("FILE", "File to send output to")}
}

func (cmd Output) Parser() *Parser {
	return cmd.parser
}

// Execute switches the destination. A file that can't be opened is reported
// and output goes back to stdout.
func (cmd Output) Execute(context Context, args Args) Signal {
	if err := context.SetDest(args.String("FILE")); err != nil {
		context.WriteError("Error: " + err.Error())
	}
	return Reset
}

type Separator struct {
	parser *Parser
}

func NewSeparator() Separator {
	return Separator{parser: NewParser(".separator", "Change the column and row separators used by list mode").
		Required("COL", "column separator, \\t and \\n escapes allowed").
		Optional("ROW", "row separator, \\t and \\n escapes allowed")}
}

func (cmd Separator) Parser() *Parser {
	return cmd.parser
}

func (cmd Separator) Execute(context Context, args Args) Signal {
	_, rowsep := context.Separators()
	if args.Has("ROW") {
		rowsep = unescape(args.String("ROW"))
	}
	context.SetSeparators(unescape(args.String("COL")), rowsep)
	return Reset
}
