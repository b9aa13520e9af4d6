package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type Show struct {
	parser *Parser
}

func NewShow() Show {
	return Show{parser: NewParser(".show", "Show the current values for various settings")}
}

func (cmd Show) Parser() *Parser {
	return cmd.parser
}

func (cmd Show) Execute(context Context, args Args) Signal {
	colsep, rowsep := context.Separators()
	message, continuation := context.Prompts()
	timer := "off"
	if context.Timer() {
		timer = "on"
	}

	settings := [][2]string{
		{"mode", context.Mode()},
		{"output", context.Dest()},
		{"colseparator", strconv.Quote(colsep)},
		{"rowseparator", strconv.Quote(rowsep)},
		{"prompt", strconv.Quote(message)},
		{"continuation", strconv.Quote(continuation)},
		{"timer", timer},
	}
	for _, setting := range settings {
		context.WriteString(tablewriter.PadLeft(setting[0], " ", 12) + ": " + setting[1])
	}
	return Reset
}

// Resolves \t, \n and friends typed as two characters.
func unescape(value string) string {
	if unquoted, err := strconv.Unquote(`"` + value + `"`); err == nil {
		return unquoted
	}
	return value
}
