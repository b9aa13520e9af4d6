package commands

import (
	"strings"
)

type Help struct {
	parser   *Parser
	registry *Registry
}

func NewHelp(registry *Registry) Help {
	return Help{
		registry: registry,
		parser: NewParser(".help", "Show help text for PATTERN").
			Flag("all", "Show help for every command").
			Optional("PATTERN", "Topic pattern to print help for"),
	}
}

func (cmd Help) Parser() *Parser {
	return cmd.parser
}

// Execute prints the help of every command whose name starts with PATTERN
// (a leading . is implied), or of every command.
func (cmd Help) Execute(context Context, args Args) Signal {
	pattern := args.String("PATTERN")
	names := cmd.registry.Names()

	if pattern != "" && !args.Bool("all") {
		if !strings.HasPrefix(pattern, ".") {
			pattern = "." + pattern
		}
		prefix := strings.ToLower(pattern)

		matches := names[:0]
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		names = matches
	}

	if len(names) == 0 {
		context.WriteError("Nothing matches '" + pattern + "'")
		return Reset
	}

	for _, name := range names {
		command, _ := cmd.registry.Lookup(name)
		context.WriteString(context.Highlight(name))
		context.WriteString(command.Parser().Help())
		context.WriteString("")
	}
	return Reset
}
