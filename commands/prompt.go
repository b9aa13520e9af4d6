package commands

import (
	"github.com/karlseguin/msqlite/input"
)

type Prompt struct {
	parser *Parser
}

func NewPrompt() Prompt {
	return Prompt{parser: NewParser(".prompt", "Replace the standard prompts").
		Flag("reset", "Restore the default prompts first").
		Optional("PROMPT", "").
		Optional("CONTINUATION", "")}
}

func (cmd Prompt) Parser() *Parser {
	return cmd.parser
}

// Execute replaces the prompts that are given. An omitted prompt keeps its
// current value.
func (cmd Prompt) Execute(context Context, args Args) Signal {
	if args.Bool("reset") {
		context.SetPrompts(input.DEFAULT_PROMPT, input.DEFAULT_CONTINUATION)
	}

	message, continuation := context.Prompts()
	if args.Has("PROMPT") {
		message = args.String("PROMPT")
	}
	if args.Has("CONTINUATION") {
		continuation = args.String("CONTINUATION")
	}
	context.SetPrompts(message, continuation)
	return Reset
}
