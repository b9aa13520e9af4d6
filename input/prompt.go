package input

import (
	"strings"
)

const (
	DEFAULT_PROMPT       = "msqlite> "
	DEFAULT_CONTINUATION = "   ...> "
)

// Prompter is the line-editing front-end. ReadLine returns the line without
// its trailing newline, ErrInterrupted on ctrl-c and io.EOF on ctrl-d.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

type PromptReader struct {
	prompter     Prompter
	complete     CompleteFunc
	Message      string
	Continuation string
}

func NewPromptReader(prompter Prompter, complete CompleteFunc) *PromptReader {
	return &PromptReader{
		prompter:     prompter,
		complete:     complete,
		Message:      DEFAULT_PROMPT,
		Continuation: DEFAULT_CONTINUATION,
	}
}

// Read returns the next thing the user typed: a full statement, possibly
// spread over several lines, or a dot-command which is always a single line.
// A blank line comes back as "".
func (r *PromptReader) Read() (string, error) {
	line, err := r.prompter.ReadLine(r.Message)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) == "" {
		return "", nil
	}

	// commands are processed by the shell itself and never continue
	if strings.HasPrefix(line, ".") {
		return line, nil
	}

	return Assemble(line, func() (string, error) {
		return r.prompter.ReadLine(r.Continuation)
	}, r.complete)
}
