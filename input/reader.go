// Package input turns raw lines, typed at a prompt or read from a script,
// into complete statements ready for the engine.
package input

import (
	"errors"
	"io"
	"strings"
)

// ErrInterrupted is returned by a Prompter when the user cancels the current
// line (ctrl-c). io.EOF signals that no more input is coming (ctrl-d).
var ErrInterrupted = errors.New("interrupted")

// CompleteFunc reports whether the accumulated text forms a complete
// statement. The engine owns that decision.
type CompleteFunc func(text string) bool

type ReaderError struct {
	Message string
	Inner   error
}

func (e *ReaderError) Error() string {
	if e.Inner != nil {
		return e.Message + ": " + e.Inner.Error()
	}
	return e.Message
}

func (e *ReaderError) Unwrap() error {
	return e.Inner
}

const incompleteMessage = "Incomplete statement"

func incomplete() *ReaderError {
	return &ReaderError{Message: incompleteMessage}
}

// IsIncomplete reports whether err is input that ended mid-statement.
func IsIncomplete(err error) bool {
	var e *ReaderError
	return errors.As(err, &e) && e.Message == incompleteMessage && e.Inner == nil
}

// Assemble builds one statement starting with first, pulling more lines from
// next until complete is satisfied. Lines are joined with a single space.
// Running out of lines (next returning io.EOF) before that is a ReaderError;
// any other error from next is returned as-is.
func Assemble(first string, next func() (string, error), complete CompleteFunc) (string, error) {
	parts := []string{first}
	statement := first
	for !complete(statement) {
		line, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", incomplete()
			}
			return "", err
		}
		parts = append(parts, line)
		statement = strings.Join(parts, " ")
	}
	return statement, nil
}
