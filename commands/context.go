package commands

import (
	"context"

	"github.com/karlseguin/msqlite/driver"
)

// Context is the session as commands see it: the engine connection plus the
// mutable configuration of the shell.
type Context interface {
	Conn() *driver.Conn
	// bounds engine calls made on behalf of a command
	Ctx() context.Context

	// Query executes statement through the engine, the way a statement typed
	// at the prompt is, and writes its result.
	Query(statement string) error

	// WriteString writes text, followed by a newline, to the destination
	// as-is (no output mode is applied).
	WriteString(text string)
	WriteError(message string)
	Highlight(text string) string

	Mode() string
	SetMode(mode string) error
	Dest() string
	SetDest(dest string) error
	Separators() (string, string)
	SetSeparators(colsep string, rowsep string)
	Prompts() (string, string)
	SetPrompts(message string, continuation string)
	Timer() bool
	SetTimer(on bool)
}
