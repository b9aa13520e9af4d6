package main

import (
	"github.com/karlseguin/msqlite/input"
)

// Frontend is the line editor the shell reads from. Which implementation is
// compiled in depends on the libedit build tag.
type Frontend interface {
	input.Prompter
	AddHistory(statement string)
	Close() error
}
