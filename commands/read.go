package commands

import (
	"io"

	"github.com/karlseguin/msqlite/driver"
	"github.com/karlseguin/msqlite/input"
	log "github.com/sirupsen/logrus"
)

type Read struct {
	parser *Parser
}

func NewRead() Read {
	return Read{parser: NewParser(".read", "Read input from FILE").
		Required("FILE", "SQL script to execute")}
}

func (cmd Read) Parser() *Parser {
	return cmd.parser
}

// Execute runs every statement of the script, in order, exactly as if it had
// been typed at the prompt. A failing statement is reported and the script
// carries on with the next one.
func (cmd Read) Execute(context Context, args Args) Signal {
	path := args.String("FILE")
	reader, err := input.NewFileReader(path, driver.IsComplete)
	if err != nil {
		context.WriteError("Error: " + err.Error())
		return Reset
	}
	defer reader.Close()

	for {
		statement, err := reader.Next()
		if err == io.EOF {
			return Reset
		}
		if err != nil {
			if input.IsIncomplete(err) {
				context.WriteError("Error: incomplete statement")
			} else {
				log.WithFields(log.Fields{"context": "read script", "path": path}).Error(err)
				context.WriteError("Error: " + err.Error())
			}
			// the reader returns io.EOF from now on
			continue
		}

		if err := context.Query(statement); err != nil {
			context.WriteError("Error: " + err.Error())
		}
	}
}
