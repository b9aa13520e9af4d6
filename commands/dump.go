package commands

import (
	"fmt"

	"github.com/karlseguin/msqlite/driver"
	log "github.com/sirupsen/logrus"
)

type Dump struct {
	parser *Parser
}

func NewDump() Dump {
	return Dump{parser: NewParser(".dump", "Render database content as SQL").
		Flag("data-only", "Output INSERT statements only").
		Optional("TABLE", "A LIKE pattern specifying the table to dump")}
}

func (cmd Dump) Parser() *Parser {
	return cmd.parser
}

func (cmd Dump) Execute(context Context, args Args) Signal {
	options := driver.DumpOptions{
		Pattern:  args.String("TABLE"),
		DataOnly: args.Bool("data-only"),
	}

	err := context.Conn().Dump(context.Ctx(), options, func(line string) error {
		context.WriteString(line)
		return nil
	})
	if err != nil {
		log.WithFields(log.Fields{"context": "dump", "pattern": options.Pattern}).Error(err)
		context.WriteError("Error: " + err.Error())
	}
	return Reset
}

type Databases struct {
	parser *Parser
}

func NewDatabases() Databases {
	return Databases{parser: NewParser(".databases", "List names and files of attached databases")}
}

func (cmd Databases) Parser() *Parser {
	return cmd.parser
}

func (cmd Databases) Execute(context Context, args Args) Signal {
	databases, err := context.Conn().Databases(context.Ctx())
	if err != nil {
		log.WithFields(log.Fields{"context": "databases"}).Error(err)
		context.WriteError("Error: " + err.Error())
		return Reset
	}

	for _, database := range databases {
		file := database.File
		if file == "" {
			file = `""`
		}
		permissions := "r/o"
		if database.Writable {
			permissions = "r/w"
		}
		context.WriteString(fmt.Sprintf("%s: %s %s", database.Name, file, permissions))
	}
	return Reset
}
