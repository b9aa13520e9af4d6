package commands

import (
	log "github.com/sirupsen/logrus"
)

type Schema struct {
	parser *Parser
}

func NewSchema() Schema {
	return Schema{parser: NewParser(".schema", "Show the CREATE statements matching PATTERN").
		Optional("PATTERN", "LIKE pattern on the table name")}
}

func (cmd Schema) Parser() *Parser {
	return cmd.parser
}

func (cmd Schema) Execute(context Context, args Args) Signal {
	pattern := args.String("PATTERN")
	schemas, err := context.Conn().Schemas(context.Ctx(), pattern)
	if err != nil {
		log.WithFields(log.Fields{"context": "schema", "pattern": pattern}).Info(err)
		context.WriteError("Error: " + err.Error())
		return Reset
	}

	for _, schema := range schemas {
		context.WriteString(schema + ";")
	}
	return Reset
}

type Tables struct {
	parser *Parser
}

func NewTables() Tables {
	return Tables{parser: NewParser(".tables", "List names of tables matching LIKE pattern TABLE").
		Optional("TABLE", "")}
}

func (cmd Tables) Parser() *Parser {
	return cmd.parser
}

func (cmd Tables) Execute(context Context, args Args) Signal {
	pattern := args.String("TABLE")
	tables, err := context.Conn().Tables(context.Ctx(), pattern)
	if err != nil {
		log.WithFields(log.Fields{"context": "tables", "pattern": pattern}).Info(err)
		context.WriteError("Error: " + err.Error())
		return Reset
	}

	for _, table := range tables {
		context.WriteString(table)
	}
	return Reset
}
