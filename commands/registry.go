package commands

import (
	"errors"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Registry maps command names (".tables") to commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Builtin returns a registry holding every built-in command. modes are the
// names .mode accepts.
func Builtin(modes []string) *Registry {
	r := NewRegistry()
	r.Register(".quit", NewQuit(".quit"))
	r.Register(".exit", NewQuit(".exit"))
	r.Register(".read", NewRead())
	r.Register(".schema", NewSchema())
	r.Register(".tables", NewTables())
	r.Register(".prompt", NewPrompt())
	r.Register(".mode", NewMode(modes))
	r.Register(".output", NewOutput())
	r.Register(".dump", NewDump())
	r.Register(".databases", NewDatabases())
	r.Register(".separator", NewSeparator())
	r.Register(".timer", NewTimer())
	r.Register(".show", NewShow())
	r.Register(".help", NewHelp(r))
	return r
}

// Register adds command under name, replacing any command already there.
func (r *Registry) Register(name string, command Command) {
	r.commands[name] = command
}

func (r *Registry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs a dot-command line. The line is split with shell quoting
// rules, the first word names the command and the rest are its arguments.
// Whatever goes wrong is reported to the error channel and ends in Reset.
func (r *Registry) Dispatch(context Context, line string) Signal {
	tokens, err := shellwords.Parse(escapeOperators(line))
	if err != nil {
		log.WithFields(log.Fields{"context": "tokenize command", "line": line}).Info(err)
		context.WriteError("Error: " + err.Error())
		return Reset
	}
	if len(tokens) == 0 {
		return Reset
	}

	name := tokens[0]
	command, ok := r.Lookup(name)
	if !ok {
		context.WriteError("Error: unrecognized command: " + name)
		return Reset
	}

	parser := command.Parser()
	args, err := parser.Parse(tokens[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			context.WriteString(parser.Help())
			return Reset
		}
		context.WriteError(parser.Usage())
		context.WriteError(parser.Name() + ": error: " + err.Error())
		return Reset
	}
	return command.Execute(context, args)
}

// Shell operators mean nothing to a dot-command (".separator |" is common)
// but end a shellwords parse, so outside of quotes they are escaped.
func escapeOperators(line string) string {
	var b strings.Builder
	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case strings.ContainsRune(";&|<>()`", r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
