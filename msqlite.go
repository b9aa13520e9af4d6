package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jpillora/opts"
	"github.com/karlseguin/msqlite/commands"
	"github.com/karlseguin/msqlite/driver"
	"github.com/karlseguin/msqlite/input"
	"github.com/karlseguin/msqlite/outputs"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

func main() {
	type flags struct {
		Database string `opts:"mode=arg,help=database file (:memory: for a transient database)"`
		ReadOnly bool   `opts:"name=readonly,help=open the database read-only,short=r"`
		Verbose  bool   `opts:"help=verbose logging,short=v"`
		Quiet    bool   `opts:"help=quiet logging,short=q"`
	}

	args := flags{
		Database: driver.MEMORY,
	}
	opts.Parse(&args)

	log.SetOutput(os.Stderr)
	if args.Verbose {
		log.SetLevel(log.InfoLevel)
	} else if args.Quiet {
		log.SetLevel(log.FatalLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	preferences := loadPreferences()
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("historyFile = %s", preferences.historyFile)
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("mode = %s", preferences.mode)

	conn, err := driver.Open(driver.Config{Path: args.Database, ReadOnly: args.ReadOnly})
	if err != nil {
		log.WithFields(log.Fields{
			"path":    args.Database,
			"context": "open database",
		}).Fatal(err)
	}

	frontend, err := newFrontend(preferences.historyFile)
	if err != nil {
		conn.Close()
		log.WithFields(log.Fields{"context": "frontend initialization"}).Fatal(err)
	}

	modes := outputs.NewRegistry()
	context := NewContext(conn, frontend, outputs.NewWriter(modes, os.Stdout, os.Stderr))
	defer context.Close()
	preferences.apply(context)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		welcome(context, conn.Path())
	}

	repl(context, commands.Builtin(modes.Names()))
}

func welcome(context *Context, path string) {
	context.WriteString(`Enter ".help" for usage hints.`)
	if path == driver.MEMORY {
		context.WriteString("Connected to a transient in-memory database.")
	}
}

// repl runs until the input ends or a command asks to stop. Nothing the user
// types stops it otherwise: errors are reported and the next prompt follows.
func repl(context *Context, registry *commands.Registry) {
	for {
		text, err := context.Prompt()
		if err != nil {
			if errors.Is(err, input.ErrInterrupted) {
				// ctrl-c abandons whatever was being typed
				continue
			}
			if errors.Is(err, io.EOF) {
				return
			}
			var readerErr *input.ReaderError
			if errors.As(err, &readerErr) {
				context.WriteError("Error: " + readerErr.Error())
				continue
			}
			log.WithFields(log.Fields{"context": "read line"}).Error(err)
			return
		}

		if text == "" {
			// blank line, do nothing
			continue
		}

		// any line that starts with . is a command, processed by the shell itself
		if strings.HasPrefix(text, ".") {
			if registry.Dispatch(context, text) == commands.Terminate {
				return
			}
			continue
		}

		if err := context.Query(text); err != nil {
			context.WriteError("Error: " + err.Error())
		}
	}
}
