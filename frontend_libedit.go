//go:build libedit

package main

import (
	"os"
	"strings"

	"github.com/karlseguin/msqlite/input"
	"github.com/knz/go-libedit"
	log "github.com/sirupsen/logrus"
)

type libeditFrontend struct {
	el libedit.EditLine
}

func newFrontend(historyFile string) (Frontend, error) {
	el, err := libedit.InitFiles("msqlite", true, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return nil, err
	}

	el.RebindControlKeys()
	if err := el.UseHistory(500, true); err != nil {
		log.WithFields(log.Fields{"context": "libedit use history"}).Error(err)
	} else if historyFile != "" {
		el.LoadHistory(historyFile)
		el.SetAutoSaveHistory(historyFile, false)
	}
	return &libeditFrontend{el: el}, nil
}

func (f *libeditFrontend) ReadLine(prompt string) (string, error) {
	f.el.SetLeftPrompt(prompt)
	line, err := f.el.GetLine()
	if err != nil {
		if err == libedit.ErrInterrupted {
			return "", input.ErrInterrupted
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

func (f *libeditFrontend) AddHistory(statement string) {
	f.el.AddHistory(statement)
	f.el.SaveHistory()
}

func (f *libeditFrontend) Close() error {
	f.el.Close()
	return nil
}
