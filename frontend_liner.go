//go:build !libedit

package main

import (
	"errors"
	"os"

	"github.com/karlseguin/msqlite/input"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
)

type linerFrontend struct {
	state       *liner.State
	historyFile string
}

func newFrontend(historyFile string) (Frontend, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyFile != "" {
		if file, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(file); err != nil {
				log.WithFields(log.Fields{"context": "read history", "path": historyFile}).Error(err)
			}
			file.Close()
		} else if !os.IsNotExist(err) {
			log.WithFields(log.Fields{"context": "open history", "path": historyFile}).Error(err)
		}
	}

	return &linerFrontend{state: state, historyFile: historyFile}, nil
}

func (f *linerFrontend) ReadLine(prompt string) (string, error) {
	line, err := f.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", input.ErrInterrupted
	}
	// io.EOF on ctrl-d
	return line, err
}

func (f *linerFrontend) AddHistory(statement string) {
	f.state.AppendHistory(statement)
}

// Close saves the history and gives the terminal back.
func (f *linerFrontend) Close() error {
	if f.historyFile != "" {
		if file, err := os.Create(f.historyFile); err != nil {
			log.WithFields(log.Fields{"context": "save history", "path": f.historyFile}).Error(err)
		} else {
			f.state.WriteHistory(file)
			file.Close()
		}
	}
	return f.state.Close()
}
