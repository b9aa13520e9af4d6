package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
)

type Preferences struct {
	historyFile  string
	mode         string
	prompt       string
	continuation string
}

func loadPreferences() Preferences {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.WithFields(log.Fields{"context": "failed to load config dir"}).Error(err)
		return Preferences{}
	}

	configDir := filepath.Join(userConfigDir, "msqlite")
	os.Mkdir(configDir, 0750)
	configFile := filepath.Join(configDir, "pref")

	preferences := Preferences{
		historyFile: filepath.Join(configDir, "history"),
	}

	file, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithFields(log.Fields{"context": configFile}).Info("no preference file")
		} else {
			log.WithFields(log.Fields{"context": "read preference file", "path": configFile}).Error(err)
		}
		return preferences
	}

	preferences.parse(configFile, string(file))
	return preferences
}

// parse applies the key=value lines of a preference file. Blank lines and
// lines starting with # are ignored, as is anything after a # that isn't
// inside a quoted value.
func (p *Preferences) parse(configFile string, content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			log.WithFields(log.Fields{"context": configFile, "line": line}).Info("invalid property")
			continue
		}

		// quotes keep surrounding spaces and #, as in prompt="db# "
		value := strings.TrimSpace(parts[1])
		if quoted, err := strconv.QuotedPrefix(value); err == nil {
			value, _ = strconv.Unquote(quoted)
		} else {
			value = stripComment(value)
		}
		switch strings.TrimSpace(parts[0]) {
		case "historyFile":
			p.historyFile = value
		case "mode":
			p.mode = value
		case "prompt":
			p.prompt = value
		case "continuation":
			p.continuation = value
		default:
			log.WithFields(log.Fields{"context": configFile, "key": parts[0]}).Info("unknown preference key")
		}
	}
}

// apply sets up the session with whatever the preferences specify. Flags and
// commands can still override it.
func (p Preferences) apply(context *Context) {
	if p.mode != "" {
		if err := context.SetMode(p.mode); err != nil {
			log.WithFields(log.Fields{"context": "preference mode", "mode": p.mode}).Error(err)
		}
	}

	message, continuation := context.Prompts()
	if p.prompt != "" {
		message = p.prompt
	}
	if p.continuation != "" {
		continuation = p.continuation
	}
	context.SetPrompts(message, continuation)
}

func stripComment(source string) string {
	if cut := strings.IndexAny(source, "#"); cut >= 0 {
		return strings.TrimRightFunc(source[:cut], unicode.IsSpace)
	}
	return source
}
