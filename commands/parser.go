package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type ParseError struct {
	Message string
	Inner   error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Inner
}

type positional struct {
	name     string
	help     string
	required bool
	choices  []string
}

type option struct {
	name string
	help string
}

// Parser is the argument grammar of a single command: positional arguments
// (required ones first) and boolean --flags, which may appear anywhere among
// the positionals.
type Parser struct {
	name        string
	description string
	positionals []positional
	flags       []option
}

func NewParser(name string, description string) *Parser {
	return &Parser{name: name, description: description}
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) Required(name string, help string) *Parser {
	p.positionals = append(p.positionals, positional{name: name, help: help, required: true})
	return p
}

func (p *Parser) Optional(name string, help string) *Parser {
	p.positionals = append(p.positionals, positional{name: name, help: help})
	return p
}

// Choice is an optional positional whose value must be one of choices.
func (p *Parser) Choice(name string, help string, choices []string) *Parser {
	p.positionals = append(p.positionals, positional{name: name, help: help, choices: choices})
	return p
}

func (p *Parser) Flag(name string, help string) *Parser {
	p.flags = append(p.flags, option{name: name, help: help})
	return p
}

// Args holds the parsed arguments of one invocation.
type Args struct {
	values map[string]string
	flags  map[string]bool
}

// String returns the value of a positional, "" when it wasn't given.
func (a Args) String(name string) string {
	return a.values[name]
}

func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a Args) Bool(name string) bool {
	return a.flags[name]
}

// Parse matches arguments (already tokenized) against the grammar. -h and
// --help return pflag.ErrHelp.
func (p *Parser) Parse(arguments []string) (Args, error) {
	set, flags := p.flagSet()
	if err := set.Parse(separate(arguments)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Args{}, err
		}
		return Args{}, &ParseError{Message: err.Error(), Inner: err}
	}

	args := Args{
		values: make(map[string]string, len(p.positionals)),
		flags:  make(map[string]bool, len(flags)),
	}
	for name, value := range flags {
		args.flags[name] = *value
	}

	values := set.Args()
	var missing []string
	for i, positional := range p.positionals {
		if i >= len(values) {
			if positional.required {
				missing = append(missing, positional.name)
			}
			continue
		}

		value := values[i]
		if len(positional.choices) > 0 && !contains(positional.choices, value) {
			return Args{}, &ParseError{Message: fmt.Sprintf("argument %s: invalid choice: '%s' (choose from %s)", positional.name, value, strings.Join(positional.choices, ", "))}
		}
		args.values[positional.name] = value
	}

	if len(missing) > 0 {
		return Args{}, &ParseError{Message: "the following arguments are required: " + strings.Join(missing, ", ")}
	}
	if len(values) > len(p.positionals) {
		return Args{}, &ParseError{Message: "unrecognized arguments: " + strings.Join(values[len(p.positionals):], " ")}
	}
	return args, nil
}

// Usage is the one-line synopsis, e.g. "usage: .dump [--data-only] [TABLE]".
func (p *Parser) Usage() string {
	parts := []string{"usage: " + p.name}
	for _, flag := range p.flags {
		parts = append(parts, "[--"+flag.name+"]")
	}
	for _, positional := range p.positionals {
		if positional.required {
			parts = append(parts, positional.name)
		} else {
			parts = append(parts, "["+positional.name+"]")
		}
	}
	return strings.Join(parts, " ")
}

// Help is the usage followed by the description and a description of every
// argument.
func (p *Parser) Help() string {
	sections := []string{p.Usage()}
	if p.description != "" {
		sections = append(sections, p.description)
	}

	if len(p.positionals) > 0 {
		width := 0
		for _, positional := range p.positionals {
			if len(positional.name) > width {
				width = len(positional.name)
			}
		}

		lines := []string{"positional arguments:"}
		for _, positional := range p.positionals {
			help := positional.help
			if len(positional.choices) > 0 {
				help = strings.TrimSpace(help + " (one of: " + strings.Join(positional.choices, ", ") + ")")
			}
			lines = append(lines, strings.TrimRight(fmt.Sprintf("  %-*s  %s", width, positional.name, help), " "))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(p.flags) > 0 {
		set, _ := p.flagSet()
		sections = append(sections, "options:\n"+strings.TrimRight(set.FlagUsages(), "\n"))
	}

	return strings.Join(sections, "\n\n")
}

// A FlagSet keeps state between parses, so every parse gets a fresh one.
func (p *Parser) flagSet() (*pflag.FlagSet, map[string]*bool) {
	set := pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.SetInterspersed(true)

	flags := make(map[string]*bool, len(p.flags))
	for _, flag := range p.flags {
		flags[flag.name] = set.Bool(flag.name, false, flag.help)
	}
	return set, flags
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// separate moves every value that isn't an option after a "--", so that
// positionals like "-> " or "-1" reach the command untouched. As with
// argparse, a dash-prefixed value is an option unless it's a negative number
// or contains a space. Flags never take a value, so order among them is kept.
func separate(arguments []string) []string {
	var options, values []string
	for i, argument := range arguments {
		if argument == "--" {
			values = append(values, arguments[i+1:]...)
			break
		}
		if isOption(argument) {
			options = append(options, argument)
		} else {
			values = append(values, argument)
		}
	}
	return append(append(options, "--"), values...)
}

func isOption(argument string) bool {
	if len(argument) < 2 || argument[0] != '-' || strings.Contains(argument, " ") {
		return false
	}
	_, err := strconv.ParseFloat(argument, 64)
	return err != nil
}
