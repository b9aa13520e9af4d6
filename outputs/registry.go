package outputs

import (
	"sort"
)

// META is the passthrough channel: pre-formatted text written verbatim. It
// isn't a mode users can select.
const META = "meta"

const DEFAULT_MODE = "default"

// Table is a fetched result set: a header and rows of the same arity.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Mode renders a non-empty table to the writer's current destination.
type Mode func(table Table, w *Writer) error

// Registry maps mode names to their render function. It's filled once by
// NewRegistry and only read afterwards.
type Registry struct {
	modes map[string]Mode
}

func NewRegistry() *Registry {
	r := &Registry{modes: make(map[string]Mode)}
	r.register(DEFAULT_MODE, SQL)
	r.register("list", List)
	r.register("line", Line)
	r.register("json", JSON)
	r.register("json-pretty", JSONPretty)
	r.register("python", Python)
	r.register("raw", Raw)
	r.register("markdown", Markdown)
	r.register("html", HTML)
	r.register("csv", CSV)
	r.register("tsv", TSV)
	return r
}

func (r *Registry) register(name string, mode Mode) {
	r.modes[name] = mode
}

func (r *Registry) Lookup(name string) (Mode, bool) {
	if name == META {
		return nil, false
	}
	mode, ok := r.modes[name]
	return mode, ok
}

// Names returns the selectable mode names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
