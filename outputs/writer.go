package outputs

import (
	"fmt"
	"io"
	"os"

	"github.com/karlseguin/msqlite/driver"
	"github.com/mattn/go-isatty"
)

const (
	STDOUT = "stdout"
	STDERR = "stderr"
)

type ConfigError struct {
	Message string
	Inner   error
}

func (e *ConfigError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Inner)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Inner
}

// Writer owns where output goes (a standard stream or a file) and how result
// sets are rendered. Everything the shell prints goes through it.
type Writer struct {
	modes  *Registry
	mode   string
	stdout io.Writer
	stderr io.Writer

	// name of the destination: STDOUT, STDERR or a file path
	destName string
	dest     io.Writer
	// the open destination file, nil when writing to a standard stream
	file *os.File

	colsep string
	rowsep string
}

func NewWriter(modes *Registry, stdout io.Writer, stderr io.Writer) *Writer {
	return &Writer{
		modes:    modes,
		mode:     DEFAULT_MODE,
		stdout:   stdout,
		stderr:   stderr,
		destName: STDOUT,
		dest:     stdout,
		colsep:   "|",
		rowsep:   "\n",
	}
}

func (w *Writer) Mode() string {
	return w.mode
}

// SetMode selects the render mode. An unknown name leaves the mode unchanged.
func (w *Writer) SetMode(name string) error {
	if _, ok := w.modes.Lookup(name); !ok {
		return &ConfigError{Message: "Invalid output mode: " + name}
	}
	w.mode = name
	return nil
}

func (w *Writer) Dest() string {
	return w.destName
}

// SetDest switches the destination to STDOUT, STDERR or the file at name
// (truncated). An empty name means STDOUT. The previous file, if any, is
// closed before the new one is opened. If the file can't be opened, output
// goes to STDOUT.
func (w *Writer) SetDest(name string) error {
	if name == "" {
		name = STDOUT
	}

	previous := w.destName
	if err := w.Close(); err != nil {
		return &ConfigError{Message: "Failed to close file " + previous, Inner: err}
	}

	switch name {
	case STDOUT:
		w.dest = w.stdout
	case STDERR:
		w.dest = w.stderr
	default:
		file, err := os.Create(name)
		if err != nil {
			return &ConfigError{Message: "Failed to open file " + name, Inner: err}
		}
		w.file = file
		w.dest = file
	}
	w.destName = name
	return nil
}

// Close closes the destination file, if there is one, and falls back to
// STDOUT. Standard streams are never closed.
func (w *Writer) Close() error {
	file := w.file
	w.file = nil
	w.dest = w.stdout
	w.destName = STDOUT
	if file == nil {
		return nil
	}
	return file.Close()
}

func (w *Writer) Separators() (string, string) {
	return w.colsep, w.rowsep
}

func (w *Writer) SetSeparators(colsep string, rowsep string) {
	w.colsep = colsep
	w.rowsep = rowsep
}

// WriteResult fetches every row of result and, if there are any, renders
// them with the current mode. An empty result prints nothing.
func (w *Writer) WriteResult(result driver.Result) error {
	rows, err := result.Rows()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	mode, ok := w.modes.Lookup(w.mode)
	if !ok {
		return &ConfigError{Message: "Invalid output mode: " + w.mode}
	}
	return mode(Table{Columns: result.Columns(), Rows: rows}, w)
}

// WriteText is the META passthrough: text is written as-is, followed by a
// newline, even when it's empty.
func (w *Writer) WriteText(text string) error {
	_, err := io.WriteString(w.dest, text+"\n")
	return err
}

// WriteError writes message to the error stream without touching the
// configured destination.
func (w *Writer) WriteError(message string) {
	io.WriteString(w.stderr, message+"\n")
}

// Highlight wraps text in a color escape when the destination is a terminal.
func (w *Writer) Highlight(text string) string {
	file, ok := w.dest.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return text
	}
	return "\x1b[38;5;171m" + text + "\x1b[0m"
}

func (w *Writer) out() io.Writer {
	return w.dest
}
