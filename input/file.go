package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// FileReader yields the statements of a SQL script one at a time.
type FileReader struct {
	file     *os.File
	scanner  *bufio.Scanner
	complete CompleteFunc
	done     bool
}

func NewFileReader(path string, complete CompleteFunc) (*FileReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReaderError{Message: "File '" + path + "' doesn't exist or is not readable", Inner: err}
	}

	scanner := bufio.NewScanner(file)
	// the default 64K token limit is too small for some dumps
	scanner.Buffer(make([]byte, 4096), 16*1024*1024)

	return &FileReader{
		file:     file,
		scanner:  scanner,
		complete: complete,
	}, nil
}

func (r *FileReader) Close() error {
	return r.file.Close()
}

// Next returns the next complete statement, io.EOF once the script is
// exhausted, or a ReaderError if the script ends mid-statement. After an
// error every further call returns io.EOF.
func (r *FileReader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}

	// blank lines between statements don't start a new one
	var first string
	for {
		line, err := r.line()
		if err != nil {
			return "", r.fail(err)
		}
		if line != "" {
			first = line
			break
		}
	}

	statement, err := Assemble(first, r.line, r.complete)
	if err != nil {
		return "", r.fail(err)
	}
	return statement, nil
}

func (r *FileReader) fail(err error) error {
	r.done = true
	return err
}

// line returns the next physical line with its comment stripped and
// surrounding whitespace trimmed.
func (r *FileReader) line() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", &ReaderError{Message: "Failed to read script", Inner: err}
		}
		return "", io.EOF
	}
	return strings.TrimSpace(stripComment(r.scanner.Text())), nil
}

// Returns the part of line before the first -- that isn't inside a quoted
// literal. A literal is delimited by ' or " and a \ escapes the character
// that follows it.
func stripComment(line string) string {
	var literal byte
	escape := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escape {
			escape = false
			continue
		}
		if c == '\\' {
			escape = true
			continue
		}

		if c == '"' || c == '\'' {
			if c == literal {
				literal = 0 // closing a matching pair
			} else if literal == 0 {
				literal = c
			}
			// otherwise it's a quote of the other kind inside a literal
			continue
		}

		if literal == 0 && c == '-' && i+1 < len(line) && line[i+1] == '-' {
			return line[:i]
		}
	}
	return line
}
