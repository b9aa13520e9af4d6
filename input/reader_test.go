package input

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// good enough for these tests: the real predicate is the engine's
func semicolon(text string) bool {
	return strings.HasSuffix(strings.TrimSpace(text), ";")
}

// scripted front-end
type fakePrompter struct {
	lines   []string
	errs    []error
	prompts []string
}

func (p *fakePrompter) ReadLine(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line, err := p.lines[0], p.errs[0]
	p.lines, p.errs = p.lines[1:], p.errs[1:]
	return line, err
}

func prompter(lines ...string) *fakePrompter {
	return &fakePrompter{lines: lines, errs: make([]error, len(lines))}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sql")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, r *FileReader) ([]string, []error) {
	t.Helper()
	var statements []string
	var errs []error
	for i := 0; i < 100; i++ {
		statement, err := r.Next()
		if err == io.EOF {
			return statements, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		statements = append(statements, statement)
	}
	t.Fatal("reader never reached io.EOF")
	return nil, nil
}

func TestAssembleRequestsExactlyTheContinuations(t *testing.T) {
	for n := 0; n < 5; n++ {
		fragments := []string{"select"}
		for i := 1; i < n; i++ {
			fragments = append(fragments, "1 +")
		}
		if n > 0 {
			fragments = append(fragments, "1;")
		} else {
			fragments[0] = "select 1;"
		}

		calls := 0
		rest := fragments[1:]
		statement, err := Assemble(fragments[0], func() (string, error) {
			calls++
			line := rest[0]
			rest = rest[1:]
			return line, nil
		}, semicolon)

		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if calls != n {
			t.Errorf("n=%d: requested %d continuation lines", n, calls)
		}
		if expected := strings.Join(fragments, " "); statement != expected {
			t.Errorf("n=%d: statement = %q, want %q", n, statement, expected)
		}
	}
}

func TestAssembleIncomplete(t *testing.T) {
	_, err := Assemble("select", func() (string, error) { return "", io.EOF }, semicolon)
	var readerErr *ReaderError
	if !errors.As(err, &readerErr) || readerErr.Message != "Incomplete statement" {
		t.Fatalf("expected an incomplete statement error, got %v", err)
	}
}

func TestAssemblePassesOtherErrorsThrough(t *testing.T) {
	_, err := Assemble("select", func() (string, error) { return "", ErrInterrupted }, semicolon)
	if err != ErrInterrupted {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestPromptReaderContinuation(t *testing.T) {
	p := prompter("select 1,", "2,", "3;")
	r := NewPromptReader(p, semicolon)
	r.Continuation = "..> "

	statement, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if statement != "select 1, 2, 3;" {
		t.Fatalf("statement = %q", statement)
	}
	expected := []string{DEFAULT_PROMPT, "..> ", "..> "}
	if strings.Join(p.prompts, "|") != strings.Join(expected, "|") {
		t.Fatalf("prompts = %q", p.prompts)
	}
}

func TestPromptReaderCommandsAreSingleLine(t *testing.T) {
	p := prompter(".tables 'a b'")
	statement, err := NewPromptReader(p, semicolon).Read()
	if err != nil || statement != ".tables 'a b'" {
		t.Fatalf("statement = %q, err = %v", statement, err)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("a command asked for %d lines", len(p.prompts))
	}
}

func TestPromptReaderBlankLine(t *testing.T) {
	statement, err := NewPromptReader(prompter("   "), semicolon).Read()
	if err != nil || statement != "" {
		t.Fatalf("statement = %q, err = %v", statement, err)
	}
}

func TestPromptReaderSignals(t *testing.T) {
	p := &fakePrompter{lines: []string{"select", ""}, errs: []error{nil, ErrInterrupted}}
	if _, err := NewPromptReader(p, semicolon).Read(); err != ErrInterrupted {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}

	if _, err := NewPromptReader(prompter(), semicolon).Read(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	// running out mid-statement at the prompt is an incomplete statement
	_, err := NewPromptReader(prompter("select"), semicolon).Read()
	var readerErr *ReaderError
	if !errors.As(err, &readerErr) {
		t.Fatalf("expected a ReaderError, got %v", err)
	}
}

func TestFileReader(t *testing.T) {
	path := writeScript(t, `
-- a leading comment
create table t(a, b); -- trailing comment
insert into t
  values(1, '--not a comment');

select *
  from t;
`)
	r, err := NewFileReader(path, semicolon)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	statements, errs := readAll(t, r)
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	expected := []string{
		"create table t(a, b);",
		"insert into t values(1, '--not a comment');",
		"select * from t;",
	}
	if strings.Join(statements, "|") != strings.Join(expected, "|") {
		t.Fatalf("statements = %q", statements)
	}
}

func TestFileReaderEmpty(t *testing.T) {
	r, err := NewFileReader(writeScript(t, ""), semicolon)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	statements, errs := readAll(t, r)
	if len(statements) != 0 || len(errs) != 0 {
		t.Fatalf("statements = %q, errs = %v", statements, errs)
	}
}

func TestFileReaderEndsMidStatement(t *testing.T) {
	r, err := NewFileReader(writeScript(t, "select 1;\nselect\n  2\n\n"), semicolon)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	statements, errs := readAll(t, r)
	if len(statements) != 1 || statements[0] != "select 1;" {
		t.Fatalf("statements = %q", statements)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	var readerErr *ReaderError
	if !errors.As(errs[0], &readerErr) {
		t.Fatalf("expected a ReaderError, got %T", errs[0])
	}
}

func TestFileReaderMissingFile(t *testing.T) {
	_, err := NewFileReader(filepath.Join(t.TempDir(), "nope.sql"), semicolon)
	var readerErr *ReaderError
	if !errors.As(err, &readerErr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a ReaderError wrapping ErrNotExist, got %v", err)
	}
}

func TestStripComment(t *testing.T) {
	cases := map[string]string{
		"select 1; -- hi":          "select 1; ",
		"-- only a comment":        "",
		"select '--' -- c":         "select '--' ",
		`select "a--b"`:            `select "a--b"`,
		`select 'it\'s -- x' -- y`: `select 'it\'s -- x' `,
		"select 1 - -1":            "select 1 - -1",
		"select \"it's\" -- q":     "select \"it's\" ",
	}
	for line, expected := range cases {
		if got := stripComment(line); got != expected {
			t.Errorf("stripComment(%q) = %q, want %q", line, got, expected)
		}
	}
}

func TestIsIncomplete(t *testing.T) {
	_, err := Assemble("select", func() (string, error) { return "", io.EOF }, semicolon)
	if !IsIncomplete(err) {
		t.Errorf("expected %v to be incomplete", err)
	}
	if IsIncomplete(&ReaderError{Message: "Failed to read script", Inner: io.ErrUnexpectedEOF}) {
		t.Error("a read failure isn't an incomplete statement")
	}
	if IsIncomplete(ErrInterrupted) {
		t.Error("an interrupt isn't an incomplete statement")
	}
}
