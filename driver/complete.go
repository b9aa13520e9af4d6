package driver

import (
	"strings"

	"modernc.org/libc"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsComplete reports whether text ends with a complete SQL statement: a
// semicolon that isn't inside a string literal, a quoted identifier, a
// comment or an unfinished CREATE TRIGGER body. It's SQLite's own
// sqlite3_complete, so it agrees with what the engine will accept.
func IsComplete(text string) bool {
	tls := libc.NewTLS()
	defer tls.Close()

	sql, err := libc.CString(text)
	if err != nil {
		return false
	}
	defer libc.Xfree(tls, sql)

	return sqlite3.Xsqlite3_complete(tls, sql) != 0
}

// Split breaks text into its complete statements, in order. Whatever follows
// the last complete statement is kept as a final element unless it's blank.
func Split(text string) []string {
	var statements []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != ';' {
			continue
		}
		if candidate := text[start : i+1]; IsComplete(candidate) {
			statements = append(statements, strings.TrimSpace(candidate))
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// isKeyword reports whether SQLite reserves name, in which case it has to be
// quoted to be used as an identifier.
func isKeyword(name string) bool {
	if name == "" {
		return false
	}
	tls := libc.NewTLS()
	defer tls.Close()

	cname, err := libc.CString(name)
	if err != nil {
		return false
	}
	defer libc.Xfree(tls, cname)

	return sqlite3.Xsqlite3_keyword_check(tls, cname, int32(len(name))) != 0
}
