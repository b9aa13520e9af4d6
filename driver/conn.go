package driver

import (
	"context"
	"database/sql"
	"strings"
	"unicode"
)

// Conn is a single SQLite connection. database/sql pools connections, but an
// in-memory database only exists on the connection that created it, so the
// pool is capped at one and that one connection is pinned for our lifetime.
type Conn struct {
	db   *sql.DB
	conn *sql.Conn
	path string

	// the user opened a transaction explicitly (BEGIN / SAVEPOINT) and it
	// hasn't been committed or rolled back yet
	inTransaction bool
}

func Open(config Config) (*Conn, error) {
	db, err := sql.Open("sqlite", config.dsn())
	if err != nil {
		return nil, sqliteError(err)
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(context.Background())
	if err != nil {
		db.Close()
		return nil, sqliteError(err)
	}

	path := config.Path
	if path == "" {
		path = MEMORY
	}
	return &Conn{db: db, conn: conn, path: path}, nil
}

func (c *Conn) Close() error {
	err := c.conn.Close()
	if e := c.db.Close(); err == nil {
		err = e
	}
	return err
}

func (c *Conn) Path() string {
	return c.path
}

// Query runs statement as-is, outside of any transaction we manage. Used for
// catalog lookups and by Execute for transaction-control statements.
func (c *Conn) Query(ctx context.Context, statement string, args ...any) (*QueryResult, error) {
	rows, err := c.conn.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, sqliteError(err)
	}
	return newQueryResult(rows)
}

// Execute runs a top-level statement (which may itself contain several
// semicolon-separated statements) in an all-or-nothing scope: everything is
// committed if it succeeds and rolled back if any part fails. When the user
// has opened a transaction of their own, statements run inside it instead.
// There's one result per statement, in order.
func (c *Conn) Execute(ctx context.Context, statement string) ([]*QueryResult, error) {
	statements := Split(statement)
	if len(statements) == 0 {
		return nil, nil
	}

	if c.inTransaction || transactionControl(statements[0]) != txNone {
		results := make([]*QueryResult, 0, len(statements))
		for _, statement := range statements {
			result, err := c.Query(ctx, statement)
			if err != nil {
				return results, err
			}
			switch transactionControl(statement) {
			case txBegin:
				c.inTransaction = true
			case txEnd:
				c.inTransaction = false
			}
			results = append(results, result)
		}
		return results, nil
	}

	tx, err := c.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, sqliteError(err)
	}

	results := make([]*QueryResult, 0, len(statements))
	for _, statement := range statements {
		rows, err := tx.QueryContext(ctx, statement)
		if err != nil {
			tx.Rollback()
			return nil, sqliteError(err)
		}
		result, err := newQueryResult(rows)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		results = append(results, result)
	}

	if err := tx.Commit(); err != nil {
		return nil, sqliteError(err)
	}
	return results, nil
}

const (
	txNone = iota
	txBegin
	txEnd
	txOther
)

// Classifies a single statement by its leading keyword.
func transactionControl(statement string) int {
	words := strings.FieldsFunc(strings.ToUpper(statement), func(r rune) bool {
		return unicode.IsSpace(r) || r == ';'
	})
	if len(words) == 0 {
		return txNone
	}

	switch words[0] {
	case "BEGIN", "SAVEPOINT":
		return txBegin
	case "COMMIT", "END":
		return txEnd
	case "ROLLBACK":
		// ROLLBACK [TRANSACTION] TO savepoint keeps the transaction open
		for _, w := range words[1:] {
			if w == "TO" {
				return txOther
			}
		}
		return txEnd
	case "RELEASE":
		return txOther
	}
	return txNone
}
