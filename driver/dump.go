package driver

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

type DumpOptions struct {
	// LIKE pattern restricting which tables are dumped, empty for all
	Pattern string

	// only emit INSERT statements: no transaction, no CREATE
	DataOnly bool
}

// a complete dump also carries indexes, triggers, views and sqlite_sequence
func (o DumpOptions) full() bool {
	return o.Pattern == "" && !o.DataOnly
}

var bareIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type dumpTable struct {
	name string
	sql  string
}

// Dump reconstructs the SQL needed to recreate the selected tables and their
// content, passing it to emit one statement at a time. Row values go through
// SQLite's quote() so that every literal round-trips exactly. A pattern that
// matches no table produces nothing at all.
func (c *Conn) Dump(ctx context.Context, options DumpOptions, emit func(line string) error) error {
	tables, err := c.dumpTables(ctx, options.Pattern)
	if err != nil {
		return err
	}
	if options.Pattern != "" && len(tables) == 0 {
		return nil
	}

	if !options.DataOnly {
		if err := emit("BEGIN TRANSACTION;"); err != nil {
			return err
		}
	}

	for _, table := range tables {
		internal := strings.HasPrefix(table.name, "sqlite_")
		// sqlite_sequence is restored by a full dump only, its rows aren't data
		if internal && (table.name != "sqlite_sequence" || options.DataOnly) {
			continue
		}

		if !options.DataOnly {
			line := table.sql + ";"
			if internal {
				// can't be created, but its content must be reset
				line = "DELETE FROM sqlite_sequence;"
			}
			if err := emit(line); err != nil {
				return err
			}
		}

		if err := c.dumpRows(ctx, table.name, emit); err != nil {
			return err
		}
	}

	if options.full() {
		result, err := c.Query(ctx, `
			select sql from sqlite_master
			where sql is not null and type in ('index', 'trigger', 'view')
			order by type = 'view', name
		`)
		if err != nil {
			return err
		}
		for _, sql := range result.Strings() {
			if err := emit(sql + ";"); err != nil {
				return err
			}
		}
	}

	if !options.DataOnly {
		return emit("COMMIT;")
	}
	return nil
}

func (c *Conn) dumpTables(ctx context.Context, pattern string) ([]dumpTable, error) {
	result, err := c.like(ctx, "select name, sql from sqlite_master where type = 'table'", pattern)
	if err != nil {
		return nil, err
	}

	rows, _ := result.Rows()
	tables := make([]dumpTable, len(rows))
	for i, row := range rows {
		tables[i] = dumpTable{name: text(row[0]), sql: text(row[1])}
	}

	// sqlite_sequence only exists once an AUTOINCREMENT table does, so it has
	// to come after them
	sort.SliceStable(tables, func(i, j int) bool {
		return !strings.HasPrefix(tables[i].name, "sqlite_") && strings.HasPrefix(tables[j].name, "sqlite_")
	})
	return tables, nil
}

func (c *Conn) dumpRows(ctx context.Context, table string, emit func(line string) error) error {
	info, err := c.Query(ctx, "select name from pragma_table_info(?)", table)
	if err != nil {
		return err
	}
	columns := info.Strings()
	if len(columns) == 0 {
		return driverError("table " + table + " has no columns")
	}

	target := table
	if !bareIdentifier.MatchString(table) || isKeyword(table) {
		target = QuoteIdentifier(table)
	}

	// builds: select 'INSERT INTO t VALUES('||quote("a")||','||quote("b")||');' from "t"
	var sql strings.Builder
	sql.WriteString("select 'INSERT INTO ")
	sql.WriteString(strings.ReplaceAll(target, "'", "''"))
	sql.WriteString(" VALUES('")
	for i, column := range columns {
		if i > 0 {
			sql.WriteString("||','")
		}
		sql.WriteString("||quote(")
		sql.WriteString(QuoteIdentifier(column))
		sql.WriteString(")")
	}
	sql.WriteString("||');' from ")
	sql.WriteString(QuoteIdentifier(table))

	result, err := c.Query(ctx, sql.String())
	if err != nil {
		return err
	}
	for _, line := range result.Strings() {
		if err := emit(line); err != nil {
			return err
		}
	}
	return nil
}
