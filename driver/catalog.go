package driver

import (
	"context"
	"strconv"
	"strings"
)

type Database struct {
	Name string
	// empty for in-memory and temporary databases
	File     string
	Writable bool
}

// Tables lists the names of tables, optionally restricted to those matching
// the LIKE pattern.
func (c *Conn) Tables(ctx context.Context, pattern string) ([]string, error) {
	result, err := c.like(ctx, "select name from sqlite_master where type = 'table'", pattern)
	if err != nil {
		return nil, err
	}
	return result.Strings(), nil
}

// Schemas returns the stored CREATE statement of tables, optionally restricted
// to those whose name matches the LIKE pattern.
func (c *Conn) Schemas(ctx context.Context, pattern string) ([]string, error) {
	result, err := c.like(ctx, "select sql from sqlite_master where type = 'table'", pattern)
	if err != nil {
		return nil, err
	}
	return result.Strings(), nil
}

func (c *Conn) like(ctx context.Context, sql string, pattern string) (*QueryResult, error) {
	if pattern == "" {
		return c.Query(ctx, sql+" order by name")
	}
	return c.Query(ctx, sql+" and name like ? order by name", pattern)
}

// Databases lists every attached database. Writability is probed by writing
// each database's user_version back with the value it already has: harmless
// on a writable database, rejected by a read-only one.
func (c *Conn) Databases(ctx context.Context) ([]Database, error) {
	result, err := c.Query(ctx, "pragma database_list")
	if err != nil {
		return nil, err
	}

	rows, _ := result.Rows()
	databases := make([]Database, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			return nil, detailedDriverError("unexpected database_list row", strings.Join(result.Columns(), ","))
		}
		db := Database{Name: text(row[1]), File: text(row[2])}
		if db.Writable, err = c.writable(ctx, db.Name); err != nil {
			return nil, err
		}
		databases = append(databases, db)
	}
	return databases, nil
}

func (c *Conn) writable(ctx context.Context, name string) (bool, error) {
	schema := QuoteIdentifier(name)
	result, err := c.Query(ctx, "pragma "+schema+".user_version")
	if err != nil {
		return false, err
	}
	version := "0"
	if rows, _ := result.Rows(); len(rows) == 1 {
		version = text(rows[0][0])
	}

	_, err = c.Query(ctx, "pragma "+schema+".user_version = "+version)
	if err == nil {
		return true, nil
	}
	if IsReadOnly(err) {
		return false, nil
	}
	return false, err
}

// QuoteIdentifier double-quotes name for use as an SQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}
