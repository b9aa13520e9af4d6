package driver

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func openMemory(t *testing.T) *Conn {
	t.Helper()
	conn, err := Open(Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// the result of the last statement
func mustExecute(t *testing.T, conn *Conn, statement string) *QueryResult {
	t.Helper()
	results, err := conn.Execute(context.Background(), statement)
	if err != nil {
		t.Fatalf("execute %q: %v", statement, err)
	}
	if len(results) == 0 {
		t.Fatalf("execute %q: no results", statement)
	}
	return results[len(results)-1]
}

func TestIsComplete(t *testing.T) {
	cases := []struct {
		text     string
		complete bool
	}{
		{"", false},
		{"select 1", false},
		{"select 1;", true},
		{"select 1 ;  ", true},
		{"select ';'", false},
		{"select ';';", true},
		{`select ";"`, false},
		{"select 1 -- ;", false},
		{"select 1; -- trailing", true},
		{"select /* ; */ 1", false},
		{"create trigger t after insert on x begin select 1;", false},
		{"create trigger t after insert on x begin select 1; end;", true},
	}
	for _, c := range cases {
		if got := IsComplete(c.text); got != c.complete {
			t.Errorf("IsComplete(%q) = %v, want %v", c.text, got, c.complete)
		}
	}
}

func TestExecuteMultipleStatements(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a, b); insert into t values(1, 'two');")

	result := mustExecute(t, conn, "select * from t;")
	if !reflect.DeepEqual(result.Columns(), []string{"a", "b"}) {
		t.Fatalf("columns = %v", result.Columns())
	}
	rows, _ := result.Rows()
	if len(rows) != 1 || rows[0][0] != int64(1) || rows[0][1] != "two" {
		t.Fatalf("rows = %#v", rows)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		text       string
		statements []string
	}{
		{"", nil},
		{"  ", nil},
		{"select 1;", []string{"select 1;"}},
		{"select 1; select 2;", []string{"select 1;", "select 2;"}},
		{"select ';'; select 2;", []string{"select ';';", "select 2;"}},
		{"select 1; -- trailing", []string{"select 1;", "-- trailing"}},
		{"select 1 /* ; */ ;", []string{"select 1 /* ; */ ;"}},
		{"select 1; select 2", []string{"select 1;", "select 2"}},
		{
			"create trigger tr after insert on x begin select 1; end; select 2;",
			[]string{"create trigger tr after insert on x begin select 1; end;", "select 2;"},
		},
	}
	for _, c := range cases {
		if got := Split(c.text); !reflect.DeepEqual(got, c.statements) {
			t.Errorf("Split(%q) = %q, want %q", c.text, got, c.statements)
		}
	}
}

func TestExecuteReturnsEveryResult(t *testing.T) {
	conn := openMemory(t)
	results, err := conn.Execute(context.Background(), "select 1 as x; create table after(a); select 2 as y, 3 as z;")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	rows, _ := results[0].Rows()
	if !reflect.DeepEqual(results[0].Columns(), []string{"x"}) || len(rows) != 1 || rows[0][0] != int64(1) {
		t.Fatalf("first = %v %v", results[0].Columns(), rows)
	}
	if len(results[1].Columns()) != 0 {
		t.Fatalf("create returned columns %v", results[1].Columns())
	}
	if !reflect.DeepEqual(results[2].Columns(), []string{"y", "z"}) {
		t.Fatalf("last = %v", results[2].Columns())
	}

	// the statement after the select ran too
	if tables, _ := conn.Tables(context.Background(), "after"); len(tables) != 1 {
		t.Fatalf("tables = %v", tables)
	}
}

func TestExecuteRollsBackOnFailure(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a primary key);")

	_, err := conn.Execute(context.Background(), "insert into t values(1); insert into t values(1);")
	if err == nil {
		t.Fatal("expected a constraint violation")
	}
	if _, ok := err.(Error); !ok {
		t.Fatalf("expected driver.Error, got %T", err)
	}

	rows, _ := mustExecute(t, conn, "select count(*) from t;").Rows()
	if rows[0][0] != int64(0) {
		t.Fatalf("first insert was not rolled back: %v", rows[0][0])
	}
}

func TestExecuteExplicitTransaction(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a);")
	mustExecute(t, conn, "begin;")
	if !conn.inTransaction {
		t.Fatal("expected to track the open transaction")
	}
	mustExecute(t, conn, "insert into t values(1);")
	mustExecute(t, conn, "rollback;")
	if conn.inTransaction {
		t.Fatal("expected the transaction to be closed")
	}

	rows, _ := mustExecute(t, conn, "select count(*) from t;").Rows()
	if rows[0][0] != int64(0) {
		t.Fatalf("expected rollback, got %v rows", rows[0][0])
	}
}

func TestTransactionControl(t *testing.T) {
	cases := map[string]int{
		"begin;":                       txBegin,
		"  BEGIN TRANSACTION;":         txBegin,
		"savepoint a;":                 txBegin,
		"commit;":                      txEnd,
		"end transaction;":             txEnd,
		"rollback;":                    txEnd,
		"rollback to a;":               txOther,
		"rollback transaction to a;":   txOther,
		"release a;":                   txOther,
		"select 1;":                    txNone,
		"insert into begin values(1);": txNone,
		";":                            txNone,
	}
	for statement, expected := range cases {
		if got := transactionControl(statement); got != expected {
			t.Errorf("transactionControl(%q) = %d, want %d", statement, got, expected)
		}
	}
}

func TestTablesAndSchemas(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table users(id); create table orders(id); create table user_roles(id);")
	ctx := context.Background()

	tables, err := conn.Tables(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tables, []string{"orders", "user_roles", "users"}) {
		t.Fatalf("tables = %v", tables)
	}

	tables, _ = conn.Tables(ctx, "user%")
	if !reflect.DeepEqual(tables, []string{"user_roles", "users"}) {
		t.Fatalf("filtered tables = %v", tables)
	}

	tables, _ = conn.Tables(ctx, "nope%")
	if len(tables) != 0 {
		t.Fatalf("expected no tables, got %v", tables)
	}

	schemas, _ := conn.Schemas(ctx, "orders")
	if !reflect.DeepEqual(schemas, []string{"CREATE TABLE orders(id)"}) {
		t.Fatalf("schemas = %v", schemas)
	}
}

func TestDatabases(t *testing.T) {
	conn := openMemory(t)
	databases, err := conn.Databases(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(databases) != 1 {
		t.Fatalf("databases = %+v", databases)
	}
	if db := databases[0]; db.Name != "main" || db.File != "" || !db.Writable {
		t.Fatalf("main = %+v", db)
	}
}

func TestDatabasesReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.db")
	rw, err := Open(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	mustExecute(t, rw, "create table t(a); pragma user_version = 7;")
	rw.Close()

	conn, err := Open(Config{Path: path, ReadOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	databases, err := conn.Databases(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if db := databases[0]; db.File != path || db.Writable {
		t.Fatalf("main = %+v", db)
	}
}

func dump(t *testing.T, conn *Conn, options DumpOptions) []string {
	t.Helper()
	var lines []string
	err := conn.Dump(context.Background(), options, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	return lines
}

func TestDumpTable(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a, b); insert into t values(1, 'it''s'); insert into t values(null, x'0102');")

	expected := []string{
		"BEGIN TRANSACTION;",
		"CREATE TABLE t(a, b);",
		"INSERT INTO t VALUES(1,'it''s');",
		"INSERT INTO t VALUES(NULL,X'0102');",
		"COMMIT;",
	}
	if lines := dump(t, conn, DumpOptions{Pattern: "t"}); !reflect.DeepEqual(lines, expected) {
		t.Fatalf("dump =\n%s", strings.Join(lines, "\n"))
	}
}

func TestDumpDataOnly(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a); insert into t values(1); insert into t values(2); insert into t values(3);")

	lines := dump(t, conn, DumpOptions{DataOnly: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %v", lines)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "INSERT INTO t VALUES(") {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestDumpUnmatchedPattern(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(a);")
	if lines := dump(t, conn, DumpOptions{Pattern: "missing"}); len(lines) != 0 {
		t.Fatalf("expected no output, got %v", lines)
	}
}

func TestDumpFull(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, `
		create table "odd name"(id integer primary key autoincrement, v);
		insert into "odd name"(v) values('x');
		create index odd_v on "odd name"(v);
		create view odd_view as select v from "odd name";
	`)

	lines := dump(t, conn, DumpOptions{})
	expected := []string{
		"BEGIN TRANSACTION;",
		`CREATE TABLE "odd name"(id integer primary key autoincrement, v);`,
		`INSERT INTO "odd name" VALUES(1,'x');`,
		"DELETE FROM sqlite_sequence;",
		"INSERT INTO sqlite_sequence VALUES('odd name',1);",
		`CREATE INDEX odd_v on "odd name"(v);`,
		`CREATE VIEW odd_view as select v from "odd name";`,
		"COMMIT;",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("dump =\n%s", strings.Join(lines, "\n"))
	}

	// and the dump replays into an empty database
	replay := openMemory(t)
	mustExecute(t, replay, strings.Join(lines[1:len(lines)-1], "\n"))
	rows, _ := mustExecute(t, replay, `select v from "odd name";`).Rows()
	if len(rows) != 1 || rows[0][0] != "x" {
		t.Fatalf("replayed rows = %v", rows)
	}
}

func TestDumpQuotesKeywords(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, `create table "order"(a); insert into "order" values(1);`)

	lines := dump(t, conn, DumpOptions{Pattern: "order"})
	expected := []string{
		"BEGIN TRANSACTION;",
		`CREATE TABLE "order"(a);`,
		`INSERT INTO "order" VALUES(1);`,
		"COMMIT;",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("dump =\n%s", strings.Join(lines, "\n"))
	}

	replay := openMemory(t)
	mustExecute(t, replay, strings.Join(lines[1:len(lines)-1], "\n"))
	rows, _ := mustExecute(t, replay, `select a from "order";`).Rows()
	if len(rows) != 1 || rows[0][0] != int64(1) {
		t.Fatalf("replayed rows = %v", rows)
	}
}

func TestDumpDataOnlySkipsSequence(t *testing.T) {
	conn := openMemory(t)
	mustExecute(t, conn, "create table t(id integer primary key autoincrement, v); insert into t(v) values('a'); insert into t(v) values('b');")

	lines := dump(t, conn, DumpOptions{DataOnly: true})
	expected := []string{
		"INSERT INTO t VALUES(1,'a');",
		"INSERT INTO t VALUES(2,'b');",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("dump =\n%s", strings.Join(lines, "\n"))
	}
}
