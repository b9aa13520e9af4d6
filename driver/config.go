package driver

// MEMORY is the path SQLite uses for a transient, in-memory database.
const MEMORY = ":memory:"

type Config struct {
	// path of the database file, empty or MEMORY for an in-memory database
	Path string

	// open the file without write access (ignored for in-memory databases)
	ReadOnly bool
}

func (c Config) dsn() string {
	if c.Path == "" || c.Path == MEMORY {
		return MEMORY
	}
	if c.ReadOnly {
		return "file:" + c.Path + "?mode=ro"
	}
	return c.Path
}
