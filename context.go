package main

import (
	"context"
	"time"

	"github.com/karlseguin/msqlite/driver"
	"github.com/karlseguin/msqlite/input"
	"github.com/karlseguin/msqlite/outputs"
	log "github.com/sirupsen/logrus"
)

// Context is the shell session: the database connection, where input comes
// from and where output goes. It's what commands run against.
type Context struct {
	conn     *driver.Conn
	frontend Frontend
	reader   *input.PromptReader
	writer   *outputs.Writer
	timer    bool
	closed   bool
}

func NewContext(conn *driver.Conn, frontend Frontend, writer *outputs.Writer) *Context {
	return &Context{
		conn:     conn,
		frontend: frontend,
		reader:   input.NewPromptReader(frontend, driver.IsComplete),
		writer:   writer,
	}
}

// Close releases the writer's file, the connection and the terminal. Only the
// first call does anything.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true

	if err := c.writer.Close(); err != nil {
		log.WithFields(log.Fields{"context": "close output"}).Error(err)
	}
	if err := c.conn.Close(); err != nil {
		log.WithFields(log.Fields{"context": "close connection", "path": c.conn.Path()}).Error(err)
	}
	if err := c.frontend.Close(); err != nil {
		log.WithFields(log.Fields{"context": "close frontend"}).Error(err)
	}
}

// Prompt reads what the user typed next: a whole statement or a single
// dot-command line. Anything read goes into the history.
func (c *Context) Prompt() (string, error) {
	text, err := c.reader.Read()
	if err == nil && text != "" {
		c.frontend.AddHistory(text)
	}
	return text, err
}

// Query executes statement, all of it or none of it, and writes the result of
// each statement it holds.
func (c *Context) Query(statement string) error {
	start := time.Now()
	results, err := c.conn.Execute(c.Ctx(), statement)
	for _, result := range results {
		if err := c.writer.WriteResult(result); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	if c.timer {
		c.writer.WriteText("Run Time: " + time.Since(start).String())
	}
	return nil
}

func (c *Context) Conn() *driver.Conn {
	return c.conn
}

func (c *Context) Ctx() context.Context {
	return context.Background()
}

func (c *Context) WriteString(text string) {
	if err := c.writer.WriteText(text); err != nil {
		log.WithFields(log.Fields{"context": "write", "dest": c.writer.Dest()}).Error(err)
	}
}

func (c *Context) WriteError(message string) {
	c.writer.WriteError(message)
}

func (c *Context) Highlight(text string) string {
	return c.writer.Highlight(text)
}

func (c *Context) Mode() string {
	return c.writer.Mode()
}

func (c *Context) SetMode(mode string) error {
	return c.writer.SetMode(mode)
}

func (c *Context) Dest() string {
	return c.writer.Dest()
}

func (c *Context) SetDest(dest string) error {
	return c.writer.SetDest(dest)
}

func (c *Context) Separators() (string, string) {
	return c.writer.Separators()
}

func (c *Context) SetSeparators(colsep string, rowsep string) {
	c.writer.SetSeparators(colsep, rowsep)
}

func (c *Context) Prompts() (string, string) {
	return c.reader.Message, c.reader.Continuation
}

func (c *Context) SetPrompts(message string, continuation string) {
	c.reader.Message = message
	c.reader.Continuation = continuation
}

func (c *Context) Timer() bool {
	return c.timer
}

func (c *Context) SetTimer(on bool) {
	c.timer = on
}
