// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package linemodel implements the line-model engine shared by the
// configuration file formats.
//
// The engine keeps an ordered list of line records alongside whatever
// keyed stores a format maintains. On read, each physical line is
// classified and recorded so that a later save can replay the file in its
// original order, substituting current values for value records. File-level
// failures are recorded as an ErrorCode polled by the caller rather than
// returned, keeping the I/O channel separate from data-access errors.
package linemodel

import (
	"bufio"
	"context"
	"io"

	"github.com/spf13/afero"
	"zombiezen.com/go/log"
)

// An ErrorCode is the file-level condition recorded by the most recent
// load, reload, or save.
type ErrorCode int

const (
	// NoError is the default, steady state.
	NoError ErrorCode = iota
	// FileNotFound means the target path did not exist at read time.
	FileNotFound
	// FileOpenError means the file could not be opened for read or write.
	FileOpenError
	// FileReadError means the file opened but reading it failed partway.
	FileReadError
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "no error"
	case FileNotFound:
		return "file not found"
	case FileOpenError:
		return "file open error"
	case FileReadError:
		return "file read error"
	default:
		return "unknown error"
	}
}

// A Format is one of the closed set of file formats driven by a Core. The
// format parses lines into its stores on read and emits its current state
// on write; the Core owns the path, the error code, and the record list.
type Format interface {
	// ReadFrom parses the whole reader, appending records to the Core and
	// populating the format's stores. A returned error is an I/O failure,
	// not a syntax problem: malformed lines are skipped, not errored.
	ReadFrom(ctx context.Context, r io.Reader) error
	// WriteTo replays the Core's records, substituting current values.
	WriteTo(w io.Writer) error
	// Reset empties the format's stores. The Core clears its own records.
	Reset()
}

// A Core drives reading and writing for a single format instance. It owns
// the ordered record list, the file path, and the polled error code.
//
// A Core is not safe for concurrent use.
type Core struct {
	fs     afero.Fs
	format Format
	path   string
	code   ErrorCode
	lines  []Line
}

// NewCore returns a Core driving the given format. A nil fs means the
// operating system's file system.
func NewCore(format Format, fs afero.Fs) *Core {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Core{fs: fs, format: format}
}

// Path returns the current file path.
func (c *Core) Path() string { return c.path }

// Err returns the condition recorded by the most recent file operation.
func (c *Core) Err() ErrorCode { return c.code }

// Flush clears the recorded error condition.
func (c *Core) Flush() { c.code = NoError }

// Load clears the error condition and all in-memory state, adopts path,
// and, if path is non-empty, reads the file. A missing file records
// FileNotFound and leaves the stores empty.
func (c *Core) Load(ctx context.Context, path string) {
	c.Flush()
	c.clear()
	c.path = path
	c.read(ctx)
}

// Reload clears the in-memory state and re-reads the current path.
func (c *Core) Reload(ctx context.Context) {
	c.clear()
	c.read(ctx)
}

// Save writes the in-memory model out. A non-empty path is adopted as the
// new current path first. Saving with an empty current path is a silent
// no-op. Save does not mutate the records or stores; a failure to create
// the target records FileOpenError and leaves any existing file untouched.
func (c *Core) Save(ctx context.Context, path string) {
	if path != "" {
		c.path = path
	}
	if c.path == "" {
		return
	}
	f, err := c.fs.Create(c.path)
	if err != nil {
		log.Warnf(ctx, "configfile: save %s: %v", c.path, err)
		c.code = FileOpenError
		return
	}
	w := bufio.NewWriter(f)
	werr := c.format.WriteTo(w)
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		// Partway failure; no rollback is attempted.
		log.Warnf(ctx, "configfile: save %s: %v", c.path, werr)
		c.code = FileOpenError
	}
}

func (c *Core) clear() {
	c.ResetRecords()
	c.format.Reset()
}

func (c *Core) read(ctx context.Context) {
	if c.path == "" {
		return
	}
	exists, err := afero.Exists(c.fs, c.path)
	if err != nil {
		log.Warnf(ctx, "configfile: load %s: %v", c.path, err)
		c.code = FileOpenError
		return
	}
	if !exists {
		log.Debugf(ctx, "configfile: load %s: file not found", c.path)
		c.code = FileNotFound
		return
	}
	f, err := c.fs.Open(c.path)
	if err != nil {
		log.Warnf(ctx, "configfile: load %s: %v", c.path, err)
		c.code = FileOpenError
		return
	}
	defer f.Close()
	if err := c.format.ReadFrom(ctx, f); err != nil {
		// Records appended before the failure point are kept.
		log.Warnf(ctx, "configfile: load %s: %v", c.path, err)
		c.code = FileReadError
	}
}

// Append adds a record to the end of the list.
func (c *Core) Append(kind Kind, content string) {
	c.lines = append(c.lines, Line{Kind: kind, Content: content})
}

// RemoveRecord deletes the first record matching kind and content.
// Removing a record that does not exist is a no-op.
func (c *Core) RemoveRecord(kind Kind, content string) {
	for i, l := range c.lines {
		if l.Kind == kind && l.Content == content {
			copy(c.lines[i:], c.lines[i+1:])
			c.lines[len(c.lines)-1] = Line{}
			c.lines = c.lines[:len(c.lines)-1]
			return
		}
	}
}

// Records returns the record list in save order. The slice is shared with
// the Core and must not be mutated by the caller.
func (c *Core) Records() []Line { return c.lines }

// ResetRecords empties the record list.
func (c *Core) ResetRecords() { c.lines = nil }

// NewScanner returns the line scanner formats use to consume a file.
func NewScanner(r io.Reader) *bufio.Scanner {
	return bufio.NewScanner(r)
}
