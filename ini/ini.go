// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/yourbase/configfile/linemodel"
	"github.com/yourbase/configfile/section"
	"github.com/yourbase/configfile/value"
	"zombiezen.com/go/log"
)

// Options holds optional parameters for a parser. Nil options are treated
// identically to the zero value.
type Options struct {
	// FS is the file system used for reads and writes.
	// If nil, the operating system's file system is used.
	FS afero.Fs
}

// A Parser is an in-memory flat configuration file: one ordered key/value
// store bound to a line model so that saving preserves the loaded file's
// layout. The parser is its own section: key operations apply directly.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	store *section.Section
	core  *linemodel.Core
}

// New returns an empty parser.
func New(opts *Options) *Parser {
	p := &Parser{store: section.New()}
	var fs afero.Fs
	if opts != nil {
		fs = opts.FS
	}
	p.core = linemodel.NewCore((*format)(p), fs)
	return p
}

// Open returns a parser loaded from path. Check Err for file-level
// failures; a missing file yields an empty parser with the FileNotFound
// condition recorded.
func Open(ctx context.Context, path string, opts *Options) *Parser {
	p := New(opts)
	p.core.Load(ctx, path)
	return p
}

// Load clears the parser and reads the file at path. An empty path clears
// the parser without reading.
func (p *Parser) Load(ctx context.Context, path string) { p.core.Load(ctx, path) }

// Reload clears the parser and re-reads the current path.
func (p *Parser) Reload(ctx context.Context) { p.core.Reload(ctx) }

// Save writes the current model. A non-empty path is adopted as the new
// current path; saving with no path ever set is a silent no-op. Save does
// not mutate the in-memory model.
func (p *Parser) Save(ctx context.Context, path string) { p.core.Save(ctx, path) }

// Path returns the current file path.
func (p *Parser) Path() string { return p.core.Path() }

// Err returns the file-level condition recorded by the most recent load,
// reload, or save.
func (p *Parser) Err() linemodel.ErrorCode { return p.core.Err() }

// Flush clears the recorded file-level condition.
func (p *Parser) Flush() { p.core.Flush() }

// Insert adds key with the given cell if absent; the first write wins.
// A new key also gets a value record so it appears in the next save.
func (p *Parser) Insert(key string, v *value.Value) {
	if p.store.Exists(key) {
		return
	}
	p.core.Append(linemodel.Value, key)
	p.store.Insert(key, v)
}

// Update replaces the cell for an existing key; updating an absent key is
// a no-op. The key keeps its position in the output.
func (p *Parser) Update(key string, v *value.Value) { p.store.Update(key, v) }

// At returns the live cell for key, creating an empty-string cell and its
// value record if the key is absent.
func (p *Parser) At(key string) *value.Value {
	if !p.store.Exists(key) {
		p.core.Append(linemodel.Value, key)
	}
	return p.store.At(key)
}

// Get returns the cell for key without creating it. The error wraps
// section.ErrKeyNotFound when the key is absent.
func (p *Parser) Get(key string) (*value.Value, error) { return p.store.Get(key) }

// Exists reports whether key is present.
func (p *Parser) Exists(key string) bool { return p.store.Exists(key) }

// Remove deletes key and its value record. Removing an absent key is a
// no-op.
func (p *Parser) Remove(key string) {
	if !p.store.Exists(key) {
		return
	}
	p.core.RemoveRecord(linemodel.Value, key)
	p.store.Remove(key)
}

// Pop returns the text of the cell for key and removes the key and its
// value record. The error wraps section.ErrKeyNotFound when the key is
// absent.
func (p *Parser) Pop(key string) (string, error) {
	if p.store.Exists(key) {
		p.core.RemoveRecord(linemodel.Value, key)
	}
	return p.store.Pop(key)
}

// Clear empties the store and the record list. The path and error
// condition are unaffected.
func (p *Parser) Clear() {
	p.store.Clear()
	p.core.ResetRecords()
}

// Len returns the number of keys.
func (p *Parser) Len() int { return p.store.Len() }

// Keys returns the keys in first-seen order. The slice is a copy; call
// Keys again to restart iteration.
func (p *Parser) Keys() []string { return p.store.Keys() }

// format adapts the parser to the line-model engine.
type format Parser

func (f *format) ReadFrom(ctx context.Context, r io.Reader) error {
	p := (*Parser)(f)
	s := linemodel.NewScanner(r)
	for lineno := 1; s.Scan(); lineno++ {
		line := s.Text()
		switch {
		case linemodel.IsComment(line):
			p.core.Append(linemodel.Comment, line)
		case linemodel.IsBlank(line):
			p.core.Append(linemodel.Blank, line)
		case linemodel.IsAssignment(line):
			key, val, ok := linemodel.CutAssignment(line)
			if !ok {
				log.Debugf(ctx, "configfile/ini: %s:%d: skipping malformed assignment", p.Path(), lineno)
				continue
			}
			// First write wins; repeated keys keep their first record.
			p.Insert(key, value.String(val))
		default:
			log.Debugf(ctx, "configfile/ini: %s:%d: dropping unrecognized line", p.Path(), lineno)
		}
	}
	return s.Err()
}

func (f *format) WriteTo(w io.Writer) error {
	p := (*Parser)(f)
	for _, l := range p.core.Records() {
		var err error
		switch l.Kind {
		case linemodel.Blank, linemodel.Comment:
			_, err = io.WriteString(w, l.Content+"\n")
		case linemodel.Value:
			v, gerr := p.store.Get(l.Content)
			if gerr != nil {
				// Record without a cell; nothing to emit.
				continue
			}
			_, err = fmt.Fprintf(w, "%s = %s\n", l.Content, v.Text())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *format) Reset() {
	(*Parser)(f).store.Clear()
}
