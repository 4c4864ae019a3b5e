// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cfg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/yourbase/configfile/linemodel"
	"github.com/yourbase/configfile/section"
	"github.com/yourbase/configfile/value"
	"zombiezen.com/go/log"
)

// ErrSectionNotFound is returned (wrapped) by Section when no section has
// the requested name.
var ErrSectionNotFound = errors.New("section not found")

// Options holds optional parameters for a parser. Nil options are treated
// identically to the zero value.
type Options struct {
	// FS is the file system used for reads and writes.
	// If nil, the operating system's file system is used.
	FS afero.Fs
}

// A Parser is an in-memory sectioned configuration file: a named,
// ordered collection of key/value sections bound to a line model. The
// line model tracks section headers, comments, and blanks; each section's
// values live in its own store and are emitted in key order on save.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	names    []string
	sections map[string]*section.Section
	core     *linemodel.Core
}

// New returns an empty parser.
func New(opts *Options) *Parser {
	p := &Parser{sections: make(map[string]*section.Section)}
	var fs afero.Fs
	if opts != nil {
		fs = opts.FS
	}
	p.core = linemodel.NewCore((*format)(p), fs)
	return p
}

// Open returns a parser loaded from path. Check Err for file-level
// failures.
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
// current path; saving with no path ever set is a silent no-op.
func (p *Parser) Save(ctx context.Context, path string) { p.core.Save(ctx, path) }

// Path returns the current file path.
func (p *Parser) Path() string { return p.core.Path() }

// Err returns the file-level condition recorded by the most recent load,
// reload, or save.
func (p *Parser) Err() linemodel.ErrorCode { return p.core.Err() }

// Flush clears the recorded file-level condition.
func (p *Parser) Flush() { p.core.Flush() }

// AddSection creates an empty section with the given name and a matching
// header record. Adding a section that already exists is a no-op.
func (p *Parser) AddSection(name string) {
	if _, ok := p.sections[name]; ok {
		return
	}
	p.names = append(p.names, name)
	p.core.Append(linemodel.SectionHeader, name)
	p.sections[name] = section.New()
}

// RemoveSection deletes the named section, its header record, and all its
// keys. Removing an absent section is a no-op.
func (p *Parser) RemoveSection(name string) {
	if _, ok := p.sections[name]; !ok {
		return
	}
	for i, n := range p.names {
		if n == name {
			copy(p.names[i:], p.names[i+1:])
			p.names[len(p.names)-1] = ""
			p.names = p.names[:len(p.names)-1]
			break
		}
	}
	p.core.RemoveRecord(linemodel.SectionHeader, name)
	delete(p.sections, name)
}

// Section returns the named section's store. The error wraps
// ErrSectionNotFound when no such section exists; Section never creates.
func (p *Parser) Section(name string) (*section.Section, error) {
	s, ok := p.sections[name]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, ErrSectionNotFound)
	}
	return s, nil
}

// HasSection reports whether a section with the given name exists.
func (p *Parser) HasSection(name string) bool {
	_, ok := p.sections[name]
	return ok
}

// Sections returns the section names in first-seen order. The slice is a
// copy; call Sections again to restart iteration.
func (p *Parser) Sections() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of sections.
func (p *Parser) Len() int { return len(p.names) }

// Clear empties all sections and the record list. The path and error
// condition are unaffected.
func (p *Parser) Clear() {
	p.names = nil
	p.sections = make(map[string]*section.Section)
	p.core.ResetRecords()
}

// format adapts the parser to the line-model engine.
type format Parser

func (f *format) ReadFrom(ctx context.Context, r io.Reader) error {
	p := (*Parser)(f)
	s := linemodel.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := s.Text()
		switch {
		case linemodel.IsComment(line):
			p.core.Append(linemodel.Comment, line)
		case linemodel.IsBlank(line):
			p.core.Append(linemodel.Blank, line)
		case linemodel.IsSectionHeader(line):
			name := linemodel.SectionName(line)
			if name == "" {
				log.Debugf(ctx, "configfile/cfg: %s:%d: skipping empty section name", p.Path(), lineno)
				continue
			}
			p.AddSection(name)
			st := p.sections[name]
			// Consume the section's value run. It ends at the first
			// blank line or end of file; the terminating blank is not
			// recorded because save emits its own separator.
			for s.Scan() {
				lineno++
				inner := s.Text()
				if linemodel.IsBlank(inner) {
					break
				}
				switch {
				case linemodel.IsComment(inner):
					// Preserved, but at file level: it resurfaces after
					// the section block on save.
					p.core.Append(linemodel.Comment, inner)
				case linemodel.IsAssignment(inner):
					key, val, ok := linemodel.CutAssignment(inner)
					if !ok {
						log.Debugf(ctx, "configfile/cfg: %s:%d: skipping malformed assignment", p.Path(), lineno)
						continue
					}
					st.Insert(key, value.String(val))
				default:
					log.Debugf(ctx, "configfile/cfg: %s:%d: dropping unrecognized line", p.Path(), lineno)
				}
			}
		default:
			log.Debugf(ctx, "configfile/cfg: %s:%d: dropping unrecognized line", p.Path(), lineno)
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
		case linemodel.SectionHeader:
			st, ok := p.sections[l.Content]
			if !ok {
				continue
			}
			if _, err = fmt.Fprintf(w, "[%s]\n", l.Content); err != nil {
				return err
			}
			for _, key := range st.Keys() {
				v, gerr := st.Get(key)
				if gerr != nil {
					continue
				}
				if _, err = fmt.Fprintf(w, "%s = %s\n", key, v.Text()); err != nil {
					return err
				}
			}
			_, err = io.WriteString(w, "\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *format) Reset() {
	p := (*Parser)(f)
	p.names = nil
	p.sections = make(map[string]*section.Section)
}
