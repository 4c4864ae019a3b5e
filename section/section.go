// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package section provides an ordered key/value store: the unit of data for
// a flat configuration file or for one section of a sectioned one.
//
// A Section keeps an ordered list of unique keys alongside a key-to-cell
// map. The two views always agree: every key in the list has a cell and
// every cell's key appears in the list exactly once, in first-seen order.
package section

import (
	"errors"
	"fmt"

	"github.com/yourbase/configfile/value"
)

// ErrKeyNotFound is returned (wrapped) by Get and Pop when the key has no
// cell.
var ErrKeyNotFound = errors.New("key not found")

// A Section is an ordered set of keys with one value cell per key.
// The zero value is an empty section ready for use.
//
// Sections are not safe for concurrent use; mutating a section while
// ranging over a previously obtained Keys slice is the caller's own risk.
type Section struct {
	keys []string
	dict map[string]*value.Value
}

// New returns an empty section.
func New() *Section {
	return &Section{dict: make(map[string]*value.Value)}
}

func (s *Section) init() {
	if s.dict == nil {
		s.dict = make(map[string]*value.Value)
	}
}

// Insert adds key with the given cell if the key is not present.
// Inserting an existing key is a no-op: the first write wins.
// A nil cell inserts an empty-string cell.
func (s *Section) Insert(key string, v *value.Value) {
	s.init()
	if _, ok := s.dict[key]; ok {
		return
	}
	if v == nil {
		v = new(value.Value)
	}
	s.keys = append(s.keys, key)
	s.dict[key] = v
}

// Update replaces the cell for an existing key, preserving its position in
// key order. Updating an absent key is a no-op.
func (s *Section) Update(key string, v *value.Value) {
	if _, ok := s.dict[key]; !ok {
		return
	}
	if v == nil {
		v = new(value.Value)
	}
	s.dict[key] = v
}

// At returns the live cell for key, creating an empty-string cell (and
// appending key to the key order) if the key is absent. Use Get to look up
// without creating.
func (s *Section) At(key string) *value.Value {
	s.init()
	if v, ok := s.dict[key]; ok {
		return v
	}
	v := new(value.Value)
	s.keys = append(s.keys, key)
	s.dict[key] = v
	return v
}

// Get returns the cell for key, or an error wrapping ErrKeyNotFound if the
// key is absent. Get never creates a key.
func (s *Section) Get(key string) (*value.Value, error) {
	if v, ok := s.dict[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
}

// Exists reports whether key has a cell.
func (s *Section) Exists(key string) bool {
	_, ok := s.dict[key]
	return ok
}

// Remove deletes key from both the map and the key order. Removing an
// absent key is a no-op.
func (s *Section) Remove(key string) {
	if _, ok := s.dict[key]; !ok {
		return
	}
	delete(s.dict, key)
	s.removeKey(key)
}

// Pop returns the text of the cell for key and removes the key. It returns
// an error wrapping ErrKeyNotFound if the key is absent.
func (s *Section) Pop(key string) (string, error) {
	v, ok := s.dict[key]
	if !ok {
		return "", fmt.Errorf("pop %q: %w", key, ErrKeyNotFound)
	}
	delete(s.dict, key)
	s.removeKey(key)
	return v.Text(), nil
}

// Clear empties the section.
func (s *Section) Clear() {
	s.keys = nil
	s.dict = make(map[string]*value.Value)
}

// Len returns the number of keys.
func (s *Section) Len() int { return len(s.keys) }

// Keys returns the keys in first-seen order. The slice is a copy: callers
// may range over it freely and restart iteration by calling Keys again.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

func (s *Section) removeKey(key string) {
	for i, k := range s.keys {
		if k == key {
			copy(s.keys[i:], s.keys[i+1:])
			// Zero out truncated element for garbage collection.
			s.keys[len(s.keys)-1] = ""
			s.keys = s.keys[:len(s.keys)-1]
			return
		}
	}
}
