// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package section

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yourbase/configfile/value"
)

func TestInsertFirstWriteWins(t *testing.T) {
	s := New()
	s.Insert("k", value.String("a"))
	s.Insert("k", value.String("b"))
	v, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Text(); got != "a" {
		t.Errorf("after Insert(k, a); Insert(k, b): value = %q; want %q", got, "a")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	s.Insert("k", value.String("a"))
	s.Insert("other", value.String("z"))
	s.Update("k", value.String("b"))
	v, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Text(); got != "b" {
		t.Errorf("after Update(k, b): value = %q; want %q", got, "b")
	}
	if diff := cmp.Diff([]string{"k", "other"}, s.Keys()); diff != "" {
		t.Errorf("Keys() after Update (-want +got):\n%s", diff)
	}

	s.Update("absent", value.String("x"))
	if s.Exists("absent") {
		t.Error("Update created a key; want no-op on absent key")
	}
}

func TestAtCreates(t *testing.T) {
	s := New()
	v := s.At("fresh")
	if got := v.Text(); got != "" {
		t.Errorf("At on absent key = %q; want empty cell", got)
	}
	if !s.Exists("fresh") {
		t.Error("Exists(fresh) = false after At; want true")
	}
	// Mutations through the returned cell are visible in the store.
	v.SetInt(7)
	got, err := s.Get("fresh")
	if err != nil {
		t.Fatal(err)
	}
	if got.Text() != "7" {
		t.Errorf("value after mutation through At cell = %q; want %q", got.Text(), "7")
	}
	// A second At returns the same cell, not a fresh one.
	if s.At("fresh") != v {
		t.Error("At returned a different cell for an existing key")
	}
}

func TestGetAbsent(t *testing.T) {
	s := New()
	if _, err := s.Get("nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(nope) error = %v; want ErrKeyNotFound", err)
	}
	if s.Exists("nope") {
		t.Error("Get created a key")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.Insert("a", value.String("1"))
	s.Insert("b", value.String("2"))
	s.Insert("c", value.String("3"))
	s.Remove("b")
	if s.Exists("b") {
		t.Error("Exists(b) = true after Remove")
	}
	if diff := cmp.Diff([]string{"a", "c"}, s.Keys()); diff != "" {
		t.Errorf("Keys() after Remove (-want +got):\n%s", diff)
	}
	// Removing again is a no-op.
	s.Remove("b")
	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d; want 2", got)
	}
}

func TestPop(t *testing.T) {
	s := New()
	s.Insert("k", value.String("v"))
	got, err := s.Pop("k")
	if err != nil {
		t.Fatal(err)
	}
	if got != "v" {
		t.Errorf("Pop(k) = %q; want %q", got, "v")
	}
	if s.Exists("k") {
		t.Error("Exists(k) = true after Pop")
	}
	if _, err := s.Pop("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("second Pop(k) error = %v; want ErrKeyNotFound", err)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Insert("a", value.String("1"))
	s.Insert("b", value.String("2"))
	s.Clear()
	if got := s.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d; want 0", got)
	}
	if s.Exists("a") {
		t.Error("Exists(a) = true after Clear")
	}
	// The section is reusable after Clear.
	s.Insert("c", value.String("3"))
	if diff := cmp.Diff([]string{"c"}, s.Keys()); diff != "" {
		t.Errorf("Keys() after Clear+Insert (-want +got):\n%s", diff)
	}
}

func TestKeysOrderAndRestart(t *testing.T) {
	s := New()
	keys := []string{"one", "two", "three", "four"}
	for i, k := range keys {
		s.Insert(k, value.Int(i))
	}
	if diff := cmp.Diff(keys, s.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	// A fresh pass is independent of earlier passes.
	if diff := cmp.Diff(s.Keys(), s.Keys()); diff != "" {
		t.Errorf("second Keys() differs (-first +second):\n%s", diff)
	}
	// The returned slice is a copy; mutating it does not corrupt the store.
	first := s.Keys()
	first[0] = "mutated"
	if diff := cmp.Diff(keys, s.Keys()); diff != "" {
		t.Errorf("Keys() after caller mutation (-want +got):\n%s", diff)
	}
}

func TestZeroValueUsable(t *testing.T) {
	var s Section
	s.Insert("k", value.String("v"))
	if !s.Exists("k") {
		t.Error("zero-value Section did not accept Insert")
	}
	var s2 Section
	if got := s2.At("k").Text(); got != "" {
		t.Errorf("zero-value At = %q; want empty", got)
	}
}

func TestNilCellInsert(t *testing.T) {
	s := New()
	s.Insert("k", nil)
	v, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Text(); got != "" {
		t.Errorf("Insert(k, nil) stored %q; want empty cell", got)
	}
}
