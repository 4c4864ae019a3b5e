// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package linemodel

import "testing"

func TestClassifiers(t *testing.T) {
	tests := []struct {
		line      string
		comment   bool
		blank     bool
		header    bool
		assign    bool
	}{
		{line: "", blank: true},
		{line: "   \t", blank: true},
		{line: "# hello", comment: true},
		{line: "   # indented", comment: true},
		{line: "#key=value", comment: true, assign: true},
		{line: "[section]", header: true},
		{line: "  [ padded ]  ", header: true},
		{line: "[]", header: true},
		{line: "[broken", assign: false},
		{line: "key=value", assign: true},
		{line: "key = value", assign: true},
		{line: "=value", assign: true},
		{line: "no separator"},
	}
	for _, test := range tests {
		if got := IsComment(test.line); got != test.comment {
			t.Errorf("IsComment(%q) = %t; want %t", test.line, got, test.comment)
		}
		if got := IsBlank(test.line); got != test.blank {
			t.Errorf("IsBlank(%q) = %t; want %t", test.line, got, test.blank)
		}
		if got := IsSectionHeader(test.line); got != test.header {
			t.Errorf("IsSectionHeader(%q) = %t; want %t", test.line, got, test.header)
		}
		if got := IsAssignment(test.line); got != test.assign {
			t.Errorf("IsAssignment(%q) = %t; want %t", test.line, got, test.assign)
		}
	}
}

func TestCutAssignment(t *testing.T) {
	tests := []struct {
		line    string
		key     string
		val     string
		ok      bool
	}{
		{line: "key=value", key: "key", val: "value", ok: true},
		{line: " key = value ", key: "key", val: "value", ok: true},
		{line: "key=", key: "key", val: "", ok: true},
		{line: "key=a=b", key: "key", val: "a=b", ok: true},
		{line: "=value", ok: false},
		{line: "   =value", ok: false},
		{line: "no separator", ok: false},
	}
	for _, test := range tests {
		key, val, ok := CutAssignment(test.line)
		if key != test.key || val != test.val || ok != test.ok {
			t.Errorf("CutAssignment(%q) = %q, %q, %t; want %q, %q, %t",
				test.line, key, val, ok, test.key, test.val, test.ok)
		}
	}
}

func TestSectionName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "[section]", want: "section"},
		{line: "  [section]  ", want: "section"},
		{line: "[ padded name ]", want: "padded name"},
		{line: "[]", want: ""},
	}
	for _, test := range tests {
		if got := SectionName(test.line); got != test.want {
			t.Errorf("SectionName(%q) = %q; want %q", test.line, got, test.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Blank, "blank"},
		{Comment, "comment"},
		{SectionHeader, "section"},
		{Value, "value"},
		{Kind(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String() = %q; want %q", int(test.kind), got, test.want)
		}
	}
}
