// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package linemodel

import "strings"

// A Kind classifies one physical line of a configuration file.
type Kind int

const (
	// Blank is a line that is empty after trimming.
	Blank Kind = iota
	// Comment is a line whose first non-space character is '#'.
	Comment
	// SectionHeader is a bracketed section name line.
	SectionHeader
	// Value is a key assignment line. The record stores only the key;
	// the value lives in the owning store and is looked up at write time.
	Value
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case SectionHeader:
		return "section"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// A Line records one physical line: its kind and its content. For Blank and
// Comment records the content is the verbatim original text; for
// SectionHeader records it is the section name; for Value records it is the
// key name.
type Line struct {
	Kind    Kind
	Content string
}

// IsComment reports whether the trimmed line starts with '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// IsBlank reports whether the line is empty after trimming.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsSectionHeader reports whether the trimmed line is bracketed like
// "[name]".
func IsSectionHeader(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2
}

// IsAssignment reports whether the line contains an equals sign.
func IsAssignment(line string) bool {
	return strings.Contains(line, "=")
}

// CutAssignment splits line on the first '=' and trims both halves.
// It reports ok=false for a malformed assignment: no equals sign at all,
// or a key that trims to the empty string. An empty value is legal.
func CutAssignment(line string) (key, val string, ok bool) {
	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)
	if key == "" {
		return "", "", false
	}
	return key, val, true
}

// SectionName extracts the name from a section header line, trimming
// whitespace inside the brackets. It assumes IsSectionHeader(line).
func SectionName(line string) string {
	s := strings.TrimSpace(line)
	return strings.TrimSpace(s[1 : len(s)-1])
}
