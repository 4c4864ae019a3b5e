// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package value provides the scalar cell used by configuration stores.
//
// A cell holds a single scalar as text. The supported scalar kinds are a
// closed set: string, int, float64, bool, and single characters (runes).
// Setting a cell converts the scalar to its canonical text; reading a cell
// parses the text back into the requested kind and reports a
// *ConversionError when the text is not a valid representation of it.
// No type tag is stored: the kind is chosen by the accessor the caller uses.
package value

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// FloatPrecision is the number of digits after the decimal point used when
// storing a float in a cell. A cell set to 1.0 reads back as "1.000000".
const FloatPrecision = 6

// A Value is a single scalar stored as text. The zero value is an
// empty-string cell.
type Value struct {
	text string
}

// String returns a cell holding s verbatim.
func String(s string) *Value { return &Value{text: s} }

// Int returns a cell holding the decimal representation of i.
func Int(i int) *Value { return &Value{text: strconv.Itoa(i)} }

// Float returns a cell holding f formatted with FloatPrecision digits
// after the decimal point.
func Float(f float64) *Value {
	return &Value{text: strconv.FormatFloat(f, 'f', FloatPrecision, 64)}
}

// Bool returns a cell holding the literal text "true" or "false".
func Bool(b bool) *Value {
	if b {
		return &Value{text: "true"}
	}
	return &Value{text: "false"}
}

// Char returns a cell holding the single character c.
func Char(c rune) *Value { return &Value{text: string(c)} }

// SetString replaces the payload with s verbatim.
func (v *Value) SetString(s string) { v.text = s }

// SetInt replaces the payload with the decimal representation of i.
func (v *Value) SetInt(i int) { v.text = strconv.Itoa(i) }

// SetFloat replaces the payload with f formatted with FloatPrecision
// digits after the decimal point.
func (v *Value) SetFloat(f float64) {
	v.text = strconv.FormatFloat(f, 'f', FloatPrecision, 64)
}

// SetBool replaces the payload with the literal text "true" or "false".
func (v *Value) SetBool(b bool) {
	if b {
		v.text = "true"
	} else {
		v.text = "false"
	}
}

// SetChar replaces the payload with the single character c.
func (v *Value) SetChar(c rune) { v.text = string(c) }

// Text returns the stored text. Text on a nil cell returns the empty string.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// String returns the stored text, implementing fmt.Stringer.
func (v *Value) String() string { return v.Text() }

// Int parses the payload as a decimal integer. The whole string must be
// numeric.
func (v *Value) Int() (int, error) {
	i, err := strconv.Atoi(v.Text())
	if err != nil {
		return 0, &ConversionError{Type: "int", Text: v.Text()}
	}
	return i, nil
}

// Float parses the payload as a floating-point number. The whole string
// must be numeric.
func (v *Value) Float() (float64, error) {
	f, err := strconv.ParseFloat(v.Text(), 64)
	if err != nil {
		return 0, &ConversionError{Type: "float", Text: v.Text()}
	}
	return f, nil
}

// Bool parses the payload as a boolean. Only the literal strings "true"
// and "false" are valid; in particular "1" and "0" are not.
func (v *Value) Bool() (bool, error) {
	switch v.Text() {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ConversionError{Type: "bool", Text: v.Text()}
}

// Char parses the payload as a single character. The payload must be
// exactly one rune long.
func (v *Value) Char() (rune, error) {
	c, size := utf8.DecodeRuneInString(v.Text())
	if size == 0 || size != len(v.Text()) || c == utf8.RuneError && size == 1 {
		return 0, &ConversionError{Type: "char", Text: v.Text()}
	}
	return c, nil
}

// A ConversionError reports that a cell's text is not a valid
// representation of the requested scalar kind.
type ConversionError struct {
	Type string // requested kind: "int", "float", "bool", or "char"
	Text string // the cell text that failed to parse
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %q is not convertible to %s", e.Text, e.Type)
}
