// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini reads and writes flat key/value configuration files.

This package is designed for read-modify-write scenarios: it preserves
comments, blank lines, and the original line order across a load/save
round trip, and appends programmatic additions at the end.

# Syntax

A file is line-oriented with one statement per line. A line whose first
non-space character is '#' is a comment and is preserved verbatim. A line
that is empty after trimming is blank and is preserved. Any other line
containing an equals sign ('=') is a value assignment:

	key = value

The key is the text before the first '=', the value the text after it,
both trimmed of surrounding whitespace. A line whose key trims to the
empty string, or any remaining line form, is silently dropped on read.
There are no sections, multi-line values, or quoted strings.

Assignments always serialize as "key = value" regardless of the spacing
in the input.

# Errors

File-level failures (missing file, unopenable file) are recorded on the
parser and polled with Err; they are never returned. Data-access failures
(missing key, a value that does not parse as the requested type) are
returned at the call site. The two channels are independent.
*/
package ini
