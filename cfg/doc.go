// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package cfg reads and writes sectioned key/value configuration files.

# Syntax

A file is line-oriented. A section starts with its bracketed name on its
own line and is followed by a run of value assignments:

	[section]
	key = value
	key = value

The run ends at the first blank line or at end of file; assignments after
the terminating blank line belong to no section and are dropped. Comments
(first non-space character '#') and blank lines outside a section are
preserved verbatim in their original positions. A comment inside a
section's value run is preserved too, but as a file-level comment: on
save it is emitted after the section block it appeared in, since a
section always serializes as its header, its values in key order, and one
blank separator line.

Assignments always serialize as "key = value". Nested sections, repeated
headers with different layout, multi-line values, and quoted strings are
not supported; a repeated header merges into the existing section.

# Errors

As in package ini, file-level conditions are polled with Err while
data-access failures (missing section or key, type conversion) are
returned at the call site.
*/
package cfg
