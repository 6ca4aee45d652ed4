// Package parse reads the literal table syntax used by SavedVariables files.
//
// A file is a flat sequence of top level assignments
//
//	Name = <literal>
//
// where a literal is nil, true, false, a number, a quoted string, or a table
// delimited by braces. [Parse] locates one assignment by name and builds only
// its value; every other assignment is stepped over without materializing it.
//
// # Tables
//
// A table whose entries are all positional, and which has at least one entry,
// becomes an [ir.ArrayType] value. Any explicit key ("[k] = v" or "k = v")
// turns the table into an [ir.ObjectType] value: keyed entries are inserted
// first, then positional entries under their 1-based index. A positional
// entry overwrites a keyed entry with the same index, so
//
//	{ ["1"] = "explicit", "implicit" }
//
// yields an object whose key "1" holds "implicit". The empty table "{}" is an
// empty object.
//
// A bare identifier in value position is read as a string holding the
// identifier text.
package parse
