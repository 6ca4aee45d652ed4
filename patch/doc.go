// Package patch rewrites single top level assignments inside SavedVariables
// text without touching any other byte of the file.
//
// [Locate] finds an assignment by scanning at brace depth zero, stepping over
// comments and quoted strings, and matching the name only as a whole
// identifier followed by '='. It never builds a value tree for the rest of
// the file. [Patch] splices a freshly encoded value over the located span or
// appends a new assignment when the name is absent.
package patch
