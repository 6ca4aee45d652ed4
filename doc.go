// Package savedvars reads and rewrites variables in SavedVariables files, the
// literal table files a game client keeps addon state in.
//
// A [Store] reads one top level variable at a time without building the rest
// of the file, and writes by splicing the new value over the old one so that
// every other byte of the file is preserved. Writes go through a
// [guard.Guard]: they are refused while the game is running, and the old
// file is copied to a backup before it is replaced.
//
// Writes to several files with [Store.WriteAll] are atomic per file only. A
// failure part way leaves the files written before it committed and is
// reported as a [*BatchError].
package savedvars
