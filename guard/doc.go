// Package guard protects SavedVariables files from writes that could race the
// game client or lose data.
//
// Every [Guard.WriteFile] first asks its [Probe] whether the game is running
// and refuses to write if so. An existing file is then copied to its backup
// path, and only after the copy succeeds is the new content written to a
// temporary file and renamed over the original.
package guard
