// Package logtail reads the tail of the console's own log file for
// display in the log viewer.
//
// The console logs to a file because the terminal belongs to the UI,
// so the only way to see what it has been doing is to read that file
// back. Read extracts the last N lines with a ring buffer, keeping
// memory bounded by N rather than file size, and parses each line
// from zap's JSON encoding into a Line the UI can style by level.
// Lines that are not valid JSON pass through unparsed.
//
// The package reads the current file only; it does not follow writes
// or handle rotation. The UI reloads on demand instead.
package logtail
