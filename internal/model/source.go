// Package model defines the data structures shared by the scanner and mutator.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceFile holds the full line sequence of one stack definition file.
// Lines are stored without their trailing newline and are 0-indexed
// internally; reporting converts to 1-indexed line numbers. The sequence is
// only ever replaced wholesale by the edit applier.
type SourceFile struct {
	Path  Path
	Prod  string // file name without extension, e.g. "prod7"
	Lines []string
	// TrailingNewline records whether the original file ended with a
	// newline so an unmodified write-back stays byte-identical.
	TrailingNewline bool
}

// Content reassembles the file body exactly as it would be written to disk.
func (f SourceFile) Content() string {
	if len(f.Lines) == 0 {
		return ""
	}

	body := strings.Join(f.Lines, "\n")
	if f.TrailingNewline {
		body += "\n"
	}

	return body
}
