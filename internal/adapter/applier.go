package adapter

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// ApplyResult is the outcome of applying a batch of edits to one file.
// Before and After hold the full rendered content; Changed is false when the
// batch was empty or produced identical bytes.
type ApplyResult struct {
	Before  string
	After   string
	Changed bool
	File    m.SourceFile
}

// EditApplier rewrites a file's line sequence according to a planned batch
// of edits. The applier itself never touches disk; callers persist the
// returned file through the FS adapter unless they are previewing.
type EditApplier struct{}

// NewEditApplier constructs an EditApplier.
func NewEditApplier() *EditApplier {
	return &EditApplier{}
}

// Apply executes the batch against the file and returns the rewritten copy.
// Edits are applied bottom-up so earlier insertions cannot shift the line
// numbers of later edits.
func (a *EditApplier) Apply(file m.SourceFile, edits []m.Edit) (ApplyResult, error) {
	result := ApplyResult{Before: file.Content()}

	if len(edits) == 0 {
		result.After = result.Before
		result.File = file

		return result, nil
	}

	batch := make([]m.Edit, len(edits))
	copy(batch, edits)

	sort.SliceStable(batch, func(i, j int) bool { return batch[i].Line > batch[j].Line })

	lines := make([]string, len(file.Lines))
	copy(lines, file.Lines)

	for _, edit := range batch {
		if edit.Line < 0 || edit.Line >= len(lines) {
			return ApplyResult{}, fmt.Errorf("edit line %d out of range for %s (%d lines)", edit.Line, file.Path, len(lines))
		}

		switch edit.Action {
		case m.EditUpdate:
			lines[edit.Line] = edit.Text
		case m.EditInsertAfter:
			at := edit.Line + 1
			lines = append(lines[:at], append([]string{edit.Text}, lines[at:]...)...)
		default:
			return ApplyResult{}, fmt.Errorf("unknown edit action %d for %s", edit.Action, file.Path)
		}
	}

	file.Lines = lines

	result.After = file.Content()
	result.Changed = result.After != result.Before
	result.File = file

	return result, nil
}
