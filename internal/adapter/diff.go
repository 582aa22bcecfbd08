package adapter

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// UnifiedPreview renders a line-oriented diff between two file contents for
// dry-run output. Unchanged lines are prefixed with two spaces, removals
// with "- " and additions with "+ ". Identical inputs yield an empty string.
func UnifiedPreview(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()

	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var b strings.Builder

	for _, diff := range diffs {
		prefix := "  "

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}

		for _, line := range splitDiffLines(diff.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
