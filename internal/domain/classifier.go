// Package domain contains the scanner core: line classification,
// indentation tracking, fact extraction and mutation planning.
package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/prodscan/internal/model"
)

const commentMarker = "#"

var (
	nameHeaderRe  = regexp.MustCompile(`^(\s*)(-\s*)?name:\s*["']?([A-Za-z0-9_-]+)["']?\s*$`)
	blockHeaderRe = regexp.MustCompile(`^(\s*)(-\s*)?([A-Za-z0-9_-]+):\s*$`)
	scalarRe      = regexp.MustCompile(`^(\s*)(-\s*)?([A-Za-z0-9_.-]+)\s*:\s*(.+?)\s*$`)
)

// Classifier categorizes raw lines. It is a pure function of the line text
// plus the exclusion vocabulary it was built with.
type Classifier struct {
	excluded map[string]struct{}
}

// NewClassifier builds a classifier that demotes the given keys from service
// headers to structural headers.
func NewClassifier(excludedKeys []string) *Classifier {
	excluded := make(map[string]struct{}, len(excludedKeys))
	for _, key := range excludedKeys {
		excluded[key] = struct{}{}
	}

	return &Classifier{excluded: excluded}
}

// Classify resolves one physical line. Rules apply in priority order:
// blank/comment, explicit name declaration, bare block header, scalar,
// unrecognized.
func (c *Classifier) Classify(raw string) m.ClassifiedLine {
	line := m.ClassifiedLine{Raw: raw, Indent: indentWidth(raw)}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
		line.Kind = m.LineBlank
		return line
	}

	if g := nameHeaderRe.FindStringSubmatch(raw); g != nil {
		line.Kind = m.LineBlockHeader
		line.Name = g[3]
		line.ListItem = g[2] != ""

		return line
	}

	if g := blockHeaderRe.FindStringSubmatch(raw); g != nil {
		line.Name = g[3]
		line.ListItem = g[2] != ""
		line.Kind = m.LineBlockHeader

		if _, ok := c.excluded[g[3]]; ok {
			line.Kind = m.LineStructuralHeader
		}

		return line
	}

	if g := scalarRe.FindStringSubmatch(raw); g != nil {
		line.Kind = m.LineScalar
		line.Key = g[3]
		line.Value = stripQuotes(g[4])
		line.ListItem = g[2] != ""

		return line
	}

	line.Kind = m.LineOther

	return line
}

// indentWidth counts leading whitespace characters; the sole structural
// signal this format offers.
func indentWidth(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " \t"))
}

func stripQuotes(value string) string {
	return strings.Trim(value, `"'`)
}
