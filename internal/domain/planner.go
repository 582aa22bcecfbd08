package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// ErrLocationNotFound reports a mutation target whose service block was not
// recorded during the scan. Callers warn and continue the batch.
var ErrLocationNotFound = errors.New("service location not found")

// PlanStatus is the planner's verdict for one target.
type PlanStatus int

const (
	// PlanEdit means a concrete edit was produced.
	PlanEdit PlanStatus = iota
	// PlanAlreadyPresent means the value is already a list member; no edit.
	PlanAlreadyPresent
)

// Planner decides, per (file, service), whether ensuring a value's list
// membership needs an in-place rewrite or a fresh line. Planning never
// mutates file state; it only produces Edit values.
type Planner struct {
	facts      *FileFacts
	indentStep int
}

// NewPlanner builds a planner over one file's recorded facts.
func NewPlanner(facts *FileFacts, indentStep int) *Planner {
	if indentStep <= 0 {
		indentStep = 2
	}

	return &Planner{facts: facts, indentStep: indentStep}
}

// EnsureListMember plans the edit that makes value a member of the named
// service's comma-separated field. The field line is searched only within
// the recorded block range. When the field exists, its key prefix —
// including the original spacing after the colon — is preserved byte for
// byte; when it does not, a new line is synthesized directly after the
// block header, two columns (one indent step) deeper than the header.
func (p *Planner) EnsureListMember(file m.SourceFile, service, field, value string) (m.Edit, PlanStatus, error) {
	location, ok := p.facts.Location(service)
	if !ok {
		return m.Edit{}, PlanEdit, fmt.Errorf("%w: %s in %s", ErrLocationNotFound, service, file.Path)
	}

	fieldRe := regexp.MustCompile(`^(\s*` + regexp.QuoteMeta(field) + `\s*:\s*)(.*)$`)

	end := location.EndLine
	if end >= len(file.Lines) {
		end = len(file.Lines) - 1
	}

	for idx := location.StartLine; idx <= end; idx++ {
		g := fieldRe.FindStringSubmatch(file.Lines[idx])
		if g == nil {
			continue
		}

		members := splitListValue(g[2])
		for _, member := range members {
			if member == value {
				return m.Edit{}, PlanAlreadyPresent, nil
			}
		}

		members = append(members, value)

		return m.Edit{
			File:   file.Path,
			Line:   idx,
			Action: m.EditUpdate,
			Text:   g[1] + strings.Join(members, ", "),
		}, PlanEdit, nil
	}

	indent := strings.Repeat(" ", location.Indent+p.indentStep)

	return m.Edit{
		File:   file.Path,
		Line:   location.StartLine,
		Action: m.EditInsertAfter,
		Text:   indent + field + ": " + value,
	}, PlanEdit, nil
}

// splitListValue parses a comma-separated scalar into trimmed,
// quote-stripped members. An empty value yields no members.
func splitListValue(value string) []string {
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	if value == "" {
		return nil
	}

	var members []string

	for _, part := range strings.Split(value, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			members = append(members, part)
		}
	}

	return members
}
