package domain

import (
	m "github.com/mouse-blink/prodscan/internal/model"
)

// trackerState is where the tracker currently sits in the inferred hierarchy.
type trackerState int

const (
	stateOutside trackerState = iota
	stateInRoot
	stateInService
)

// Tracker is the finite-state machine that reconstructs block boundaries
// from indentation while lines stream top to bottom. It replaces the ad hoc
// per-script regex state with one explicit transition set.
//
// Invariant: at most one service frame is open at a time; a sibling at the
// same or shallower indent closes the previous frame before the new one
// opens, so recorded locations never overlap.
type Tracker struct {
	rootName string

	state      trackerState
	rootIndent int

	svcName   string
	svcIndent int
	svcStart  int
}

// TrackerEvent reports what one Feed call did. Closed is non-nil when a
// service block was finalized; Opened reports whether a new one started.
type TrackerEvent struct {
	Closed *m.ServiceLocation
	Opened bool
}

// NewTracker builds a tracker recognizing the given root block name.
func NewTracker(rootName string) *Tracker {
	return &Tracker{rootName: rootName}
}

// InService returns the open service frame, if any.
func (t *Tracker) InService() (name string, indent int, ok bool) {
	if t.state != stateInService {
		return "", 0, false
	}

	return t.svcName, t.svcIndent, true
}

// Feed advances the state machine by one classified line. idx is the
// 0-indexed position of the line in its file.
func (t *Tracker) Feed(idx int, line m.ClassifiedLine) TrackerEvent {
	switch line.Kind {
	case m.LineBlank, m.LineOther, m.LineScalar:
		// Only headers move block boundaries.
		return TrackerEvent{}
	case m.LineBlockHeader, m.LineStructuralHeader:
	}

	if t.state == stateOutside {
		if line.Name == t.rootName {
			t.enterRoot(line.Indent)
		}

		return TrackerEvent{}
	}

	// A header at or above the root's indent leaves the root block, unless
	// it is a list item continuing the same collection.
	if line.Indent <= t.rootIndent && !line.ListItem {
		event := t.closeService(idx - 1)
		t.state = stateOutside

		if line.Name == t.rootName {
			t.enterRoot(line.Indent)
		}

		return event
	}

	// Structural keywords nested inside a service body (environment,
	// labels, …) must not steal service identity; they open nothing and
	// close nothing at this depth.
	if line.Kind == m.LineStructuralHeader {
		return TrackerEvent{}
	}

	if line.Indent <= t.rootIndent {
		return TrackerEvent{}
	}

	// A header deeper than the open service belongs to its body.
	if t.state == stateInService && line.Indent > t.svcIndent {
		return TrackerEvent{}
	}

	event := t.closeService(idx - 1)
	t.state = stateInService
	t.svcName = line.Name
	t.svcIndent = line.Indent
	t.svcStart = idx
	event.Opened = true

	return event
}

// Finish closes any still-open service at end of file. lastIdx is the index
// of the file's last line.
func (t *Tracker) Finish(lastIdx int) TrackerEvent {
	event := t.closeService(lastIdx)
	t.state = stateOutside

	return event
}

func (t *Tracker) enterRoot(indent int) {
	t.state = stateInRoot
	t.rootIndent = indent
}

func (t *Tracker) closeService(endIdx int) TrackerEvent {
	if t.state != stateInService {
		return TrackerEvent{}
	}

	if endIdx < t.svcStart {
		endIdx = t.svcStart
	}

	location := &m.ServiceLocation{
		Service:   t.svcName,
		StartLine: t.svcStart,
		EndLine:   endIdx,
		Indent:    t.svcIndent,
	}

	t.state = stateInRoot

	return TrackerEvent{Closed: location}
}
