package domain

import (
	"testing"

	m "github.com/mouse-blink/prodscan/internal/model"
)

func feedAll(t *testing.T, tracker *Tracker, classifier *Classifier, lines []string) []m.ServiceLocation {
	t.Helper()

	var closed []m.ServiceLocation

	opened := 0

	for idx, raw := range lines {
		event := tracker.Feed(idx, classifier.Classify(raw))
		if event.Closed != nil {
			closed = append(closed, *event.Closed)
		}

		if event.Opened {
			opened++
		}
	}

	if event := tracker.Finish(len(lines) - 1); event.Closed != nil {
		closed = append(closed, *event.Closed)
	}

	if opened != len(closed) {
		t.Fatalf("%d opened blocks but %d closed", opened, len(closed))
	}

	return closed
}

func TestTrackerTwoSiblings(t *testing.T) {
	t.Parallel()

	lines := []string{
		"services:",
		"  billing:",
		"    tag: v1.2.3",
		"  auth:",
		"    tag: v2.0.0",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services"}), lines)

	if len(closed) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(closed))
	}

	billing, auth := closed[0], closed[1]

	if billing.Service != "billing" || billing.StartLine != 1 || billing.EndLine != 2 {
		t.Errorf("unexpected billing location: %+v", billing)
	}

	if auth.Service != "auth" || auth.StartLine != 3 || auth.EndLine != 4 {
		t.Errorf("unexpected auth location: %+v", auth)
	}

	if billing.EndLine >= auth.StartLine {
		t.Errorf("locations overlap: %+v vs %+v", billing, auth)
	}
}

func TestTrackerStructuralKeywordKeepsServiceOpen(t *testing.T) {
	t.Parallel()

	lines := []string{
		"services:",
		"  billing:",
		"    environment:",
		"      MODE: fast",
		"    tag: v1.0.0",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services", "environment"}), lines)

	if len(closed) != 1 {
		t.Fatalf("expected 1 location, got %d", len(closed))
	}

	if closed[0].Service != "billing" || closed[0].EndLine != 4 {
		t.Errorf("structural keyword split the block: %+v", closed[0])
	}
}

func TestTrackerDedentBelowRootCloses(t *testing.T) {
	t.Parallel()

	lines := []string{
		"services:",
		"  billing:",
		"    tag: v1.0.0",
		"volumes:",
		"  data:",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services", "volumes"}), lines)

	if len(closed) != 1 {
		t.Fatalf("expected 1 location, got %d", len(closed))
	}

	if closed[0].Service != "billing" || closed[0].EndLine != 2 {
		t.Errorf("dedent did not close at the right line: %+v", closed[0])
	}
}

func TestTrackerIgnoresHeadersOutsideRoot(t *testing.T) {
	t.Parallel()

	lines := []string{
		"volumes:",
		"  data:",
		"services:",
		"  billing:",
		"    tag: v1.0.0",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services", "volumes"}), lines)

	if len(closed) != 1 || closed[0].Service != "billing" {
		t.Fatalf("expected only billing, got %+v", closed)
	}
}

func TestTrackerEOFClosesOpenService(t *testing.T) {
	t.Parallel()

	lines := []string{
		"services:",
		"  billing:",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services"}), lines)

	if len(closed) != 1 {
		t.Fatalf("expected 1 location, got %d", len(closed))
	}

	location := closed[0]
	if location.StartLine != 1 || location.EndLine != 1 {
		t.Errorf("unexpected range for header-only block: %+v", location)
	}

	if !location.Empty() {
		t.Errorf("header-only block should report Empty, got %+v", location)
	}
}

func TestTrackerNestedHeaderBelongsToBody(t *testing.T) {
	t.Parallel()

	lines := []string{
		"services:",
		"  billing:",
		"    sidecar:",
		"      tag: v1.0.0",
		"  auth:",
	}

	closed := feedAll(t, NewTracker("services"), NewClassifier([]string{"services"}), lines)

	if len(closed) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(closed))
	}

	if closed[0].Service != "billing" || closed[0].EndLine != 3 {
		t.Errorf("nested header stole the block: %+v", closed[0])
	}
}
