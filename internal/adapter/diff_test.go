package adapter

import (
	"strings"
	"testing"
)

func TestUnifiedPreview(t *testing.T) {
	t.Parallel()

	before := "services:\n  billing:\n    active_profiles: core\n"
	after := "services:\n  billing:\n    active_profiles: core, staging\n"

	preview := UnifiedPreview(before, after)

	if !strings.Contains(preview, "-     active_profiles: core\n") {
		t.Errorf("preview missing removal:\n%s", preview)
	}

	if !strings.Contains(preview, "+     active_profiles: core, staging\n") {
		t.Errorf("preview missing addition:\n%s", preview)
	}

	if !strings.Contains(preview, "  services:\n") {
		t.Errorf("preview missing context line:\n%s", preview)
	}
}

func TestUnifiedPreviewIdentical(t *testing.T) {
	t.Parallel()

	if got := UnifiedPreview("same\n", "same\n"); got != "" {
		t.Errorf("identical inputs produced %q", got)
	}
}
