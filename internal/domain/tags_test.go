package domain

import "testing"

func TestIsCustom(t *testing.T) {
	t.Parallel()

	classifier := NewTagClassifier(nil)

	tests := []struct {
		tag  string
		want bool
	}{
		{"1.2.3", false},
		{"v2.0", false},
		{"1.4.0-rc1", false},
		{"a1b2c3d", false},
		{"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b", false},
		{"A1B2C3D", false},
		{"latest", false},
		{"Latest", false},
		{"stable", false},
		{"feature/login", true},
		{"team-x/hotfix-123", true},
		{"release-candidate", false}, // no separator
		{`"team/quoted"`, true},
		{"  team/padded  ", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			if got := classifier.IsCustom(tt.tag); got != tt.want {
				t.Errorf("IsCustom(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestIsCustomConfiguredGenericList(t *testing.T) {
	t.Parallel()

	classifier := NewTagClassifier([]string{"edge"})

	if classifier.IsCustom("edge/build") != true {
		t.Errorf("word list must match whole values only")
	}

	if classifier.IsCustom("latest/build") != true {
		t.Errorf("custom list replaces the default, latest/build has a separator")
	}
}
