package model

import "testing"

func TestSourceFileContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file SourceFile
		want string
	}{
		{
			name: "trailing newline preserved",
			file: SourceFile{Lines: []string{"a", "b"}, TrailingNewline: true},
			want: "a\nb\n",
		},
		{
			name: "no trailing newline",
			file: SourceFile{Lines: []string{"a", "b"}},
			want: "a\nb",
		},
		{
			name: "empty file",
			file: SourceFile{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.file.Content(); got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceLocationEmpty(t *testing.T) {
	t.Parallel()

	if !(ServiceLocation{StartLine: 4, EndLine: 4}).Empty() {
		t.Error("header-only block must be empty")
	}

	if (ServiceLocation{StartLine: 4, EndLine: 6}).Empty() {
		t.Error("block with body must not be empty")
	}
}
