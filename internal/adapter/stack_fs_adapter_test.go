package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/prodscan/internal/model"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "prod2.yml", "services:\n")
	writeFixture(t, dir, "prod1.yml", "services:\n")
	writeFixture(t, dir, "prod10.YAML", "services:\n")
	writeFixture(t, dir, "notes.txt", "ignored\n")
	writeFixture(t, dir, "staging.yml", "services:\n")

	if err := os.Mkdir(filepath.Join(dir, "nested.yml"), 0o755); err != nil {
		t.Fatal(err)
	}

	fs := NewLocalStackFSAdapter()

	files, err := fs.DiscoverFiles(m.Path(dir), "prod*.{yml,yaml}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}

	// Lexicographic order, extension match case-insensitive.
	wantNames := []string{"prod1.yml", "prod10.YAML", "prod2.yml"}
	for i, want := range wantNames {
		if filepath.Base(string(files[i])) != want {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want)
		}
	}
}

func TestDiscoverFilesBadRoot(t *testing.T) {
	t.Parallel()

	fs := NewLocalStackFSAdapter()

	if _, err := fs.DiscoverFiles("does-not-exist", "*.yml"); err == nil {
		t.Error("expected an error for a missing root")
	}

	file := filepath.Join(t.TempDir(), "plain.yml")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := fs.DiscoverFiles(m.Path(file), "*.yml"); err == nil {
		t.Error("expected an error for a non-directory root")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "services:\n  billing:\n    tag: v1.0.0\n"
	writeFixture(t, dir, "prod1.yml", content)

	fs := NewLocalStackFSAdapter()

	file, err := fs.ReadSource(m.Path(filepath.Join(dir, "prod1.yml")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Prod != "prod1" {
		t.Errorf("prod = %q, want prod1", file.Prod)
	}

	if len(file.Lines) != 3 || !file.TrailingNewline {
		t.Errorf("unexpected shape: %d lines, trailing=%v", len(file.Lines), file.TrailingNewline)
	}

	if file.Content() != content {
		t.Errorf("content round trip lost bytes:\n%q\n%q", content, file.Content())
	}

	if err := fs.WriteSource(file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(string(file.Path))
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != content {
		t.Errorf("write round trip changed bytes:\n%q\n%q", content, string(data))
	}
}

func TestReadSourceNoTrailingNewline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "prod1.yml", "services:\n  billing:")

	fs := NewLocalStackFSAdapter()

	file, err := fs.ReadSource(m.Path(filepath.Join(dir, "prod1.yml")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.TrailingNewline {
		t.Error("trailing newline misdetected")
	}

	if file.Content() != "services:\n  billing:" {
		t.Errorf("content round trip lost bytes: %q", file.Content())
	}
}

func TestProdName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path m.Path
		want string
	}{
		{"stacks/prod7.yml", "prod7"},
		{"PROD3.YAML", "PROD3"},
		{"plain", "plain"},
		{"archive.tar", "archive.tar"},
	}

	for _, tt := range tests {
		if got := ProdName(tt.path); got != tt.want {
			t.Errorf("ProdName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
