// Package adapter contains filesystem, report and UI infrastructure for the
// prodscan CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// StackFSAdapter abstracts the filesystem operations the workflow relies on,
// hiding direct `os` access so the scanning and mutation logic can be tested
// against fakes.
type StackFSAdapter interface {
	// DiscoverFiles lists the stack definition files under root (one level,
	// no recursion) whose names match pattern, in lexicographic order.
	// The extension match is case-insensitive and restricted to yml/yaml.
	DiscoverFiles(root m.Path, pattern string) ([]m.Path, error)

	// ReadSource loads a file into its line sequence.
	ReadSource(path m.Path) (m.SourceFile, error)

	// WriteSource writes the full line sequence back to the file's path via
	// a temporary file and rename, so a crash cannot leave a half-written
	// file behind.
	WriteSource(file m.SourceFile) error
}

// LocalStackFSAdapter is the disk-backed implementation.
type LocalStackFSAdapter struct{}

// NewLocalStackFSAdapter constructs a LocalStackFSAdapter ready to be wired
// into the workflow.
func NewLocalStackFSAdapter() *LocalStackFSAdapter {
	return &LocalStackFSAdapter{}
}

// DiscoverFiles implements StackFSAdapter.
func (a *LocalStackFSAdapter) DiscoverFiles(root m.Path, pattern string) ([]m.Path, error) {
	info, err := os.Stat(string(root))
	if err != nil {
		return nil, fmt.Errorf("path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	lowerPattern := strings.ToLower(pattern)

	var files []m.Path

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := strings.ToLower(entry.Name())
		if !hasStackExtension(name) {
			continue
		}

		matched, err := doublestar.Match(lowerPattern, name)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}

		if matched {
			files = append(files, m.Path(filepath.Join(string(root), entry.Name())))
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ReadSource implements StackFSAdapter.
func (a *LocalStackFSAdapter) ReadSource(path m.Path) (m.SourceFile, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	trailing := strings.HasSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\n")

	var lines []string
	if content != "" || trailing {
		lines = strings.Split(content, "\n")
	}

	return m.SourceFile{
		Path:            path,
		Prod:            ProdName(path),
		Lines:           lines,
		TrailingNewline: trailing,
	}, nil
}

// WriteSource implements StackFSAdapter.
func (a *LocalStackFSAdapter) WriteSource(file m.SourceFile) error {
	dir := filepath.Dir(string(file.Path))

	tmp, err := os.CreateTemp(dir, filepath.Base(string(file.Path))+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", file.Path, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.WriteString(file.Content()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to write %s: %w", file.Path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to close temp file for %s: %w", file.Path, err)
	}

	if info, err := os.Stat(string(file.Path)); err == nil {
		_ = os.Chmod(tmpName, info.Mode())
	}

	if err := os.Rename(tmpName, string(file.Path)); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to replace %s: %w", file.Path, err)
	}

	return nil
}

// ProdName derives the prod identifier from a file path: the base name
// without its yml/yaml extension.
func ProdName(path m.Path) string {
	base := filepath.Base(string(path))

	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		base = strings.TrimSuffix(base, ext)
	}

	if base == "" {
		return "unknown"
	}

	return base
}

func hasStackExtension(lowerName string) bool {
	return strings.HasSuffix(lowerName, ".yml") || strings.HasSuffix(lowerName, ".yaml")
}
