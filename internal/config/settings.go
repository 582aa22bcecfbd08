// Package config loads the scanner vocabulary from an optional
// .prodscan.yaml file. Every field has a default that reproduces the
// behavior of the scripts this tool replaces.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-directory settings file looked up before falling back
// to defaults.
const FileName = ".prodscan.yaml"

// Settings is the externally configurable part of the scanner: the root
// block name, the structural-keyword vocabulary and the field names of
// interest. The exclusion vocabulary is deliberately a flat word list; there
// is no principled boundary between structural keywords and service names in
// the scanned format, so the list stays editable instead of hardcoded.
type Settings struct {
	RootBlock     string   `yaml:"root_block"`
	ExcludedKeys  []string `yaml:"excluded_keys"`
	TagField      string   `yaml:"tag_field"`
	OptionsField  string   `yaml:"options_field"`
	ProfilesField string   `yaml:"profiles_field"`
	// GenericTags are tag values never considered custom (latest, stable…).
	GenericTags []string `yaml:"generic_tags"`
	// ExcludedServiceSuffixes drops matching services from tag reports.
	ExcludedServiceSuffixes []string `yaml:"excluded_service_suffixes"`
	FilePattern             string   `yaml:"file_pattern"`
	IndentStep              int      `yaml:"indent_step"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		RootBlock: "services",
		ExcludedKeys: []string{
			"services", "volumes", "networks", "configs", "secrets",
			"environment", "labels", "ports", "image", "deploy",
			"version", "build", "depends_on", "restart", "command",
			"entrypoint", "healthcheck", "logging",
		},
		TagField:      "tag",
		OptionsField:  "jvm_run_opts",
		ProfilesField: "active_profiles",
		GenericTags: []string{
			"latest", "stable", "production", "main", "master", "develop",
		},
		ExcludedServiceSuffixes: []string{"-limited"},
		FilePattern:             "*.{yml,yaml}",
		IndentStep:              2,
	}
}

// Load reads settings from the given file and merges them onto the defaults.
// Unknown keys are an error so typos do not silently fall back.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	var loaded Settings

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return merge(Default(), loaded), nil
}

// Discover resolves the effective settings for a scan rooted at dir.
// An explicit path wins; otherwise dir and the working directory are
// checked for the settings file; otherwise the defaults apply.
func Discover(dir string, explicit string) (Settings, error) {
	if explicit != "" {
		return Load(explicit)
	}

	candidates := []string{filepath.Join(dir, FileName), FileName}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}

	return Default(), nil
}

func merge(base, loaded Settings) Settings {
	if loaded.RootBlock != "" {
		base.RootBlock = loaded.RootBlock
	}

	if loaded.ExcludedKeys != nil {
		base.ExcludedKeys = loaded.ExcludedKeys
	}

	if loaded.TagField != "" {
		base.TagField = loaded.TagField
	}

	if loaded.OptionsField != "" {
		base.OptionsField = loaded.OptionsField
	}

	if loaded.ProfilesField != "" {
		base.ProfilesField = loaded.ProfilesField
	}

	if loaded.GenericTags != nil {
		base.GenericTags = loaded.GenericTags
	}

	if loaded.ExcludedServiceSuffixes != nil {
		base.ExcludedServiceSuffixes = loaded.ExcludedServiceSuffixes
	}

	if loaded.FilePattern != "" {
		base.FilePattern = loaded.FilePattern
	}

	if loaded.IndentStep > 0 {
		base.IndentStep = loaded.IndentStep
	}

	return base
}
