package domain

import (
	"regexp"
	"strings"
)

var (
	semverRe = regexp.MustCompile(`^v?\d+\.\d+(\.\d+)?(-\w+)?$`)
	hashRe   = regexp.MustCompile(`^(?i)[0-9a-f]{7,40}$`)
)

// defaultGenericTags mirrors the word list the classifier scripts rejected.
var defaultGenericTags = []string{
	"latest", "stable", "production", "main", "master", "develop",
}

// TagClassifier decides whether a tag value is deployment-significant.
type TagClassifier struct {
	generic map[string]struct{}
}

// NewTagClassifier builds a classifier with the given generic word list;
// nil means the default list.
func NewTagClassifier(genericTags []string) *TagClassifier {
	if genericTags == nil {
		genericTags = defaultGenericTags
	}

	generic := make(map[string]struct{}, len(genericTags))
	for _, tag := range genericTags {
		generic[strings.ToLower(tag)] = struct{}{}
	}

	return &TagClassifier{generic: generic}
}

// IsCustom reports whether a tag is custom: not a semantic version, not a
// commit hash, not a generic label, and containing a path separator. It is
// total over arbitrary strings.
func (tc *TagClassifier) IsCustom(tag string) bool {
	tag = strings.Trim(strings.TrimSpace(tag), `"'`)

	if semverRe.MatchString(tag) {
		return false
	}

	if hashRe.MatchString(tag) {
		return false
	}

	if _, ok := tc.generic[strings.ToLower(tag)]; ok {
		return false
	}

	return strings.Contains(tag, "/")
}
