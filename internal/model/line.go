package model

// LineKind is the category a physical line falls into.
type LineKind int

const (
	// LineBlank covers empty lines and comment lines.
	LineBlank LineKind = iota
	// LineBlockHeader is a "key:" or "- key:" line with nothing after the
	// colon, or an explicit "name: x" / "- name: x" declaration. It carries
	// the block name.
	LineBlockHeader
	// LineStructuralHeader is a block header whose key belongs to the
	// exclusion vocabulary. It never names a service but still drives
	// indentation bookkeeping.
	LineStructuralHeader
	// LineScalar is a "key: value" line.
	LineScalar
	// LineOther is anything the scanner does not recognize.
	LineOther
)

// ClassifiedLine is the ephemeral result of classifying one raw line.
type ClassifiedLine struct {
	Raw    string
	Indent int
	Kind   LineKind
	// Name is the block name for header kinds (including structural ones,
	// so the tracker can match the root block).
	Name string
	// Key and Value are set for scalar lines. Value is trimmed and
	// quote-stripped.
	Key   string
	Value string
	// ListItem reports whether the line was prefixed with a "- " marker.
	ListItem bool
}
