package model

// ReportFormat selects an export renderer.
type ReportFormat string

const (
	// FormatText is the plain text report.
	FormatText ReportFormat = "txt"
	// FormatCSV is comma-separated values with RFC 4180 quoting.
	FormatCSV ReportFormat = "csv"
	// FormatMarkdown renders Markdown sections and tables.
	FormatMarkdown ReportFormat = "md"
)

// TagHit is one reported (file, service, tag) finding.
type TagHit struct {
	File    Path
	Prod    string
	Service string
	Tag     string
	Line    int // 1-indexed
}

// TagScanResult is the outcome of scanning a directory for tags.
type TagScanResult struct {
	Hits          []TagHit
	FilesScanned  int
	FilesWithHits int
	// DistinctTags holds every distinct tag value seen across all files,
	// sorted, for deduplicated reporting.
	DistinctTags []string
}

// ServiceIndex is the bidirectional service/prod map built by a scan.
// Values are sorted and deduplicated.
type ServiceIndex struct {
	ProdsByService map[string][]string
	ServicesByProd map[string][]string
	FilesScanned   int
}

// OptionScanResult is the outcome of scanning option lists.
type OptionScanResult struct {
	// OptionsByService maps service name -> prod name -> option tokens in
	// file order.
	OptionsByService map[string]map[string][]string
	// ServicesByProd lists every discovered service per prod, matched by
	// the filter or not, for --list-services output.
	ServicesByProd map[string][]string
	// DistinctOptions holds every distinct option token, sorted.
	DistinctOptions []string
	FilesScanned    int
	FilesWithMatch  int
}

// MutationResult is the outcome of one mutation batch across files.
type MutationResult struct {
	Outcomes []MutationOutcome
	// Previews maps file path to a unified-style diff of the planned
	// change, populated for dry runs and applied runs alike.
	Previews     map[Path]string
	FilesScanned int
	DryRun       bool
}
