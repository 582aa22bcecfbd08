package model

// TagOccurrence is a single tag value found inside a service block.
// Line is 1-indexed for reporting.
type TagOccurrence struct {
	Line  int
	Value string
}

// ServiceRecord accumulates the facts discovered about one service in one
// file. A second block with the same name at the same nesting level feeds
// the same record: multi-valued facts accumulate, single-valued facts keep
// the last write.
type ServiceRecord struct {
	File    Path
	Prod    string
	Name    string
	Indent  int // indentation width of the service header, first seen
	Tags    []TagOccurrence
	Options []string
}

// ServiceLocation records where a service block sits inside its file.
// StartLine is the header line, EndLine the last line of the block body,
// both 0-indexed and inclusive. A block whose header is immediately followed
// by a dedent has EndLine == StartLine (empty body).
type ServiceLocation struct {
	File      Path
	Service   string
	StartLine int
	EndLine   int
	Indent    int
}

// Empty reports whether the block has no body lines.
func (l ServiceLocation) Empty() bool {
	return l.EndLine <= l.StartLine
}
