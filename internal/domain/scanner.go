package domain

import (
	"sort"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// ScanVocabulary is the slice of settings the file scanner needs. Field
// names are matched exactly; the exclusion vocabulary feeds the classifier.
type ScanVocabulary struct {
	RootBlock    string
	ExcludedKeys []string
	TagField     string
	OptionsField string
}

// FileFacts is everything one scan pass discovers about a single file:
// typed service records in first-seen order plus the recorded block
// locations.
type FileFacts struct {
	File     m.Path
	Prod     string
	order    []string
	services map[string]*m.ServiceRecord
	location map[string]m.ServiceLocation
}

// Services returns the discovered records in first-seen order.
func (f *FileFacts) Services() []m.ServiceRecord {
	records := make([]m.ServiceRecord, 0, len(f.order))
	for _, name := range f.order {
		records = append(records, *f.services[name])
	}

	return records
}

// Location looks up the recorded block range for a service. The second
// return distinguishes "not found" from a found-but-empty block, which
// callers can check with ServiceLocation.Empty.
func (f *FileFacts) Location(service string) (m.ServiceLocation, bool) {
	location, ok := f.location[service]
	return location, ok
}

// Aggregator accumulates the cross-file deduplication sets. It is created
// once per run and passed explicitly into each file's scan; append-only
// during scanning, read afterwards.
type Aggregator struct {
	tags    map[string]struct{}
	options map[string]struct{}
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		tags:    make(map[string]struct{}),
		options: make(map[string]struct{}),
	}
}

// DistinctTags returns every tag value seen, sorted.
func (a *Aggregator) DistinctTags() []string {
	return sortedKeys(a.tags)
}

// DistinctOptions returns every option token seen, sorted.
func (a *Aggregator) DistinctOptions() []string {
	return sortedKeys(a.options)
}

// FileScanner runs the classifier and tracker over whole files and collects
// typed facts about the services they define.
type FileScanner struct {
	vocab      ScanVocabulary
	classifier *Classifier
}

// NewFileScanner builds a scanner for the given vocabulary.
func NewFileScanner(vocab ScanVocabulary) *FileScanner {
	return &FileScanner{
		vocab:      vocab,
		classifier: NewClassifier(vocab.ExcludedKeys),
	}
}

// Scan streams the file's lines through the tracker once, recording service
// names, tag occurrences, option tokens and block locations. agg may be nil
// when no cross-file deduplication is wanted.
func (s *FileScanner) Scan(file m.SourceFile, agg *Aggregator) *FileFacts {
	facts := &FileFacts{
		File:     file.Path,
		Prod:     file.Prod,
		services: make(map[string]*m.ServiceRecord),
		location: make(map[string]m.ServiceLocation),
	}

	tracker := NewTracker(s.vocab.RootBlock)

	for idx, raw := range file.Lines {
		line := s.classifier.Classify(raw)

		event := tracker.Feed(idx, line)
		s.recordEvent(facts, event)

		if event.Opened {
			s.openService(facts, file, line, idx)
			continue
		}

		if line.Kind != m.LineScalar {
			continue
		}

		name, indent, ok := tracker.InService()
		if !ok || line.Indent <= indent {
			continue
		}

		s.recordScalar(facts, name, line, idx, agg)
	}

	s.recordEvent(facts, tracker.Finish(len(file.Lines)-1))

	return facts
}

// recordEvent finalizes a closed block location. A later block with the
// same name overwrites the earlier range.
func (s *FileScanner) recordEvent(facts *FileFacts, event TrackerEvent) {
	if event.Closed == nil {
		return
	}

	location := *event.Closed
	location.File = facts.File
	facts.location[location.Service] = location
}

func (s *FileScanner) openService(facts *FileFacts, file m.SourceFile, line m.ClassifiedLine, idx int) {
	if _, ok := facts.services[line.Name]; ok {
		return
	}

	facts.services[line.Name] = &m.ServiceRecord{
		File:   file.Path,
		Prod:   file.Prod,
		Name:   line.Name,
		Indent: line.Indent,
	}
	facts.order = append(facts.order, line.Name)
}

func (s *FileScanner) recordScalar(facts *FileFacts, service string, line m.ClassifiedLine, idx int, agg *Aggregator) {
	record := facts.services[service]
	if record == nil {
		return
	}

	switch line.Key {
	case s.vocab.TagField:
		record.Tags = append(record.Tags, m.TagOccurrence{
			Line:  idx + 1,
			Value: line.Value,
		})

		if agg != nil {
			agg.tags[line.Value] = struct{}{}
		}
	case s.vocab.OptionsField:
		options := SplitOptions(line.Value)
		record.Options = append(record.Options, options...)

		if agg != nil {
			for _, option := range options {
				agg.options[option] = struct{}{}
			}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
