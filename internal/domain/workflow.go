package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/prodscan/internal/adapter"
	"github.com/mouse-blink/prodscan/internal/config"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// TagScanArgs parameterizes one tag scan over a prod directory.
type TagScanArgs struct {
	Root     m.Path
	Settings config.Settings
	// AllTags disables the custom-tag filter and reports every tag value.
	AllTags bool
	// Pattern overrides the settings file pattern when non-empty.
	Pattern string
}

// ServiceQueryArgs parameterizes building the service/prod index.
type ServiceQueryArgs struct {
	Root     m.Path
	Settings config.Settings
}

// OptionScanArgs parameterizes one option scan.
type OptionScanArgs struct {
	Root     m.Path
	Settings config.Settings
	// Service filters the result by case-insensitive substring; empty
	// means all services.
	Service string
}

// AddProfileArgs parameterizes one mutation batch that ensures a value's
// membership in the profile list of every matching service across every
// matching file. Service is a case-insensitive substring filter.
type AddProfileArgs struct {
	Root     m.Path
	Settings config.Settings
	Service  string
	Value    string
	DryRun   bool
}

// Workflow is the use-case surface of the scanner. Implementations process
// files strictly sequentially in lexicographic path order so results and
// mutations are deterministic.
type Workflow interface {
	ScanTags(args TagScanArgs) (m.TagScanResult, error)
	QueryServices(args ServiceQueryArgs) (m.ServiceIndex, error)
	ScanOptions(args OptionScanArgs) (m.OptionScanResult, error)
	AddProfile(args AddProfileArgs) (m.MutationResult, error)
}

type workflow struct {
	fs      adapter.StackFSAdapter
	applier *adapter.EditApplier
	log     zerolog.Logger
}

// NewWorkflow wires the use cases over the given filesystem port.
func NewWorkflow(fs adapter.StackFSAdapter, applier *adapter.EditApplier, log zerolog.Logger) Workflow {
	return &workflow{fs: fs, applier: applier, log: log}
}

// ScanTags implements Workflow.
func (w *workflow) ScanTags(args TagScanArgs) (m.TagScanResult, error) {
	pattern := args.Pattern
	if pattern == "" {
		pattern = args.Settings.FilePattern
	}

	files, err := w.fs.DiscoverFiles(args.Root, pattern)
	if err != nil {
		return m.TagScanResult{}, err
	}

	scanner := NewFileScanner(vocabulary(args.Settings))
	tags := NewTagClassifier(args.Settings.GenericTags)
	agg := NewAggregator()

	var result m.TagScanResult

	distinct := make(map[string]struct{})

	for _, path := range files {
		file, err := w.fs.ReadSource(path)
		if err != nil {
			w.log.Warn().Err(err).Str("file", string(path)).Msg("skipping unreadable file")
			continue
		}

		result.FilesScanned++

		facts := scanner.Scan(file, agg)
		hitsBefore := len(result.Hits)

		for _, record := range facts.Services() {
			if hasExcludedSuffix(record.Name, args.Settings.ExcludedServiceSuffixes) {
				continue
			}

			for _, occurrence := range record.Tags {
				if !args.AllTags && !tags.IsCustom(occurrence.Value) {
					continue
				}

				result.Hits = append(result.Hits, m.TagHit{
					File:    path,
					Prod:    record.Prod,
					Service: record.Name,
					Tag:     occurrence.Value,
					Line:    occurrence.Line,
				})
				distinct[occurrence.Value] = struct{}{}
			}
		}

		if len(result.Hits) > hitsBefore {
			result.FilesWithHits++
		}
	}

	if args.AllTags {
		result.DistinctTags = agg.DistinctTags()
	} else {
		result.DistinctTags = sortedKeys(distinct)
	}

	return result, nil
}

// QueryServices implements Workflow.
func (w *workflow) QueryServices(args ServiceQueryArgs) (m.ServiceIndex, error) {
	files, err := w.fs.DiscoverFiles(args.Root, args.Settings.FilePattern)
	if err != nil {
		return m.ServiceIndex{}, err
	}

	scanner := NewFileScanner(vocabulary(args.Settings))

	index := m.ServiceIndex{
		ProdsByService: make(map[string][]string),
		ServicesByProd: make(map[string][]string),
	}

	for _, path := range files {
		file, err := w.fs.ReadSource(path)
		if err != nil {
			w.log.Warn().Err(err).Str("file", string(path)).Msg("skipping unreadable file")
			continue
		}

		index.FilesScanned++

		for _, record := range scanner.Scan(file, nil).Services() {
			if hasExcludedSuffix(record.Name, args.Settings.ExcludedServiceSuffixes) {
				continue
			}

			index.ProdsByService[record.Name] = appendUnique(index.ProdsByService[record.Name], record.Prod)
			index.ServicesByProd[record.Prod] = appendUnique(index.ServicesByProd[record.Prod], record.Name)
		}
	}

	for _, prods := range index.ProdsByService {
		sort.Strings(prods)
	}

	for _, services := range index.ServicesByProd {
		sort.Strings(services)
	}

	return index, nil
}

// ScanOptions implements Workflow.
func (w *workflow) ScanOptions(args OptionScanArgs) (m.OptionScanResult, error) {
	files, err := w.fs.DiscoverFiles(args.Root, args.Settings.FilePattern)
	if err != nil {
		return m.OptionScanResult{}, err
	}

	scanner := NewFileScanner(vocabulary(args.Settings))
	agg := NewAggregator()

	result := m.OptionScanResult{
		OptionsByService: make(map[string]map[string][]string),
		ServicesByProd:   make(map[string][]string),
	}

	for _, path := range files {
		file, err := w.fs.ReadSource(path)
		if err != nil {
			w.log.Warn().Err(err).Str("file", string(path)).Msg("skipping unreadable file")
			continue
		}

		result.FilesScanned++
		matched := false

		for _, record := range scanner.Scan(file, agg).Services() {
			result.ServicesByProd[record.Prod] = appendUnique(result.ServicesByProd[record.Prod], record.Name)

			if !matchesService(record.Name, args.Service) {
				continue
			}

			if len(record.Options) == 0 {
				continue
			}

			byProd := result.OptionsByService[record.Name]
			if byProd == nil {
				byProd = make(map[string][]string)
				result.OptionsByService[record.Name] = byProd
			}

			byProd[record.Prod] = append(byProd[record.Prod], record.Options...)
			matched = true
		}

		if matched {
			result.FilesWithMatch++
		}
	}

	for _, services := range result.ServicesByProd {
		sort.Strings(services)
	}

	result.DistinctOptions = agg.DistinctOptions()

	return result, nil
}

// AddProfile implements Workflow.
func (w *workflow) AddProfile(args AddProfileArgs) (m.MutationResult, error) {
	if args.Service == "" {
		return m.MutationResult{}, fmt.Errorf("service name is required")
	}

	if args.Value == "" {
		return m.MutationResult{}, fmt.Errorf("profile value is required")
	}

	files, err := w.fs.DiscoverFiles(args.Root, args.Settings.FilePattern)
	if err != nil {
		return m.MutationResult{}, err
	}

	scanner := NewFileScanner(vocabulary(args.Settings))

	result := m.MutationResult{
		Previews: make(map[m.Path]string),
		DryRun:   args.DryRun,
	}

	for _, path := range files {
		file, err := w.fs.ReadSource(path)
		if err != nil {
			w.log.Warn().Err(err).Str("file", string(path)).Msg("skipping unreadable file")
			result.Outcomes = append(result.Outcomes, m.MutationOutcome{
				File: path, Prod: ProdFromPath(path), Status: m.MutationFailed, Err: err,
			})

			continue
		}

		result.FilesScanned++

		outcomes, preview := w.mutateFile(file, scanner, args)
		result.Outcomes = append(result.Outcomes, outcomes...)

		if preview != "" {
			result.Previews[path] = preview
		}
	}

	return result, nil
}

// mutateFile scans one file, plans one edit per matching service and applies
// them as a single batch. The rewritten file is persisted only when the
// batch actually changed bytes and the run is not a dry run.
func (w *workflow) mutateFile(file m.SourceFile, scanner *FileScanner, args AddProfileArgs) ([]m.MutationOutcome, string) {
	facts := scanner.Scan(file, nil)
	planner := NewPlanner(facts, args.Settings.IndentStep)

	var (
		outcomes []m.MutationOutcome
		edits    []m.Edit
	)

	for _, record := range facts.Services() {
		if !matchesService(record.Name, args.Service) {
			continue
		}

		outcome := m.MutationOutcome{File: file.Path, Prod: file.Prod, Service: record.Name}

		edit, status, err := planner.EnsureListMember(file, record.Name, args.Settings.ProfilesField, args.Value)

		switch {
		case err != nil:
			outcome.Status = m.MutationNotFound
			outcome.Err = err
		case status == PlanAlreadyPresent:
			outcome.Status = m.MutationAlreadyPresent
		default:
			outcome.Status = m.MutationAdded

			outcome.Line = edit.Line + 1
			if edit.Action == m.EditInsertAfter {
				outcome.Line = edit.Line + 2
			}

			edits = append(edits, edit)
		}

		outcomes = append(outcomes, outcome)
	}

	if len(outcomes) == 0 {
		return []m.MutationOutcome{{
			File:    file.Path,
			Prod:    file.Prod,
			Service: args.Service,
			Status:  m.MutationNotFound,
			Err:     fmt.Errorf("%w: %s in %s", ErrLocationNotFound, args.Service, file.Path),
		}}, ""
	}

	if len(edits) == 0 {
		return outcomes, ""
	}

	applied, err := w.applier.Apply(file, edits)
	if err != nil {
		failAdded(outcomes, err)

		return outcomes, ""
	}

	preview := adapter.UnifiedPreview(applied.Before, applied.After)

	if applied.Changed && !args.DryRun {
		if err := w.fs.WriteSource(applied.File); err != nil {
			failAdded(outcomes, err)

			return outcomes, preview
		}
	}

	return outcomes, preview
}

// failAdded downgrades every planned-but-unpersisted outcome after a batch
// level failure.
func failAdded(outcomes []m.MutationOutcome, err error) {
	for i := range outcomes {
		if outcomes[i].Status == m.MutationAdded {
			outcomes[i].Status = m.MutationFailed
			outcomes[i].Err = err
		}
	}
}

// ProdFromPath mirrors the FS adapter's prod naming for paths that could not
// be read.
func ProdFromPath(path m.Path) string {
	return adapter.ProdName(path)
}

func vocabulary(settings config.Settings) ScanVocabulary {
	return ScanVocabulary{
		RootBlock:    settings.RootBlock,
		ExcludedKeys: settings.ExcludedKeys,
		TagField:     settings.TagField,
		OptionsField: settings.OptionsField,
	}
}

// matchesService is the case-insensitive substring filter used by the
// option scan and the mutator. An empty filter matches everything.
func matchesService(name, filter string) bool {
	if filter == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func hasExcludedSuffix(service string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(service, suffix) {
			return true
		}
	}

	return false
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}

	return append(values, value)
}
