package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// ServiceCSVMode selects which projection of the service index a CSV export
// contains.
type ServiceCSVMode string

const (
	// CSVModeServices exports one row per (service, prod) pair.
	CSVModeServices ServiceCSVMode = "services"
	// CSVModeProds exports one row per prod with its service list.
	CSVModeProds ServiceCSVMode = "prods"
	// CSVModeSummary exports per-service prod counts.
	CSVModeSummary ServiceCSVMode = "summary"
)

// ReportWriter persists scan results as text, CSV or markdown files.
type ReportWriter interface {
	WriteTagReport(dir string, format m.ReportFormat, result m.TagScanResult) (m.Path, error)
	WriteServiceCSV(dir string, mode ServiceCSVMode, index m.ServiceIndex) (m.Path, error)
	WriteOptionsReport(dir string, format m.ReportFormat, result m.OptionScanResult) (m.Path, error)
}

// LocalReportWriter writes reports into a directory on disk, creating it on
// first use.
type LocalReportWriter struct{}

// NewLocalReportWriter constructs a LocalReportWriter.
func NewLocalReportWriter() *LocalReportWriter {
	return &LocalReportWriter{}
}

// WriteTagReport implements ReportWriter.
func (w *LocalReportWriter) WriteTagReport(dir string, format m.ReportFormat, result m.TagScanResult) (m.Path, error) {
	path, err := reportPath(dir, "custom_tags", format)
	if err != nil {
		return "", err
	}

	switch format {
	case m.FormatCSV:
		rows := make([][]string, 0, len(result.Hits))
		for _, hit := range result.Hits {
			rows = append(rows, []string{string(hit.File), hit.Prod, hit.Service, hit.Tag, strconv.Itoa(hit.Line)})
		}

		err = writeCSV(path, []string{"file", "prod", "service", "tag", "line"}, rows)
	case m.FormatMarkdown:
		err = writeFile(path, renderTagMarkdown(result))
	default:
		err = writeFile(path, renderTagText(result))
	}

	if err != nil {
		return "", err
	}

	return path, nil
}

// WriteServiceCSV implements ReportWriter.
func (w *LocalReportWriter) WriteServiceCSV(dir string, mode ServiceCSVMode, index m.ServiceIndex) (m.Path, error) {
	path, err := reportPath(dir, "services_"+string(mode), m.FormatCSV)
	if err != nil {
		return "", err
	}

	var (
		header []string
		rows   [][]string
	)

	switch mode {
	case CSVModeProds:
		header = []string{"prod", "service_count", "services"}
		for _, prod := range sortedMapKeys(index.ServicesByProd) {
			services := index.ServicesByProd[prod]
			rows = append(rows, []string{prod, strconv.Itoa(len(services)), strings.Join(services, "; ")})
		}
	case CSVModeSummary:
		header = []string{"service", "prod_count", "prods"}
		for _, service := range sortedMapKeys(index.ProdsByService) {
			prods := index.ProdsByService[service]
			rows = append(rows, []string{service, strconv.Itoa(len(prods)), strings.Join(prods, "; ")})
		}
	default:
		header = []string{"service", "prod"}
		for _, service := range sortedMapKeys(index.ProdsByService) {
			for _, prod := range index.ProdsByService[service] {
				rows = append(rows, []string{service, prod})
			}
		}
	}

	if err := writeCSV(path, header, rows); err != nil {
		return "", err
	}

	return path, nil
}

// WriteOptionsReport implements ReportWriter.
func (w *LocalReportWriter) WriteOptionsReport(dir string, format m.ReportFormat, result m.OptionScanResult) (m.Path, error) {
	path, err := reportPath(dir, "run_opts", format)
	if err != nil {
		return "", err
	}

	switch format {
	case m.FormatCSV:
		var rows [][]string
		for _, service := range sortedNestedKeys(result.OptionsByService) {
			byProd := result.OptionsByService[service]
			for _, prod := range sortedMapKeys(byProd) {
				rows = append(rows, []string{service, prod, strings.Join(byProd[prod], " ")})
			}
		}

		err = writeCSV(path, []string{"service", "prod", "options"}, rows)
	case m.FormatMarkdown:
		err = writeFile(path, renderOptionsMarkdown(result))
	default:
		err = writeFile(path, renderOptionsText(result))
	}

	if err != nil {
		return "", err
	}

	return path, nil
}

func renderTagText(result m.TagScanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Custom tags: %d hits across %d of %d files\n\n", len(result.Hits), result.FilesWithHits, result.FilesScanned)

	for _, hit := range result.Hits {
		fmt.Fprintf(&b, "%s:%d  %s / %s  ->  %s\n", hit.File, hit.Line, hit.Prod, hit.Service, hit.Tag)
	}

	if len(result.DistinctTags) > 0 {
		b.WriteString("\nDistinct tags:\n")

		for _, tag := range result.DistinctTags {
			fmt.Fprintf(&b, "  %s\n", tag)
		}
	}

	return b.String()
}

func renderTagMarkdown(result m.TagScanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Custom tags\n\n%d hits across %d of %d files\n\n", len(result.Hits), result.FilesWithHits, result.FilesScanned)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"File", "Prod", "Service", "Tag", "Line"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)

	for _, hit := range result.Hits {
		table.Append([]string{string(hit.File), hit.Prod, hit.Service, hit.Tag, strconv.Itoa(hit.Line)})
	}

	table.Render()

	return b.String()
}

func renderOptionsText(result m.OptionScanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run options: %d services with options across %d of %d files\n\n", len(result.OptionsByService), result.FilesWithMatch, result.FilesScanned)

	for _, service := range sortedNestedKeys(result.OptionsByService) {
		fmt.Fprintf(&b, "%s:\n", service)

		byProd := result.OptionsByService[service]
		for _, prod := range sortedMapKeys(byProd) {
			fmt.Fprintf(&b, "  %s: %s\n", prod, strings.Join(byProd[prod], " "))
		}
	}

	if len(result.DistinctOptions) > 0 {
		b.WriteString("\nDistinct options:\n")

		for _, option := range result.DistinctOptions {
			fmt.Fprintf(&b, "  %s\n", option)
		}
	}

	return b.String()
}

func renderOptionsMarkdown(result m.OptionScanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run options\n\n")

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Service", "Prod", "Options"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)

	for _, service := range sortedNestedKeys(result.OptionsByService) {
		byProd := result.OptionsByService[service]
		for _, prod := range sortedMapKeys(byProd) {
			table.Append([]string{service, prod, strings.Join(byProd[prod], " ")})
		}
	}

	table.Render()

	return b.String()
}

func reportPath(dir, stem string, format m.ReportFormat) (m.Path, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report dir %s: %w", dir, err)
	}

	return m.Path(filepath.Join(dir, stem+"."+string(format))), nil
}

func writeFile(path m.Path, content string) error {
	if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

func writeCSV(path m.Path, header []string, rows [][]string) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report %s: %w", path, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

func sortedMapKeys(set map[string][]string) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func sortedNestedKeys(set map[string]map[string][]string) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
