package controller

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayTagReport shows the tag hits in an interactive, filterable list.
// Short lists are printed directly without entering the alternate screen.
func (t *TUI) DisplayTagReport(result m.TagScanResult) error {
	if len(result.Hits) == 0 {
		_, err := fmt.Fprintf(t.output, "No tags found in %d file(s)\n", result.FilesScanned)

		return err
	}

	model := newBrowseModel(result)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.plainView())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayProdsWithService prints the prods a service is deployed on.
func (t *TUI) DisplayProdsWithService(service string, prods []string) error {
	if len(prods) == 0 {
		_, err := fmt.Fprintf(t.output, "Service %q not found on any prod\n", service)

		return err
	}

	_, err := fmt.Fprintf(t.output, "Service %q is on %d prod(s): %s\n",
		service, len(prods), strings.Join(prods, ", "))

	return err
}

// DisplayServicesOnProd prints the services one prod defines.
func (t *TUI) DisplayServicesOnProd(prod string, services []string) error {
	if len(services) == 0 {
		_, err := fmt.Fprintf(t.output, "No services found on prod %q\n", prod)

		return err
	}

	_, err := fmt.Fprintf(t.output, "Prod %q defines %d service(s): %s\n",
		prod, len(services), strings.Join(services, ", "))

	return err
}

// DisplayServicesSummary prints per-service prod counts.
func (t *TUI) DisplayServicesSummary(index m.ServiceIndex) error {
	for _, service := range keysByCountDesc(index.ProdsByService) {
		prods := index.ProdsByService[service]
		if _, err := fmt.Fprintf(t.output, "%s (%d): %s\n", service, len(prods), strings.Join(prods, ", ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(t.output, "Total: %d service(s) across %d file(s)\n",
		len(index.ProdsByService), index.FilesScanned)

	return err
}

// DisplayProdsSummary prints per-prod service counts.
func (t *TUI) DisplayProdsSummary(index m.ServiceIndex) error {
	for _, prod := range keysByCountDesc(index.ServicesByProd) {
		services := index.ServicesByProd[prod]
		if _, err := fmt.Fprintf(t.output, "%s (%d): %s\n", prod, len(services), strings.Join(services, ", ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(t.output, "Total: %d prod(s) across %d file(s)\n",
		len(index.ServicesByProd), index.FilesScanned)

	return err
}

// DisplayOptionsReport prints the option tokens per service and prod.
func (t *TUI) DisplayOptionsReport(result m.OptionScanResult) error {
	for _, service := range sortedNestedStringKeys(result.OptionsByService) {
		byProd := result.OptionsByService[service]
		for _, prod := range sortedStringKeys(byProd) {
			if _, err := fmt.Fprintf(t.output, "%s / %s: %s\n", service, prod, strings.Join(byProd[prod], " ")); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(t.output, "Distinct options: %d across %d of %d file(s)\n",
		len(result.DistinctOptions), result.FilesWithMatch, result.FilesScanned)

	return err
}

// DisplayServiceList prints every discovered service grouped by prod.
func (t *TUI) DisplayServiceList(servicesByProd map[string][]string) error {
	for _, prod := range sortedStringKeys(servicesByProd) {
		if _, err := fmt.Fprintf(t.output, "%s: %s\n", prod, strings.Join(servicesByProd[prod], ", ")); err != nil {
			return err
		}
	}

	return nil
}

// DisplayMutationResult prints per-file outcomes and any diff previews.
func (t *TUI) DisplayMutationResult(result m.MutationResult) error {
	for _, outcome := range result.Outcomes {
		status := formatMutationStatus(outcome, result.DryRun)
		if _, err := fmt.Fprintf(t.output, "%s -> %s\n", outcome.Prod, status); err != nil {
			return err
		}
	}

	paths := make([]string, 0, len(result.Previews))
	for path := range result.Previews {
		paths = append(paths, string(path))
	}

	sort.Strings(paths)

	for _, path := range paths {
		if _, err := fmt.Fprintf(t.output, "\n--- %s\n%s", path, result.Previews[m.Path(path)]); err != nil {
			return err
		}
	}

	return nil
}

func formatMutationStatus(outcome m.MutationOutcome, dryRun bool) string {
	switch outcome.Status {
	case m.MutationAdded:
		if dryRun {
			return fmt.Sprintf("would update line %d", outcome.Line)
		}

		return fmt.Sprintf("updated line %d", outcome.Line)
	case m.MutationAlreadyPresent:
		return "already present"
	case m.MutationNotFound:
		return "service not found"
	case m.MutationFailed:
		return fmt.Sprintf("failed: %v", outcome.Err)
	default:
		return "unknown"
	}
}
