package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/prodscan/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTagReport prints the tag hits as a table with a totals footer.
func (s *SimpleUI) DisplayTagReport(result m.TagScanResult) error {
	if len(result.Hits) == 0 {
		s.printf("No tags found in %d file(s)\n", result.FilesScanned)

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Prod", "Service", "Tag", "Line"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	for _, hit := range result.Hits {
		line := ""
		if hit.Line > 0 {
			line = fmt.Sprintf("%d", hit.Line)
		}

		table.Append([]string{hit.Prod, hit.Service, hit.Tag, line})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Files %d/%d", result.FilesWithHits, result.FilesScanned),
		"",
		fmt.Sprintf("Distinct %d", len(result.DistinctTags)),
		fmt.Sprintf("%d", len(result.Hits)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayProdsWithService prints the prods a service is deployed on.
func (s *SimpleUI) DisplayProdsWithService(service string, prods []string) error {
	if len(prods) == 0 {
		s.printf("Service %q not found on any prod\n", service)

		return nil
	}

	s.printf("Service %q is on %d prod(s):\n", service, len(prods))

	for _, prod := range prods {
		s.printf("  %s\n", prod)
	}

	return nil
}

// DisplayServicesOnProd prints the services one prod defines.
func (s *SimpleUI) DisplayServicesOnProd(prod string, services []string) error {
	if len(services) == 0 {
		s.printf("No services found on prod %q\n", prod)

		return nil
	}

	s.printf("Prod %q defines %d service(s):\n", prod, len(services))

	for _, service := range services {
		s.printf("  %s\n", service)
	}

	return nil
}

// DisplayServicesSummary prints per-service prod counts.
func (s *SimpleUI) DisplayServicesSummary(index m.ServiceIndex) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Service", "Prods", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, service := range keysByCountDesc(index.ProdsByService) {
		prods := index.ProdsByService[service]
		table.Append([]string{service, strings.Join(prods, ", "), fmt.Sprintf("%d", len(prods))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Services %d", len(index.ProdsByService)),
		"",
		fmt.Sprintf("Files %d", index.FilesScanned),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayProdsSummary prints per-prod service counts.
func (s *SimpleUI) DisplayProdsSummary(index m.ServiceIndex) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Prod", "Services", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, prod := range keysByCountDesc(index.ServicesByProd) {
		services := index.ServicesByProd[prod]
		table.Append([]string{prod, strings.Join(services, ", "), fmt.Sprintf("%d", len(services))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Prods %d", len(index.ServicesByProd)),
		"",
		fmt.Sprintf("Files %d", index.FilesScanned),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayOptionsReport prints the option tokens per service and prod.
func (s *SimpleUI) DisplayOptionsReport(result m.OptionScanResult) error {
	if len(result.OptionsByService) == 0 {
		s.printf("No options found in %d file(s)\n", result.FilesScanned)

		return nil
	}

	for _, service := range sortedNestedStringKeys(result.OptionsByService) {
		s.printf("%s:\n", service)

		byProd := result.OptionsByService[service]
		for _, prod := range sortedStringKeys(byProd) {
			s.printf("  %s:\n", prod)

			for _, option := range byProd[prod] {
				s.printf("    %s\n", option)
			}
		}
	}

	s.printf("\nDistinct options: %d across %d of %d file(s)\n",
		len(result.DistinctOptions), result.FilesWithMatch, result.FilesScanned)

	return nil
}

// DisplayServiceList prints every discovered service grouped by prod.
func (s *SimpleUI) DisplayServiceList(servicesByProd map[string][]string) error {
	for _, prod := range sortedStringKeys(servicesByProd) {
		s.printf("%s:\n", prod)

		for _, service := range servicesByProd[prod] {
			s.printf("  %s\n", service)
		}
	}

	return nil
}

// DisplayMutationResult prints per-file outcomes and any diff previews.
func (s *SimpleUI) DisplayMutationResult(result m.MutationResult) error {
	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case m.MutationAdded:
			verb := "updated"
			if result.DryRun {
				verb = "would update"
			}

			s.printf("%s: %s line %d\n", outcome.Prod, verb, outcome.Line)
		case m.MutationAlreadyPresent:
			s.printf("%s: already present\n", outcome.Prod)
		case m.MutationNotFound:
			s.printf("%s: service not found\n", outcome.Prod)
		case m.MutationFailed:
			s.printf("%s: failed: %v\n", outcome.Prod, outcome.Err)
		}
	}

	if len(result.Previews) > 0 {
		paths := make([]string, 0, len(result.Previews))
		for path := range result.Previews {
			paths = append(paths, string(path))
		}

		sort.Strings(paths)

		for _, path := range paths {
			s.printf("\n--- %s\n%s", path, result.Previews[m.Path(path)])
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// keysByCountDesc orders summary rows by descending value count, ties by
// name.
func keysByCountDesc(set map[string][]string) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(set[keys[i]]) != len(set[keys[j]]) {
			return len(set[keys[i]]) > len(set[keys[j]])
		}

		return keys[i] < keys[j]
	})

	return keys
}

func sortedStringKeys(set map[string][]string) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func sortedNestedStringKeys(set map[string]map[string][]string) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
