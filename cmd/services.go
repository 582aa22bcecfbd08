package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/prodscan/internal/adapter"
	"github.com/mouse-blink/prodscan/internal/domain"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// servicesCmd represents the services command.
var servicesCmd = newServicesCmd()
var servicesServiceFlag string
var servicesProdFlag string
var servicesSummaryFlag bool
var prodsSummaryFlag bool
var servicesOutputFlag string
var servicesCSVModeFlag string

func newServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services [path]",
		Short: "Query the service/prod relationship",
		Long:  servicesLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if servicesServiceFlag == "" && servicesProdFlag == "" &&
				!servicesSummaryFlag && !prodsSummaryFlag && servicesOutputFlag == "" {
				return fmt.Errorf("pick a mode: --service, --prod, --services-summary or --prods-summary")
			}

			root := parseRoot(args)

			settings, err := loadSettings(root)
			if err != nil {
				return err
			}

			index, err := workflow.QueryServices(domain.ServiceQueryArgs{
				Root:     root,
				Settings: settings,
			})
			if err != nil {
				return err
			}

			if servicesOutputFlag != "" {
				path, err := reportWriter.WriteServiceCSV(servicesOutputFlag, adapter.ServiceCSVMode(servicesCSVModeFlag), index)
				if err != nil {
					return err
				}

				cmd.Printf("Report written to %s\n", path)
			}

			if quietFlag {
				return nil
			}

			return displayServiceQuery(index)
		},
	}
	cmd.Flags().StringVarP(&servicesServiceFlag, "service", "s", "", "show prods running services matching this name fragment")
	cmd.Flags().StringVar(&servicesProdFlag, "prod", "", "show services defined on this prod")
	cmd.Flags().BoolVar(&servicesSummaryFlag, "services-summary", false, "show per-service prod counts")
	cmd.Flags().BoolVar(&prodsSummaryFlag, "prods-summary", false, "show per-prod service counts")
	cmd.Flags().StringVarP(&servicesOutputFlag, "output", "o", "", "directory to write a CSV report into")
	cmd.Flags().StringVar(&servicesCSVModeFlag, "csv-mode", "services", "CSV projection: services, prods or summary")

	return cmd
}

func displayServiceQuery(index m.ServiceIndex) error {
	if servicesServiceFlag != "" {
		if err := displayServiceMatches(index); err != nil {
			return err
		}
	}

	if servicesProdFlag != "" {
		if err := displayProdServices(index); err != nil {
			return err
		}
	}

	if servicesSummaryFlag {
		if err := ui.DisplayServicesSummary(index); err != nil {
			return err
		}
	}

	if prodsSummaryFlag {
		return ui.DisplayProdsSummary(index)
	}

	return nil
}

func displayServiceMatches(index m.ServiceIndex) error {
	fragment := strings.ToLower(servicesServiceFlag)
	matched := false

	names := make([]string, 0, len(index.ProdsByService))
	for name := range index.ProdsByService {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if !strings.Contains(strings.ToLower(name), fragment) {
			continue
		}

		matched = true

		if err := ui.DisplayProdsWithService(name, index.ProdsByService[name]); err != nil {
			return err
		}
	}

	if !matched {
		return ui.DisplayProdsWithService(servicesServiceFlag, nil)
	}

	return nil
}

func displayProdServices(index m.ServiceIndex) error {
	services, ok := index.ServicesByProd[servicesProdFlag]
	if !ok {
		available := make([]string, 0, len(index.ServicesByProd))
		for prod := range index.ServicesByProd {
			available = append(available, prod)
		}

		sort.Strings(available)

		if len(available) > 10 {
			available = available[:10]
		}

		return fmt.Errorf("prod %q not found; available: %s", servicesProdFlag, strings.Join(available, ", "))
	}

	return ui.DisplayServicesOnProd(servicesProdFlag, services)
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
