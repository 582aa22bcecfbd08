package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/prodscan/internal/domain"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// optsCmd represents the opts command.
var optsCmd = newOptsCmd()
var optsServiceFlag string
var optsListServicesFlag bool
var optsOutputFlag string
var optsFormatFlag string

func newOptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opts [path]",
		Short: "Collect run option lists per service",
		Long:  optsLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := parseRoot(args)

			settings, err := loadSettings(root)
			if err != nil {
				return err
			}

			result, err := workflow.ScanOptions(domain.OptionScanArgs{
				Root:     root,
				Settings: settings,
				Service:  optsServiceFlag,
			})
			if err != nil {
				return err
			}

			if optsOutputFlag != "" {
				path, err := reportWriter.WriteOptionsReport(optsOutputFlag, m.ReportFormat(optsFormatFlag), result)
				if err != nil {
					return err
				}

				cmd.Printf("Report written to %s\n", path)
			}

			if quietFlag {
				return nil
			}

			if optsListServicesFlag {
				return ui.DisplayServiceList(result.ServicesByProd)
			}

			return ui.DisplayOptionsReport(result)
		},
	}
	cmd.Flags().StringVarP(&optsServiceFlag, "service", "s", "", "filter services by this name fragment")
	cmd.Flags().BoolVar(&optsListServicesFlag, "list-services", false, "list every discovered service per prod instead of options")
	cmd.Flags().StringVarP(&optsOutputFlag, "output", "o", "", "directory to write the report into")
	cmd.Flags().StringVarP(&optsFormatFlag, "format", "f", "txt", "report format: txt, csv or md")

	return cmd
}

func init() {
	rootCmd.AddCommand(optsCmd)
}
