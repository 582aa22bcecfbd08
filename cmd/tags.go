package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/prodscan/internal/controller"
	"github.com/mouse-blink/prodscan/internal/domain"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// tagsCmd represents the tags command.
var tagsCmd = newTagsCmd()
var tagsAllFlag bool
var tagsOutputFlag string
var tagsFormatFlag string
var tagsBriefFlag bool
var tagsPatternFlag string
var tagsInteractiveFlag bool

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [path]",
		Short: "Scan for service image tags",
		Long:  tagsLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := parseRoot(args)

			settings, err := loadSettings(root)
			if err != nil {
				return err
			}

			result, err := workflow.ScanTags(domain.TagScanArgs{
				Root:     root,
				Settings: settings,
				AllTags:  tagsAllFlag,
				Pattern:  tagsPatternFlag,
			})
			if err != nil {
				return err
			}

			if tagsOutputFlag != "" {
				path, err := reportWriter.WriteTagReport(tagsOutputFlag, m.ReportFormat(tagsFormatFlag), result)
				if err != nil {
					return err
				}

				cmd.Printf("Report written to %s\n", path)
			}

			if quietFlag {
				return nil
			}

			if tagsBriefFlag {
				for i := range result.Hits {
					result.Hits[i].Line = 0
				}
			}

			if tagsInteractiveFlag && controller.IsTTY(cmd.OutOrStdout()) {
				return controller.NewTUI(cmd.OutOrStdout()).DisplayTagReport(result)
			}

			return ui.DisplayTagReport(result)
		},
	}
	cmd.Flags().BoolVar(&tagsAllFlag, "all", false, "report every tag value, not only custom tags")
	cmd.Flags().StringVarP(&tagsOutputFlag, "output", "o", "", "directory to write the report into")
	cmd.Flags().StringVarP(&tagsFormatFlag, "format", "f", "txt", "report format: txt, csv or md")
	cmd.Flags().BoolVarP(&tagsBriefFlag, "brief", "b", false, "omit line numbers from the report")
	cmd.Flags().StringVar(&tagsPatternFlag, "pattern", "", "file selection glob (default from settings)")
	cmd.Flags().BoolVarP(&tagsInteractiveFlag, "interactive", "i", false, "browse results in an interactive list")

	return cmd
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
