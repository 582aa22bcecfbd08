package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/prodscan/internal/domain"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// profilesCmd represents the profiles command group.
var profilesCmd = newProfilesCmd()
var profilesAddCmd = newProfilesAddCmd()
var profilesServiceFlag string
var profilesDryRunFlag bool

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Manage service profile lists",
		Long:  profilesLongDescription,
	}
}

func newProfilesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add VALUE [path]",
		Short: "Ensure a value is in each matching service's profile list",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			root := m.Path(".")
			if len(args) > 1 {
				root = m.Path(args[1])
			}

			settings, err := loadSettings(root)
			if err != nil {
				return err
			}

			result, err := workflow.AddProfile(domain.AddProfileArgs{
				Root:     root,
				Settings: settings,
				Service:  profilesServiceFlag,
				Value:    args[0],
				DryRun:   profilesDryRunFlag,
			})
			if err != nil {
				return err
			}

			if !quietFlag {
				if err := ui.DisplayMutationResult(result); err != nil {
					return err
				}
			}

			return firstFailure(result)
		},
	}
	cmd.Flags().StringVarP(&profilesServiceFlag, "service", "s", "", "apply to services matching this name fragment (required)")
	cmd.Flags().BoolVar(&profilesDryRunFlag, "dry-run", false, "preview planned edits without writing")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}

// firstFailure surfaces a batch-level error when any file could not be
// rewritten, so the process exits non-zero.
func firstFailure(result m.MutationResult) error {
	for _, outcome := range result.Outcomes {
		if outcome.Status == m.MutationFailed {
			return fmt.Errorf("mutation failed for %s: %w", outcome.File, outcome.Err)
		}
	}

	return nil
}

func init() {
	profilesCmd.AddCommand(profilesAddCmd)
	rootCmd.AddCommand(profilesCmd)
}
