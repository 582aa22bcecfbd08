// Package cmd provides the root command and CLI setup for prodscan.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/prodscan/internal/adapter"
	"github.com/mouse-blink/prodscan/internal/controller"
	"github.com/mouse-blink/prodscan/internal/domain"
	"github.com/mouse-blink/prodscan/internal/logging"
)

var fsAdapter adapter.StackFSAdapter
var applier *adapter.EditApplier
var reportWriter adapter.ReportWriter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalStackFSAdapter()
	applier = adapter.NewEditApplier()
	reportWriter = adapter.NewLocalReportWriter()
	workflow = domain.NewWorkflow(fsAdapter, applier, logging.Default(false))
}

var configFlag string
var quietFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prodscan",
		Short: "Scan and mutate production stack definition files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if quietFlag {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a settings file (default: .prodscan.yaml in the scanned directory)")
	cmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress console report and non-error logs")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
