// Package cmd provides the root command and CLI setup for schemafix.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemafix/internal/adapter"
	"github.com/mouse-blink/schemafix/internal/controller"
	"github.com/mouse-blink/schemafix/internal/domain"
)

var sqlFileAdapter adapter.SQLFileAdapter
var rewriter domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sqlFileAdapter = adapter.NewLocalSQLFileAdapter()
	rewriter = domain.NewRewriter()
	workflow = domain.NewWorkflow(sqlFileAdapter, rewriter, ui)
}

var statsFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemafix",
		Short: "Drop rating columns from partner_products INSERT statements",
		Long: `Schemafix rewrites ALL_MIGRATIONS_AND_DATA.sql in the current directory
in place so that partner_products INSERT statements no longer reference
the rating and rating_count columns.

The file is overwritten without a backup. Values are only removed when they
sit on the line directly after a removed column; values on the same line as
their column stay in place.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Fix(domain.FixArgs{
				Target: domain.DefaultTarget,
				Stats:  statsFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&statsFlag, "stats", false, "print a per-statement summary after the fix")

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}
