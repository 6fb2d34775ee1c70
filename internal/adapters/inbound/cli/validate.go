package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/speclint/speclint/internal/adapters/outbound/config"
	"github.com/speclint/speclint/internal/adapters/outbound/gitlog"
	"github.com/speclint/speclint/internal/adapters/outbound/scanner"
	"github.com/speclint/speclint/internal/adapters/outbound/tui"
	"github.com/speclint/speclint/internal/application"
	"github.com/speclint/speclint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate SDD structure and conventions",
		Long:  "Run all structure, governance, specification, traceability, documentation, and secret checks against a repository root (defaults to the current directory).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			absPath, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewValidateService(scanner.New(), config.New(), gitlog.New())

			report, err := svc.Validate(absPath, strict)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			// Warnings never fail the exit status unless strict flipped the
			// status itself.
			if report.Status == domain.StatusFail {
				return fmt.Errorf("validation failed: %d error(s), %d warning(s)",
					len(report.Errors), len(report.Warnings))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")

	return cmd
}
