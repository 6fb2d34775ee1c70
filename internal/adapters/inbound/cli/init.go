package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".speclint.yaml"

const defaultConfigContent = `# speclint configuration.
# Every list here replaces the built-in default entirely when set.

# Directories the repository must contain.
# required_dirs:
#   - dev-docs/sdd
#   - specs
#   - templates

# Root of the specification tree (relative to the repository root).
# specs_dir: specs

# Extra directory names pruned from every tree walk.
# exclude_dirs:
#   - generated

# Extra file names skipped by the secret scan.
# exclude_files:
#   - fixtures.md

# How many recent commits the traceability check inspects.
# commit_limit: 20

# Treat a warnings-only run as a failure.
# strict: false
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .speclint.yaml configuration file",
		Long:  "Create a commented .speclint.yaml with the built-in defaults.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(defaultConfigContent), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
