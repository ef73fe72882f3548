package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylewrap.yaml config file",
	Long:  `Create a .stylewrap.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylewrap.yaml"); err == nil && !force {
			return fmt.Errorf(".stylewrap.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylewrap.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylewrap.yaml")
		return nil
	},
}

const defaultConfig = `# stylewrap configuration
# Docs: https://github.com/yacobolo/stylewrap

# Shared settings
verbose: false
project-root: ""           # "" = nearest go.mod above each source file

# Rewrite settings
rewrite:
  paths:
    - "internal/**/*.go"
    - "web/components/**/*.go"
  write: false             # false = print rewritten source to stdout

# Check settings
check:
  strict: false
  output-format: issues    # issues | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
