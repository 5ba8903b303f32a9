package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twindex.yaml config file",
	Long:  `Create a .twindex.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twindex.yaml"); err == nil && !force {
			return fmt.Errorf(".twindex.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twindex.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twindex.yaml")
		return nil
	},
}

const defaultConfig = `# twindex configuration
# Docs: https://github.com/yacobolo/twindex

# Shared settings
verbose: false
color: false
cache-root: ""             # empty = platform user cache directory

# Build settings
build:
  root: ""                 # empty = resolve from the current directory
  tailwind-config: ""      # empty = resolve from the project root
  cache-dir: ""            # empty = derive from the project root
  compiler-command: []     # empty = npx tailwindcss
  node-command: []         # empty = node
  force: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
