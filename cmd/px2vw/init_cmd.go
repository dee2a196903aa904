package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .px2vw.yaml config file",
	Long:  `Create a .px2vw.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".px2vw.yaml"); err == nil && !force {
			return fmt.Errorf(".px2vw.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".px2vw.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .px2vw.yaml")
		return nil
	},
}

const defaultConfig = `# px2vw configuration
# Docs: https://github.com/yacobolo/px2vw

# Files to convert
paths:
  - "web/styles/**/*.css"

# Conversion settings
unit: px
viewport-width: 320
unit-precision: 5
viewport-unit: vw
font-viewport-unit: vw
min-pixel-value: 1
prop-list:
  - "*"
selector-blacklist: []   # substrings, or /regex/ entries
media-query: false       # convert rules inside @media blocks
replace: true            # false keeps the px declaration as a fallback
landscape: false
landscape-unit: vw
landscape-width: 568
# include: []            # only convert rules from matching files
# exclude: []            # never convert rules from matching files

# Multiple independent option sets can be given instead of the flat keys:
# options:
#   - viewport-width: 750
#     include: ["/mobile/"]
#   - viewport-width: 1440
#     include: ["/desktop/"]
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
