package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "px2vw",
	Short: "Convert pixel units to viewport units in stylesheets",
	Long: `Rewrite absolute px lengths into viewport-relative vw/vh units.
Declarations can opt out with marker comments, and landscape mode emits
a trailing @media (orientation: landscape) block with converted copies.`,
	// Default behavior: run convert when no subcommand is given.
	// We must call loadConfig here because PreRunE of convertCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runConvert(convertCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".px2vw.yaml", "Config file path")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
