package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/px2vw"
	"github.com/yacobolo/px2vw/csstree"
	"github.com/yacobolo/px2vw/internal/report"
)

var convertCmd = &cobra.Command{
	Use:     "convert [patterns...]",
	Aliases: []string{"run"},
	Short:   "Convert px units to viewport units in CSS files",
	Long: `Parse the stylesheets matched by the glob patterns, rewrite px values
into viewport units, and write the result back in place (or to --out-dir).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for CSS files to convert")
	f.String("out-dir", "", "Write converted files to this directory instead of in place")
	f.Bool("dry-run", false, "Print converted CSS to stdout without writing files")

	f.String("unit", "px", "Source unit to convert")
	f.Float64("viewport-width", 320, "Design viewport width the source sizes target")
	f.Int("unit-precision", 5, "Fractional digits kept after conversion")
	f.String("viewport-unit", "vw", "Target unit for general properties")
	f.String("font-viewport-unit", "vw", "Target unit for font properties")
	f.Float64("min-pixel-value", 1, "Values at or below this are left untouched")
	f.StringSlice("prop-list", []string{"*"}, "Property patterns to convert (! negates)")
	f.StringSlice("selector-blacklist", nil, "Selectors to skip (substring, or /regex/)")
	f.Bool("media-query", false, "Convert rules inside parameterized at-rules")
	f.Bool("replace", true, "Overwrite values instead of inserting fallback duplicates")
	f.Bool("landscape", false, "Emit a trailing @media (orientation: landscape) block")
	f.String("landscape-unit", "vw", "Target unit for landscape conversions")
	f.Float64("landscape-width", 568, "Design width for landscape conversions")
	f.StringSlice("include", nil, "Only convert rules from matching files")
	f.StringSlice("exclude", nil, "Never convert rules from matching files")
}

func runConvert(_ *cobra.Command, args []string) error {
	optSets, err := buildOptionSets()
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = k.Strings("paths")
	}
	if len(patterns) == 0 {
		patterns = []string{"**/*.css"}
	}

	files, stats, err := px2vw.FindCSSFiles(patterns)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no stylesheet files match %v", patterns)
	}

	dryRun := getBoolWithFallback("dry-run", "dry-run", false)
	outDir := getStringWithFallback("out-dir", "out-dir", "")
	quiet := getBoolWithFallback("quiet", "quiet", false)

	summary := report.Summary{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}
	var warnings []px2vw.Warning

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, path := range files {
		data, err := os.ReadFile(path) // #nosec G304 - paths come from user-supplied globs
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		root, err := csstree.Parse(string(data), path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		res, err := px2vw.Transform(root, optSets...)
		if err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}

		out := root.String()
		summary.DeclarationsConverted += res.DeclarationsConverted
		summary.LandscapeRulesAdded += res.LandscapeRulesAdded
		warnings = append(warnings, res.Warnings...)
		if out != string(data) {
			summary.FilesChanged++
		}

		switch {
		case dryRun:
			fmt.Print(out)
		case outDir != "":
			dest := filepath.Join(outDir, filepath.Base(path))
			if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
		default:
			if out == string(data) {
				continue
			}
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}

	if !quiet {
		// With --dry-run the converted CSS owns stdout.
		dest := os.Stdout
		if dryRun {
			dest = os.Stderr
		}
		summary.WarningCount = len(warnings)
		rep := report.New(dest, report.ShouldUseColors(getBoolWithFallback("color", "color", false)))
		rep.PrintWarnings(warnings)
		rep.PrintSummary(summary)
	}

	return nil
}
