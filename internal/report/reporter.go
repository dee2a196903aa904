// Package report renders conversion warnings and summaries for the CLI.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/px2vw"
)

// Reporter formats conversion output for terminals.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// New creates a reporter writing to w.
func New(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// PrintWarnings outputs warnings in file:line:col style, sorted by
// position.
func (r *Reporter) PrintWarnings(warnings []px2vw.Warning) {
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Pos.File != warnings[j].Pos.File {
			return warnings[i].Pos.File < warnings[j].Pos.File
		}
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		return warnings[i].Pos.Column < warnings[j].Pos.Column
	})

	for _, w := range warnings {
		location := fmt.Sprintf("%s:%d:%d:", w.Pos.File, w.Pos.Line, w.Pos.Column)
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleCyan, location, r.useColors),
			RenderStyle(StyleYellow, w.Text, r.useColors))
	}
}

// Summary aggregates conversion statistics across all processed files.
type Summary struct {
	FilesScanned          int
	FilesSkipped          int
	FilesChanged          int
	DeclarationsConverted int
	LandscapeRulesAdded   int
	WarningCount          int
}

// PrintSummary outputs the end-of-run statistics.
func (r *Reporter) PrintSummary(s Summary) {
	header := fmt.Sprintf("Converted %d declarations in %d of %d files",
		s.DeclarationsConverted, s.FilesChanged, s.FilesScanned)
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, header, r.useColors))

	if s.FilesSkipped > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("  skipped %d generated/ignored files", s.FilesSkipped), r.useColors))
	}
	if s.LandscapeRulesAdded > 0 {
		fmt.Fprintf(r.w, "  landscape rules added: %d\n", s.LandscapeRulesAdded)
	}
	if s.WarningCount > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow,
			fmt.Sprintf("  warnings: %d", s.WarningCount), r.useColors))
	}
}
