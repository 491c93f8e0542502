package tui

import (
	"fmt"
	"strings"

	"github.com/flightlint/flightlint/internal/domain"
)

// RenderSummary renders one lint summary as a styled terminal string:
// results grouped by file, one line per finding, closed by an
// error/warning count. A clean scan renders a distinct message instead
// of an empty listing.
func RenderSummary(summary domain.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(summary.Domain))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d files scanned", summary.FileCount)))
	b.WriteString("\n")

	if len(summary.Results) == 0 {
		b.WriteString(passStyle.Render("✓ No violations found"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")

	// Results arrive in path order, so grouping by consecutive file
	// keeps the deterministic ordering intact.
	currentFile := ""
	for _, r := range summary.Results {
		if r.FilePath != currentFile {
			currentFile = r.FilePath
			b.WriteString("\n")
			b.WriteString(fileStyle.Render(currentFile))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%d:%d", r.Line, r.Column)),
			severityTag(r.Severity),
			ruleIDStyle.Render(r.RuleID),
			r.Message,
		))
	}

	errorCount := 0
	warningCount := 0
	for _, r := range summary.Results {
		switch {
		case r.Severity.Blocking():
			errorCount++
		case r.Severity == domain.SeverityShould:
			warningCount++
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s\n",
		errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)),
		warnTagStyle.Render(fmt.Sprintf("%d warnings", warningCount)),
	))

	return b.String()
}

func severityTag(s domain.Severity) string {
	label := fmt.Sprintf("%-8s", s.String())
	switch {
	case s.Blocking():
		return errorTagStyle.Render(label)
	case s == domain.SeverityShould:
		return warnTagStyle.Render(label)
	default:
		return infoTagStyle.Render(label)
	}
}
