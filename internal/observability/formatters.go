// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the executive summary.
func (p *Printer) PrintSummary(summary *types.ExecutiveSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", summary.MatchLabel))
	for _, bullet := range summary.Bullets {
		sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
	}

	p.printBox("EXECUTIVE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillFit outputs the per-requirement match verdicts.
func (p *Printer) PrintSkillFit(fit *types.SkillFit) {
	if fit == nil || (len(fit.MustHave) == 0 && len(fit.NiceToHave) == 0) {
		return
	}

	var sb strings.Builder
	writeMatches(&sb, "Must-have:", fit.MustHave)
	if len(fit.NiceToHave) > 0 {
		sb.WriteString("\n")
		writeMatches(&sb, "Nice-to-have:", fit.NiceToHave)
	}

	p.printBox("SKILL FIT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeMatches(sb *strings.Builder, heading string, matches []types.RequirementMatch) {
	if len(matches) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("  %-8s %s (%.2f)\n", string(m.Status), m.Requirement, m.Similarity))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matches)-maxItemsToShow))
	}
}

// PrintGaps outputs the remediation cards.
func (p *Printer) PrintGaps(cards []types.GapActionCard) {
	if len(cards) == 0 {
		p.printBox("GAPS", "No actionable gaps found.")
		return
	}

	var sb strings.Builder
	count := min(len(cards), maxItemsToShow)
	for i := 0; i < count; i++ {
		card := cards[i]
		sb.WriteString(fmt.Sprintf("⚠ %s\n", card.Requirement))
		sb.WriteString(fmt.Sprintf("  %s / %s → %s\n", string(card.Status), string(card.Relevance), string(card.RecommendedAction)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(cards) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(cards)-maxItemsToShow))
	}

	p.printBox("GAPS", sb.String())
}

// PrintATS outputs the ATS score and its breakdown.
func (p *Printer) PrintATS(analysis *types.ATSAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d/100\n\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Structure: %d\n", analysis.Breakdown.Structure))
	sb.WriteString(fmt.Sprintf("Coverage:  %d\n", analysis.Breakdown.Coverage))
	sb.WriteString(fmt.Sprintf("Placement: %d\n", analysis.Breakdown.Placement))
	sb.WriteString(fmt.Sprintf("Context:   %d\n", analysis.Breakdown.Context))

	if len(analysis.Todos) > 0 {
		sb.WriteString("\nTodos:\n")
		count := min(len(analysis.Todos), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Todos[i]))
		}
		if len(analysis.Todos) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Todos)-3))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNextSteps outputs the prioritized action checklist.
func (p *Printer) PrintNextSteps(steps []string) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	p.printBox("NEXT STEPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs every section of an analysis result in order.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintSummary(&result.Summary)
	p.PrintSkillFit(&result.SkillFit)
	p.PrintGaps(result.Gaps)
	p.PrintATS(&result.ATS)
	p.PrintNextSteps(result.NextSteps)
}
