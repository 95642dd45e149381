package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(&types.ExecutiveSummary{
		MatchLabel: types.LabelPartialFit,
		Bullets:    []string{"You meet 5 of 10 must-have requirements (50%)."},
	})

	out := buf.String()
	assert.Contains(t, out, "EXECUTIVE SUMMARY")
	assert.Contains(t, out, "partial fit")
	assert.Contains(t, out, "5 of 10")
}

func TestPrintSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillFit_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	fit := &types.SkillFit{}
	for i := 0; i < maxItemsToShow+3; i++ {
		fit.MustHave = append(fit.MustHave, types.RequirementMatch{
			Requirement: fmt.Sprintf("req-%d", i),
			Status:      types.StatusMet,
			Similarity:  1.0,
		})
	}
	p.PrintSkillFit(fit)

	out := buf.String()
	assert.Contains(t, out, "req-0")
	assert.Contains(t, out, "... and 3 more")
	assert.NotContains(t, out, fmt.Sprintf("req-%d", maxItemsToShow))
}

func TestPrintGaps_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGaps(nil)

	assert.Contains(t, buf.String(), "No actionable gaps found.")
}

func TestPrintATS(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintATS(&types.ATSAnalysis{
		Score:     72,
		Breakdown: types.ATSBreakdown{Structure: 80, Coverage: 60, Placement: 75, Context: 70},
		Todos:     []string{"one", "two", "three", "four"},
	})

	out := buf.String()
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "Structure: 80")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintNextSteps_Numbered(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintNextSteps([]string{"first", "second"})

	out := buf.String()
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
}

func TestPrintBox_TruncatesOverlongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", boxWidth*2))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line overflows the box: %q", line)
	}
}

func TestPrintResult_AllSections(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(&types.AnalysisResult{
		Summary:   types.ExecutiveSummary{MatchLabel: types.LabelGoodFit, Bullets: []string{"b"}},
		SkillFit:  types.SkillFit{MustHave: []types.RequirementMatch{{Requirement: "Go", Status: types.StatusMet}}},
		Gaps:      []types.GapActionCard{{Requirement: "Kafka", Status: types.StatusMissing, Relevance: types.RelevanceHigh, RecommendedAction: types.ActionLearn}},
		ATS:       types.ATSAnalysis{Score: 80},
		NextSteps: []string{"step"},
	})

	out := buf.String()
	for _, section := range []string{"EXECUTIVE SUMMARY", "SKILL FIT", "GAPS", "ATS SCORE", "NEXT STEPS"} {
		assert.Contains(t, out, section)
	}
}
