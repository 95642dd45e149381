// Package ats computes the four-factor ATS score: structure, coverage,
// placement and context, combined into a weighted overall score with
// prioritized improvement suggestions.
package ats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Scoring weights and limits. Product policy; changing them changes every score.
const (
	weightStructure = 0.25
	weightCoverage  = 0.30
	weightPlacement = 0.25
	weightContext   = 0.20

	// Structure blends field completeness and bullet formatting.
	structureFieldsWeight  = 0.40
	structureBulletsWeight = 0.60

	// Context blends action verbs and quantifiable outcomes.
	contextVerbWeight    = 0.50
	contextOutcomeWeight = 0.50

	// heuristicFullScoreHits is the common-term hit count that scales to 100
	// when no must-have list is given.
	heuristicFullScoreHits = 5

	// placementBonusPerEntry / placementBonusMax reward evidence spread
	// across multiple experience entries.
	placementBonusPerEntry = 0.10
	placementBonusMax      = 0.20

	// todoThreshold is the sub-score below which a suggestion is emitted;
	// severeThreshold escalates the wording.
	todoThreshold   = 70
	severeThreshold = 40

	// MaxMustHave truncates oversized must-have lists; WarnMustHave only warns.
	MaxMustHave  = 500
	WarnMustHave = 200
)

// experienceFieldCount is the number of structured fields checked per entry.
const experienceFieldCount = 4

// Score computes the ATS analysis for a profile. mustHave may be nil; the
// calculator then falls back to the common-term heuristic. Returned warnings
// describe truncation of oversized must-have lists.
func Score(profile *types.CandidateProfile, mustHave []string) (types.ATSAnalysis, []string) {
	var warnings []string

	if len(mustHave) > MaxMustHave {
		warnings = append(warnings, fmt.Sprintf("must-have list truncated from %d to %d entries for ATS scoring", len(mustHave), MaxMustHave))
		mustHave = mustHave[:MaxMustHave]
	} else if len(mustHave) >= WarnMustHave {
		warnings = append(warnings, fmt.Sprintf("scoring %d must-have requirements; expect degraded latency", len(mustHave)))
	}

	breakdown := types.ATSBreakdown{
		Structure: structureScore(profile),
		Coverage:  coverageScore(profile, mustHave),
		Placement: placementScore(profile, mustHave),
		Context:   contextScore(profile),
	}

	overall := int(math.Round(
		weightStructure*float64(breakdown.Structure) +
			weightCoverage*float64(breakdown.Coverage) +
			weightPlacement*float64(breakdown.Placement) +
			weightContext*float64(breakdown.Context)))

	return types.ATSAnalysis{
		Score:     clamp(overall),
		Breakdown: breakdown,
		Todos:     buildTodos(breakdown),
	}, warnings
}

// structureScore blends experience field completeness (40%) with
// bullet-formatted descriptions (60%).
func structureScore(profile *types.CandidateProfile) int {
	if len(profile.Experience) == 0 {
		return 0
	}

	fieldsPresent := 0
	bulletFormatted := 0
	for _, exp := range profile.Experience {
		for _, field := range []string{exp.Employer, exp.Role, exp.StartDate, exp.EndDate} {
			if strings.TrimSpace(field) != "" {
				fieldsPresent++
			}
		}
		if bulletFormatPattern.MatchString(exp.Description) {
			bulletFormatted++
		}
	}

	total := len(profile.Experience)
	fieldFraction := float64(fieldsPresent) / float64(total*experienceFieldCount)
	bulletFraction := float64(bulletFormatted) / float64(total)

	return clamp(int(math.Round(100 * (structureFieldsWeight*fieldFraction + structureBulletsWeight*bulletFraction))))
}

// coverageScore measures how many sought tokens appear anywhere in the
// profile, up to the candidate-text cap.
func coverageScore(profile *types.CandidateProfile, mustHave []string) int {
	profileText, _ := textnorm.Truncate(profile.AllText(), textnorm.MaxCandidateChars)
	profileTokens := textnorm.Tokenize(profileText)

	if len(mustHave) > 0 {
		sought := requirementTokens(mustHave)
		if len(sought) == 0 {
			return 0
		}
		found := 0
		for _, tok := range sought {
			if profileTokens[tok] {
				found++
			}
		}
		return clamp(int(math.Round(100 * float64(found) / float64(len(sought)))))
	}

	// Heuristic fallback: count common tech terms, five hits = full score.
	hits := 0
	for _, term := range commonTechTerms {
		if profileTokens[textnorm.Stem(term)] {
			hits++
		}
	}
	return clamp(hits * 100 / heuristicFullScoreHits)
}

// placementScore measures whether sought tokens appear inside experience
// entries specifically, with a bonus when evidence spans multiple entries.
func placementScore(profile *types.CandidateProfile, mustHave []string) int {
	var sought []string
	if len(mustHave) > 0 {
		sought = requirementTokens(mustHave)
	} else {
		for _, term := range commonTechTerms {
			sought = append(sought, textnorm.Stem(term))
		}
	}
	if len(sought) == 0 || len(profile.Experience) == 0 {
		return 0
	}

	entryTokens := make([]map[string]bool, len(profile.Experience))
	for i, exp := range profile.Experience {
		entryTokens[i] = textnorm.Tokenize(exp.Role + "\n" + exp.Description)
	}

	found := 0
	entriesWithMatch := make(map[int]bool)
	for _, tok := range sought {
		hit := false
		for i := range entryTokens {
			if entryTokens[i][tok] {
				entriesWithMatch[i] = true
				hit = true
			}
		}
		if hit {
			found++
		}
	}

	base := 100 * float64(found) / float64(len(sought))

	bonus := 0.0
	if len(entriesWithMatch) > 1 {
		bonus = math.Min(placementBonusMax, placementBonusPerEntry*float64(len(entriesWithMatch)-1))
	}

	return clamp(int(math.Round(base * (1 + bonus))))
}

// contextScore blends action-verb usage with quantifiable outcomes across
// experience descriptions.
func contextScore(profile *types.CandidateProfile) int {
	if len(profile.Experience) == 0 {
		return 0
	}

	withVerb := 0
	withOutcome := 0
	for _, exp := range profile.Experience {
		desc := strings.ToLower(exp.Description)
		if containsActionVerb(desc) {
			withVerb++
		}
		if numberPattern.MatchString(exp.Description) ||
			percentPattern.MatchString(desc) ||
			improvementPattern.MatchString(exp.Description) {
			withOutcome++
		}
	}

	total := float64(len(profile.Experience))
	score := 100 * (contextVerbWeight*float64(withVerb)/total + contextOutcomeWeight*float64(withOutcome)/total)
	return clamp(int(math.Round(score)))
}

func containsActionVerb(lowerDesc string) bool {
	for _, verb := range actionVerbs {
		if strings.Contains(lowerDesc, verb) {
			return true
		}
	}
	return false
}

// requirementTokens collects the deduplicated tokens of all requirement
// strings in deterministic order.
func requirementTokens(reqs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, req := range reqs {
		for _, tok := range textnorm.TokenizeOrdered(req) {
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
		}
	}
	return out
}

// todoCategory pairs a breakdown field with its suggestion texts.
type todoCategory struct {
	name     string
	score    int
	moderate string
	severe   string
}

// buildTodos emits category-specific suggestions for every sub-score below
// todoThreshold, worst first, or a single affirmation when none qualify.
func buildTodos(b types.ATSBreakdown) []string {
	categories := []todoCategory{
		{
			name:     "structure",
			score:    b.Structure,
			moderate: "Complete missing employer, role or date fields and convert descriptions to bullet points.",
			severe:   "Experience entries are largely unparseable: add employer, role and dates to every entry and use bullet points.",
		},
		{
			name:     "coverage",
			score:    b.Coverage,
			moderate: "Work more of the posting's key terms into your profile where they genuinely apply.",
			severe:   "The profile shares almost no vocabulary with the posting; mirror the requirement terms you actually meet.",
		},
		{
			name:     "placement",
			score:    b.Placement,
			moderate: "Move key skills out of the skills list and into concrete experience descriptions.",
			severe:   "Key terms appear only outside your experience entries; back them with evidence in at least two roles.",
		},
		{
			name:     "context",
			score:    b.Context,
			moderate: "Start bullets with action verbs and add measurable outcomes (numbers, percentages).",
			severe:   "Descriptions read as passive duty lists; rewrite them around actions and quantified results.",
		},
	}

	// Ascending by score; category order breaks ties so output is stable.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].score < categories[j].score
	})

	var todos []string
	for _, c := range categories {
		if c.score >= todoThreshold {
			continue
		}
		if c.score < severeThreshold {
			todos = append(todos, c.severe)
		} else {
			todos = append(todos, c.moderate)
		}
	}

	if len(todos) == 0 {
		todos = []string{"Your profile is well optimized for ATS parsing."}
	}
	return todos
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
