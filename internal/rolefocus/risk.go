// Package rolefocus estimates whether a profile is too broad or too
// leadership-skewed for a specific posting.
package rolefocus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Risk thresholds. Product policy constants.
//
// Wording constraint: reasons and recommendations must never contain a term
// meaning "overqualified" in any language; the generator below is the only
// place this text is produced and the test suite verifies the constraint.
const (
	highUnrelatedRatio   = 0.5
	mediumUnrelatedRatio = 0.3
	highMismatchCount    = 2
	mediumMismatchCount  = 1

	// maxListedTokens bounds how many example tokens a reason names.
	maxListedTokens = 5
)

// Assess computes the role-focus risk for candidate signals against extracted
// job requirements. Empty job requirements yield low risk with a single
// explanatory recommendation.
func Assess(sig *types.CandidateSignals, reqs *types.JobRequirements) types.RoleFocusRisk {
	result := types.RoleFocusRisk{
		Risk:            types.RiskLow,
		Reasons:         []string{},
		Recommendations: []string{},
	}

	jobTokens := requirementTokenSet(reqs)
	if len(jobTokens) == 0 {
		result.Recommendations = append(result.Recommendations,
			"No job requirements were available to compare against; provide a more detailed posting for a focus assessment.")
		return result
	}

	unrelatedRatio, unrelated := unrelatedFraction(sig, jobTokens)
	mismatches := leadershipMismatches(sig, jobTokens)

	switch {
	case unrelatedRatio > highUnrelatedRatio || len(mismatches) >= highMismatchCount:
		result.Risk = types.RiskHigh
	case unrelatedRatio >= mediumUnrelatedRatio || len(mismatches) >= mediumMismatchCount:
		result.Risk = types.RiskMedium
	}

	if unrelatedRatio >= mediumUnrelatedRatio {
		result.Reasons = append(result.Reasons, fmt.Sprintf(
			"%.0f%% of your profile content is not related to this posting (e.g. %s).",
			unrelatedRatio*100, strings.Join(firstN(unrelated, maxListedTokens), ", ")))
		result.Recommendations = append(result.Recommendations,
			"De-emphasize or trim content that does not support this specific role.")
	}

	if len(mismatches) > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf(
			"Leadership or strategy signals in your profile (%s) are not reflected in the posting.",
			strings.Join(firstN(mismatches, maxListedTokens), ", ")))
		result.Recommendations = append(result.Recommendations,
			"Reframe leadership and strategy material toward the hands-on contribution this role asks for.")
	}

	if len(result.Recommendations) == 0 {
		result.Recommendations = append(result.Recommendations,
			"Profile focus matches the posting; no adjustments needed.")
	}

	return result
}

// unrelatedFraction returns the share of distinct candidate tokens absent
// from the job requirement tokens, plus a sorted sample of those tokens.
func unrelatedFraction(sig *types.CandidateSignals, jobTokens map[string]bool) (float64, []string) {
	candidateTokens := sig.AllTokens()
	if len(candidateTokens) == 0 {
		return 0, nil
	}

	var unrelated []string
	for tok := range candidateTokens {
		if !jobTokens[tok] {
			unrelated = append(unrelated, tok)
		}
	}
	sort.Strings(unrelated)

	return float64(len(unrelated)) / float64(len(candidateTokens)), unrelated
}

// leadershipKeywordTokens marks the tokenized seniority vocabulary so a
// posting that asks for leadership in different words still absorbs the
// candidate's leadership signals.
var leadershipKeywordTokens = func() map[string]bool {
	tokens := make(map[string]bool)
	for _, kw := range []string{
		"lead", "leader", "leadership", "head", "principal", "senior",
		"manager", "management", "director", "strategy", "führung",
		"leitung", "teamleitung", "strategie",
	} {
		for tok := range textnorm.Tokenize(kw) {
			tokens[tok] = true
		}
	}
	return tokens
}()

// leadershipMismatches returns the seniority signals that appear nowhere in
// the tokenized job requirements, neither directly nor via the seniority
// keyword set. Sorted for determinism. Signals that normalize to nothing
// (pure year counts) cannot be compared and are skipped.
func leadershipMismatches(sig *types.CandidateSignals, jobTokens map[string]bool) []string {
	postingWantsLeadership := false
	for tok := range jobTokens {
		if leadershipKeywordTokens[tok] {
			postingWantsLeadership = true
			break
		}
	}

	var mismatches []string
	for signal := range sig.SenioritySignals {
		tokens := textnorm.TokenizeOrdered(signal)
		if len(tokens) == 0 {
			continue
		}
		found := false
		for _, tok := range tokens {
			if jobTokens[tok] || (postingWantsLeadership && leadershipKeywordTokens[tok]) {
				found = true
				break
			}
		}
		if !found {
			mismatches = append(mismatches, signal)
		}
	}
	sort.Strings(mismatches)
	return mismatches
}

func requirementTokenSet(reqs *types.JobRequirements) map[string]bool {
	tokens := make(map[string]bool)
	for _, req := range reqs.All() {
		for tok := range textnorm.Tokenize(req) {
			tokens[tok] = true
		}
	}
	return tokens
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
