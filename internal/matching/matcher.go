// Package matching implements the three-tier requirement matcher:
// exact match, synonym match, then token overlap.
package matching

import (
	"fmt"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/synonyms"
	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Similarity thresholds and relevance cutoffs. These are product policy;
// adjusting them silently changes every verdict.
const (
	// ThresholdMet is the similarity at or above which a match counts as met.
	ThresholdMet = 0.7
	// ThresholdPartial is the similarity at or above which an overlap match
	// counts as partial rather than missing.
	ThresholdPartial = 0.3
	// relevanceHighSim / relevanceMediumSim grade overlap-tier relevance.
	relevanceHighSim   = 0.8
	relevanceMediumSim = 0.5

	// MaxRequirements truncates oversized requirement lists.
	MaxRequirements = 1000
	// WarnRequirements triggers a performance warning without truncation.
	WarnRequirements = 500
)

// MatchRequirements matches each non-blank requirement against the candidate
// signals, preserving input order. Returned warnings describe truncation or
// oversized input; they never abort processing. A nil signals argument
// degrades every requirement to missing.
func MatchRequirements(requirements []string, sig *types.CandidateSignals, idx *synonyms.Index) ([]types.RequirementMatch, []string) {
	var warnings []string

	if len(requirements) > MaxRequirements {
		warnings = append(warnings, fmt.Sprintf("requirement list truncated from %d to %d entries", len(requirements), MaxRequirements))
		requirements = requirements[:MaxRequirements]
	} else if len(requirements) >= WarnRequirements {
		warnings = append(warnings, fmt.Sprintf("matching %d requirements; expect degraded latency", len(requirements)))
	}

	matches := make([]types.RequirementMatch, 0, len(requirements))
	for _, req := range requirements {
		if strings.TrimSpace(req) == "" {
			continue
		}
		matches = append(matches, matchOne(req, sig, idx))
	}
	return matches, warnings
}

// matchOne runs the tier cascade for a single requirement.
func matchOne(req string, sig *types.CandidateSignals, idx *synonyms.Index) types.RequirementMatch {
	m := types.RequirementMatch{
		Requirement: req,
		Status:      types.StatusMissing,
		Relevance:   types.RelevanceLow,
		Evidence:    "no matching evidence found in profile",
	}

	tokens := textnorm.TokenizeOrdered(req)
	if len(tokens) == 0 || sig == nil {
		return m
	}

	// Tier 1: the requirement's full token sequence appears verbatim, or
	// every individual token is present.
	joined := strings.Join(tokens, " ")
	if sig.HasToken(joined) || allPresent(tokens, sig) {
		m.Status = types.StatusMet
		m.Similarity = 1.0
		m.Relevance = types.RelevanceHigh
		m.Evidence = "direct match: " + strings.Join(tokens, ", ")
		return m
	}

	// Tier 2: synonym expansion, attempted only when at least one token
	// participates in the synonym table.
	if hasSynonymEntry(tokens, idx) {
		matched, pairs := synonymMatches(tokens, sig, idx)
		if matched > 0 {
			m.Similarity = float64(matched) / float64(len(tokens))
			if m.Similarity >= ThresholdMet {
				m.Status = types.StatusMet
			} else {
				m.Status = types.StatusPartial
			}
			m.Relevance = types.RelevanceHigh
			m.Evidence = "matched via synonyms: " + strings.Join(pairs, ", ")
			return m
		}
	}

	// Tier 3: plain token overlap.
	var hits []string
	for _, tok := range tokens {
		if sig.HasToken(tok) {
			hits = append(hits, tok)
		}
	}
	m.Similarity = float64(len(hits)) / float64(len(tokens))
	switch {
	case m.Similarity >= ThresholdMet:
		m.Status = types.StatusMet
	case m.Similarity >= ThresholdPartial:
		m.Status = types.StatusPartial
	}
	switch {
	case m.Similarity > relevanceHighSim:
		m.Relevance = types.RelevanceHigh
	case m.Similarity >= relevanceMediumSim:
		m.Relevance = types.RelevanceMedium
	}
	if len(hits) > 0 {
		m.Evidence = fmt.Sprintf("token overlap %d/%d: %s", len(hits), len(tokens), strings.Join(hits, ", "))
	}
	return m
}

func allPresent(tokens []string, sig *types.CandidateSignals) bool {
	for _, tok := range tokens {
		if !sig.HasToken(tok) {
			return false
		}
	}
	return true
}

func hasSynonymEntry(tokens []string, idx *synonyms.Index) bool {
	for _, tok := range tokens {
		if idx.Has(tok) {
			return true
		}
	}
	return false
}

// synonymMatches counts requirement tokens whose expansion hits the candidate
// token sets and renders the evidence pairs. Expansion lists are sorted at
// index construction, so pair selection is deterministic.
func synonymMatches(tokens []string, sig *types.CandidateSignals, idx *synonyms.Index) (int, []string) {
	matched := 0
	var pairs []string
	for _, tok := range tokens {
		for _, candidate := range idx.Expand(tok) {
			if !sig.HasToken(candidate) {
				continue
			}
			matched++
			if candidate == tok {
				pairs = append(pairs, tok)
			} else {
				pairs = append(pairs, tok+" ≈ "+candidate)
			}
			break
		}
	}
	return matched, pairs
}
