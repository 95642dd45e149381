// Package gaps converts non-met requirement matches into actionable
// remediation cards.
package gaps

import (
	"github.com/sebastian-gasior/jobfit/internal/synonyms"
	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Identify derives gap action cards from requirement matches. Cards whose
// recommended action would be "ignore" (low relevance) are dropped, so the
// returned list never contains one. Input order is preserved.
func Identify(matches []types.RequirementMatch, sig *types.CandidateSignals, idx *synonyms.Index) []types.GapActionCard {
	cards := []types.GapActionCard{}
	for _, m := range matches {
		if m.Status == types.StatusMet {
			continue
		}
		if m.Relevance == types.RelevanceLow {
			// recommendedAction would be ignore; filtered out here.
			continue
		}

		card := types.GapActionCard{
			Requirement: m.Requirement,
			Relevance:   m.Relevance,
			Status:      m.Status,
		}

		switch {
		case m.Status == types.StatusPartial:
			card.RecommendedAction = types.ActionRephrase
			card.SuggestionType = types.SuggestionPartialMatch
		case hasSynonymEvidence(m.Requirement, sig, idx):
			// The candidate likely has the skill under another name;
			// suggest proving it rather than learning it.
			card.RecommendedAction = types.ActionEvidence
			card.SuggestionType = types.SuggestionSynonymMatch
		default:
			card.RecommendedAction = types.ActionLearn
		}

		cards = append(cards, card)
	}
	return cards
}

// hasSynonymEvidence reports whether any requirement token has a non-identity
// synonym present among the candidate tokens.
func hasSynonymEvidence(requirement string, sig *types.CandidateSignals, idx *synonyms.Index) bool {
	if sig == nil {
		return false
	}
	for _, tok := range textnorm.TokenizeOrdered(requirement) {
		for _, equivalent := range idx.Expand(tok) {
			if equivalent != tok && sig.HasToken(equivalent) {
				return true
			}
		}
	}
	return false
}
