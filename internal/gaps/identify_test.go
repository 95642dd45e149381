package gaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian-gasior/jobfit/internal/synonyms"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

func TestIdentify_SkipsMetAndLowRelevance(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "Docker", Status: types.StatusMet, Relevance: types.RelevanceHigh},
		{Requirement: "COBOL", Status: types.StatusMissing, Relevance: types.RelevanceLow},
		{Requirement: "Kubernetes", Status: types.StatusMissing, Relevance: types.RelevanceMedium},
	}

	cards := Identify(matches, &types.CandidateSignals{}, synonyms.New())

	require.Len(t, cards, 1)
	assert.Equal(t, "Kubernetes", cards[0].Requirement)
}

func TestIdentify_PartialBecomesRephrase(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "Kubernetes operations", Status: types.StatusPartial, Relevance: types.RelevanceMedium},
	}

	cards := Identify(matches, &types.CandidateSignals{}, synonyms.New())

	require.Len(t, cards, 1)
	assert.Equal(t, types.ActionRephrase, cards[0].RecommendedAction)
	assert.Equal(t, types.SuggestionPartialMatch, cards[0].SuggestionType)
}

func TestIdentify_MissingWithSynonymEvidenceBecomesEvidence(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "ETL", Status: types.StatusMissing, Relevance: types.RelevanceHigh},
	}
	sig := &types.CandidateSignals{
		SkillsTokens: map[string]bool{"data pipeline": true},
	}

	cards := Identify(matches, sig, synonyms.New())

	require.Len(t, cards, 1)
	assert.Equal(t, types.ActionEvidence, cards[0].RecommendedAction)
	assert.Equal(t, types.SuggestionSynonymMatch, cards[0].SuggestionType)
}

func TestIdentify_MissingWithoutEvidenceBecomesLearn(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "Terraform", Status: types.StatusMissing, Relevance: types.RelevanceHigh},
	}

	cards := Identify(matches, &types.CandidateSignals{}, synonyms.New())

	require.Len(t, cards, 1)
	assert.Equal(t, types.ActionLearn, cards[0].RecommendedAction)
	assert.Empty(t, cards[0].SuggestionType)
}

func TestIdentify_NeverEmitsIgnore(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "A", Status: types.StatusMissing, Relevance: types.RelevanceLow},
		{Requirement: "B", Status: types.StatusPartial, Relevance: types.RelevanceLow},
		{Requirement: "C", Status: types.StatusMissing, Relevance: types.RelevanceHigh},
		{Requirement: "D", Status: types.StatusPartial, Relevance: types.RelevanceMedium},
	}

	cards := Identify(matches, &types.CandidateSignals{}, synonyms.New())

	for _, card := range cards {
		assert.NotEqual(t, types.ActionIgnore, card.RecommendedAction)
	}
}

func TestIdentify_PreservesInputOrder(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "Kafka", Status: types.StatusMissing, Relevance: types.RelevanceHigh},
		{Requirement: "Terraform", Status: types.StatusPartial, Relevance: types.RelevanceMedium},
		{Requirement: "Ansible", Status: types.StatusMissing, Relevance: types.RelevanceMedium},
	}

	cards := Identify(matches, &types.CandidateSignals{}, synonyms.New())

	require.Len(t, cards, 3)
	assert.Equal(t, "Kafka", cards[0].Requirement)
	assert.Equal(t, "Terraform", cards[1].Requirement)
	assert.Equal(t, "Ansible", cards[2].Requirement)
}

func TestIdentify_EmptyMatches(t *testing.T) {
	cards := Identify(nil, &types.CandidateSignals{}, synonyms.New())

	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestIdentify_NilSignals(t *testing.T) {
	matches := []types.RequirementMatch{
		{Requirement: "ETL", Status: types.StatusMissing, Relevance: types.RelevanceHigh},
	}

	cards := Identify(matches, nil, synonyms.New())

	require.Len(t, cards, 1)
	assert.Equal(t, types.ActionLearn, cards[0].RecommendedAction)
}
