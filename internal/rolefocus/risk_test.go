package rolefocus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

func TestAssess_EmptyRequirements(t *testing.T) {
	sig := &types.CandidateSignals{SkillsTokens: tokenSet("docker")}

	risk := Assess(sig, &types.JobRequirements{})

	assert.Equal(t, types.RiskLow, risk.Risk)
	assert.Empty(t, risk.Reasons)
	require.Len(t, risk.Recommendations, 1)
	assert.Contains(t, risk.Recommendations[0], "No job requirements were available")
}

func TestAssess_FocusedProfile(t *testing.T) {
	sig := &types.CandidateSignals{SkillsTokens: tokenSet("docker", "kubernetes")}
	reqs := &types.JobRequirements{MustHave: []string{"Docker", "Kubernetes"}}

	risk := Assess(sig, reqs)

	assert.Equal(t, types.RiskLow, risk.Risk)
	assert.Empty(t, risk.Reasons)
	require.Len(t, risk.Recommendations, 1)
	assert.Contains(t, risk.Recommendations[0], "no adjustments needed")
}

func TestAssess_HighRiskFromUnrelatedContent(t *testing.T) {
	sig := &types.CandidateSignals{
		SkillsTokens: tokenSet("photoshop", "illustrator", "typography", "branding"),
	}
	reqs := &types.JobRequirements{MustHave: []string{"Docker"}}

	risk := Assess(sig, reqs)

	assert.Equal(t, types.RiskHigh, risk.Risk)
	require.NotEmpty(t, risk.Reasons)
	assert.Contains(t, risk.Reasons[0], "100%")
	assert.Contains(t, risk.Reasons[0], "branding")
}

func TestAssess_MediumRiskFromModerateDrift(t *testing.T) {
	sig := &types.CandidateSignals{
		SkillsTokens: tokenSet("docker", "kubernetes", "photoshop"),
	}
	reqs := &types.JobRequirements{MustHave: []string{"Docker", "Kubernetes"}}

	risk := Assess(sig, reqs)

	assert.Equal(t, types.RiskMedium, risk.Risk)
	require.NotEmpty(t, risk.Reasons)
	assert.Contains(t, risk.Reasons[0], "photoshop")
}

func TestAssess_HighRiskFromLeadershipMismatch(t *testing.T) {
	sig := &types.CandidateSignals{
		SkillsTokens:     tokenSet("docker", "kubernetes"),
		SenioritySignals: tokenSet("manager", "teamleitung"),
	}
	reqs := &types.JobRequirements{MustHave: []string{"Docker", "Kubernetes"}}

	risk := Assess(sig, reqs)

	assert.Equal(t, types.RiskHigh, risk.Risk)
	require.NotEmpty(t, risk.Reasons)
	found := false
	for _, rec := range risk.Recommendations {
		if strings.Contains(rec, "Reframe leadership") {
			found = true
		}
	}
	assert.True(t, found, "expected a leadership reframing recommendation")
}

func TestAssess_PostingWantingLeadershipAbsorbsSignals(t *testing.T) {
	sig := &types.CandidateSignals{
		SkillsTokens:     tokenSet("docker"),
		SenioritySignals: tokenSet("manager"),
	}
	reqs := &types.JobRequirements{MustHave: []string{"Team leadership experience", "Docker"}}

	risk := Assess(sig, reqs)

	for _, reason := range risk.Reasons {
		assert.NotContains(t, reason, "manager")
	}
}

func TestAssess_YearCountSignalsAreNotMismatches(t *testing.T) {
	sig := &types.CandidateSignals{
		SkillsTokens:     tokenSet("docker"),
		SenioritySignals: tokenSet("8 years experience"),
	}
	reqs := &types.JobRequirements{MustHave: []string{"Docker"}}

	risk := Assess(sig, reqs)

	assert.Equal(t, types.RiskLow, risk.Risk)
}

func TestAssess_NeverSaysOverqualified(t *testing.T) {
	cases := []struct {
		sig  *types.CandidateSignals
		reqs *types.JobRequirements
	}{
		{
			sig:  &types.CandidateSignals{SkillsTokens: tokenSet("photoshop", "branding")},
			reqs: &types.JobRequirements{MustHave: []string{"Docker"}},
		},
		{
			sig: &types.CandidateSignals{
				SkillsTokens:     tokenSet("docker"),
				SenioritySignals: tokenSet("manager", "director", "strategie"),
			},
			reqs: &types.JobRequirements{MustHave: []string{"Docker"}},
		},
		{
			sig:  &types.CandidateSignals{},
			reqs: &types.JobRequirements{},
		},
	}

	for _, tc := range cases {
		risk := Assess(tc.sig, tc.reqs)
		for _, text := range append(risk.Reasons, risk.Recommendations...) {
			lower := strings.ToLower(text)
			assert.NotContains(t, lower, "overqualified")
			assert.NotContains(t, lower, "überqualifiziert")
		}
	}
}
