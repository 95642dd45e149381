package types

// JobRequirements represents the structured requirements extracted from a job posting.
// Built once per posting and immutable afterwards.
type JobRequirements struct {
	MustHave         []string `json:"must_have"`
	NiceToHave       []string `json:"nice_to_have"`
	Responsibilities []string `json:"responsibilities"`
}

// All returns every extracted requirement string across the three tiers.
func (r *JobRequirements) All() []string {
	all := make([]string, 0, len(r.MustHave)+len(r.NiceToHave)+len(r.Responsibilities))
	all = append(all, r.MustHave...)
	all = append(all, r.NiceToHave...)
	all = append(all, r.Responsibilities...)
	return all
}

// CandidateSignals holds the normalized evidence extracted from a candidate profile.
// Skills tokens stay separate from experience tokens so placement-style checks can
// distinguish where a term appeared.
type CandidateSignals struct {
	SkillsTokens     map[string]bool `json:"skills_tokens"`
	ExperienceTokens map[string]bool `json:"experience_tokens"`
	SenioritySignals map[string]bool `json:"seniority_signals"`
}

// HasToken reports whether the token appears in either the skills or experience set.
func (s *CandidateSignals) HasToken(token string) bool {
	return s.SkillsTokens[token] || s.ExperienceTokens[token]
}

// AllTokens returns the union of skills and experience tokens.
func (s *CandidateSignals) AllTokens() map[string]bool {
	union := make(map[string]bool, len(s.SkillsTokens)+len(s.ExperienceTokens))
	for t := range s.SkillsTokens {
		union[t] = true
	}
	for t := range s.ExperienceTokens {
		union[t] = true
	}
	return union
}

// MatchStatus classifies how well a single requirement is covered.
type MatchStatus string

// Match status values.
const (
	StatusMet     MatchStatus = "met"
	StatusPartial MatchStatus = "partial"
	StatusMissing MatchStatus = "missing"
)

// Relevance grades how strongly a match (or its absence) matters.
type Relevance string

// Relevance levels.
const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// RequirementMatch is the verdict for a single requirement string.
type RequirementMatch struct {
	Requirement string      `json:"requirement"`
	Status      MatchStatus `json:"status"`
	Similarity  float64     `json:"similarity"`
	Relevance   Relevance   `json:"relevance"`
	Evidence    string      `json:"evidence"`
}

// ATSBreakdown holds the four fixed sub-scores of the ATS analysis.
// The category set is closed, so this is a struct rather than a map.
type ATSBreakdown struct {
	Structure int `json:"structure"`
	Coverage  int `json:"coverage"`
	Placement int `json:"placement"`
	Context   int `json:"context"`
}

// ATSAnalysis is the formatting/coverage score for a profile.
type ATSAnalysis struct {
	Score     int          `json:"score"`
	Breakdown ATSBreakdown `json:"breakdown"`
	Todos     []string     `json:"todos"`
}

// RiskLevel is the three-level role-focus risk classification.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RoleFocusRisk signals a breadth or leadership mismatch between profile and posting.
type RoleFocusRisk struct {
	Risk            RiskLevel `json:"risk"`
	Reasons         []string  `json:"reasons"`
	Recommendations []string  `json:"recommendations"`
}

// GapAction is the recommended remediation for a gap.
type GapAction string

// Gap actions. ActionIgnore never appears in final output; it marks cards
// that the identifier drops.
const (
	ActionRephrase GapAction = "rephrase"
	ActionEvidence GapAction = "evidence"
	ActionLearn    GapAction = "learn"
	ActionIgnore   GapAction = "ignore"
)

// Suggestion type markers attached to gap cards where applicable.
const (
	SuggestionSynonymMatch = "synonym_match"
	SuggestionPartialMatch = "partial_match"
)

// GapActionCard is one actionable remediation item derived from a non-met match.
type GapActionCard struct {
	Requirement       string      `json:"requirement"`
	Relevance         Relevance   `json:"relevance"`
	Status            MatchStatus `json:"status"`
	RecommendedAction GapAction   `json:"recommended_action"`
	SuggestionType    string      `json:"suggestion_type,omitempty"`
}

// MatchLabel is the coarse top-line verdict of an analysis.
type MatchLabel string

// Match labels.
const (
	LabelGoodFit     MatchLabel = "good fit"
	LabelPartialFit  MatchLabel = "partial fit"
	LabelStretchRole MatchLabel = "stretch role"
)

// ExecutiveSummary is the top-line verdict plus 2-3 explanatory bullets.
type ExecutiveSummary struct {
	MatchLabel MatchLabel `json:"match_label"`
	Bullets    []string   `json:"bullets"`
}

// SkillFit groups the per-tier requirement matches.
type SkillFit struct {
	MustHave   []RequirementMatch `json:"must_have"`
	NiceToHave []RequirementMatch `json:"nice_to_have"`
}

// AnalysisResult is the full output of one pipeline run.
type AnalysisResult struct {
	Summary   ExecutiveSummary `json:"summary"`
	SkillFit  SkillFit         `json:"skill_fit"`
	Gaps      []GapActionCard  `json:"gaps"`
	ATS       ATSAnalysis      `json:"ats"`
	RoleFocus RoleFocusRisk    `json:"role_focus"`
	NextSteps []string         `json:"next_steps"`
}
