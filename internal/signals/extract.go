// Package signals derives normalized candidate evidence (skill tokens,
// experience tokens, seniority signals) from a profile.
package signals

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// WarnCandidateTruncated is the warning emitted when profile text exceeds the cap.
const WarnCandidateTruncated = "candidate text exceeds %d characters; truncated"

// seniorityKeywords is the fixed bilingual leadership/seniority vocabulary.
var seniorityKeywords = []string{
	"lead", "leader", "leadership", "head", "principal", "staff",
	"senior", "architect", "director", "chief", "cto", "ceo", "cio",
	"manager", "management", "mentoring", "coaching", "strategy",
	"führung", "führungskraft", "leitung", "teamleitung", "teamleiter",
	"strategie", "budgetverantwortung", "personalverantwortung",
}

// seniorityPatterns holds one precompiled word-boundary regex per keyword so
// the scan over the full profile text stays a single pass per keyword.
var seniorityPatterns = buildSeniorityPatterns()

func buildSeniorityPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(seniorityKeywords))
	for _, kw := range seniorityKeywords {
		patterns[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}

// yearsPattern detects "N years [of] experience" and the German equivalents.
// The experience suffix is mandatory; a bare year count ("3 years ago") is not
// a seniority signal.
var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|jahren?|jahre)\s+(?:of\s+)?(?:experience|erfahrung|berufserfahrung)\b`)

// leadRolePatterns detect short leadership role phrases.
var leadRolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\blead\s+[a-zäöüß]+`),
	regexp.MustCompile(`(?i)\b[a-zäöüß]+\s+manager\b`),
	regexp.MustCompile(`(?i)\bhead\s+of\s+[a-zäöüß]+`),
	regexp.MustCompile(`(?i)\bleiter(?:in)?\s+[a-zäöüß]+`),
}

// Extract builds CandidateSignals from a profile. Missing or empty profile
// fields are not an error; the result degrades to empty sets. The returned
// warnings describe any truncation that occurred.
func Extract(profile *types.CandidateProfile) (*types.CandidateSignals, []string) {
	sig := &types.CandidateSignals{
		SkillsTokens:     make(map[string]bool),
		ExperienceTokens: make(map[string]bool),
		SenioritySignals: make(map[string]bool),
	}
	if profile == nil {
		return sig, nil
	}

	var warnings []string
	fullText, truncated := textnorm.Truncate(profile.AllText(), textnorm.MaxCandidateChars)
	if truncated {
		warnings = append(warnings, fmt.Sprintf(WarnCandidateTruncated, textnorm.MaxCandidateChars))
	}

	// Skills stay separate from everything else. Comma-separated entries are
	// kept whole as normalized phrases so multi-word skills survive, and are
	// additionally word-tokenized. Skills consume the candidate-text budget
	// first; the remainder caps the experience text below.
	skillsText, _ := textnorm.Truncate(profile.Skills, textnorm.MaxCandidateChars)
	for _, entry := range splitSkillEntries(skillsText) {
		phrase := textnorm.NormalizePhrase(entry)
		if phrase != "" {
			sig.SkillsTokens[phrase] = true
		}
		for tok := range textnorm.Tokenize(entry) {
			sig.SkillsTokens[tok] = true
		}
	}

	// Experience tokens: roles + descriptions + summary + projects.
	var expText strings.Builder
	expText.WriteString(profile.Summary)
	for _, exp := range profile.Experience {
		expText.WriteString("\n")
		expText.WriteString(exp.Role)
		expText.WriteString("\n")
		expText.WriteString(exp.Description)
	}
	expText.WriteString("\n")
	expText.WriteString(profile.Projects)
	capped, _ := textnorm.Truncate(expText.String(), textnorm.MaxCandidateChars-len(skillsText))
	for tok := range textnorm.Tokenize(capped) {
		sig.ExperienceTokens[tok] = true
	}

	extractSeniority(fullText, sig.SenioritySignals)

	return sig, warnings
}

// extractSeniority scans text for seniority keywords, the years-of-experience
// pattern and leadership role phrases, adding normalized signals to the set.
func extractSeniority(text string, out map[string]bool) {
	for _, kw := range seniorityKeywords {
		if seniorityPatterns[kw].MatchString(text) {
			out[kw] = true
		}
	}

	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		out[m[1]+" years experience"] = true
	}

	for _, p := range leadRolePatterns {
		for _, m := range p.FindAllString(text, -1) {
			phrase := textnorm.NormalizePhrase(m)
			if phrase != "" {
				out[phrase] = true
			}
		}
	}
}

// splitSkillEntries splits a skills text block on the separators people
// actually use in CVs.
func splitSkillEntries(skills string) []string {
	if strings.TrimSpace(skills) == "" {
		return nil
	}
	return strings.FieldsFunc(skills, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '|' || r == '•'
	})
}
