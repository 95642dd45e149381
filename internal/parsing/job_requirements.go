// Package parsing extracts structured requirements from raw job posting text.
// Classification is regex-driven over bilingual (EN/DE) section headers with an
// n-gram fallback for postings that carry no recognizable sections.
package parsing

import (
	"regexp"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Fallback extraction limits.
const (
	// fallbackLineCount is how many leading lines the n-gram fallback scans.
	fallbackLineCount = 15
	// fallbackMaxPhrases caps the phrases the fallback may produce.
	fallbackMaxPhrases = 30
	// fallbackMinLineLen / fallbackMaxLineLen bound whole lines the fallback
	// takes over as requirements.
	fallbackMinLineLen = 20
	fallbackMaxLineLen = 200
	// maxHeaderLen guards against prose lines that merely contain a header word.
	maxHeaderLen = 100
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionMustHave
	sectionNiceToHave
	sectionResponsibilities
)

// Section header patterns. All stateless, precompiled, evaluated fresh per line.
var (
	mustHavePattern = regexp.MustCompile(`(?i)^\s*(requirements?|qualifications?|must[- ]haves?|what (?:you|we).{0,20}(?:bring|need|require)|anforderungen|voraussetzungen|qualifikationen|(?:ihr|dein) profil|was (?:sie|du) mitbring(?:en|st))\b`)

	niceToHavePattern = regexp.MustCompile(`(?i)^\s*(nice[- ]to[- ]haves?|preferred|bonus|pluspunkte|wünschenswert|von vorteil|optional|idealerweise|außerdem von vorteil)\b`)

	responsibilitiesPattern = regexp.MustCompile(`(?i)^\s*(responsibilit|duties|tasks|your role|what you.{0,10}(?:do|own)|aufgaben|(?:ihre|deine) aufgaben|tätigkeiten|was (?:sie|dich) erwartet)`)

	bulletPattern = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
	indentPattern = regexp.MustCompile(`^\s{2,}\S`)
)

// ParseJobRequirements splits a job posting into must-have, nice-to-have and
// responsibility requirement lists. Malformed input never fails; the worst
// case is empty or near-empty lists.
func ParseJobRequirements(jobText string) *types.JobRequirements {
	reqs := &types.JobRequirements{
		MustHave:         []string{},
		NiceToHave:       []string{},
		Responsibilities: []string{},
	}

	lines := strings.Split(jobText, "\n")

	current := sectionNone
	sawSection := false
	var pending []string

	flush := func(kind sectionKind) {
		cleaned := parseBulletLines(pending)
		pending = nil
		switch kind {
		case sectionMustHave:
			reqs.MustHave = append(reqs.MustHave, cleaned...)
		case sectionNiceToHave:
			reqs.NiceToHave = append(reqs.NiceToHave, cleaned...)
		case sectionResponsibilities:
			reqs.Responsibilities = append(reqs.Responsibilities, cleaned...)
		}
	}

	for _, line := range lines {
		kind := classifyHeader(line)
		if kind != sectionNone {
			flush(current)
			current = kind
			sawSection = true
			continue
		}
		if current != sectionNone {
			pending = append(pending, line)
		}
	}
	flush(current)

	if !sawSection {
		reqs.MustHave = fallbackExtract(lines)
	}

	return reqs
}

// classifyHeader decides whether a line opens a new section.
func classifyHeader(line string) sectionKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen || bulletPattern.MatchString(line) {
		return sectionNone
	}
	switch {
	case niceToHavePattern.MatchString(trimmed):
		return sectionNiceToHave
	case mustHavePattern.MatchString(trimmed):
		return sectionMustHave
	case responsibilitiesPattern.MatchString(trimmed):
		return sectionResponsibilities
	default:
		return sectionNone
	}
}

// parseBulletLines keeps the bullet-like lines of a section range and strips
// their markers.
func parseBulletLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if !isBulletLine(line) {
			continue
		}
		cleaned := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func isBulletLine(line string) bool {
	return bulletPattern.MatchString(line) || indentPattern.MatchString(line)
}

// fallbackExtract builds requirement candidates from the first lines of a
// posting that has no recognizable sections: stopword-filtered 2- and 3-grams
// plus whole qualifying lines, deduplicated and capped.
func fallbackExtract(lines []string) []string {
	limit := min(len(lines), fallbackLineCount)

	seen := make(map[string]bool)
	var out []string
	add := func(phrase string) {
		if len(out) >= fallbackMaxPhrases {
			return
		}
		key := strings.ToLower(phrase)
		if !seen[key] {
			seen[key] = true
			out = append(out, phrase)
		}
	}

	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		words := contentWords(trimmed)
		for i := 0; i+1 < len(words); i++ {
			add(words[i] + " " + words[i+1])
			if i+2 < len(words) {
				add(words[i] + " " + words[i+1] + " " + words[i+2])
			}
		}

		if len(trimmed) >= fallbackMinLineLen && len(trimmed) <= fallbackMaxLineLen && !isBulletLine(line) {
			add(trimmed)
		}
	}

	if out == nil {
		return []string{}
	}
	return out
}

// contentWords returns the lowercased, stopword-filtered words of a line
// without stemming, for phrase building.
func contentWords(line string) []string {
	var words []string
	for _, f := range strings.Fields(textnorm.NormalizePhrase(line)) {
		if len(f) < 3 || textnorm.IsStopword(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}
