// Package textnorm provides text normalization and tokenization for all matching.
// Tokens are lowercased, punctuation-free, stopword-filtered and lightly stemmed.
package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input size caps. Oversized input is truncated, never rejected.
const (
	// MaxCandidateChars caps the total candidate text considered.
	MaxCandidateChars = 40000
	// MaxJobChars caps the job posting text considered.
	MaxJobChars = 100000

	// minTokenLen is the shortest token kept after splitting.
	minTokenLen = 3
	// minStemLen is the shortest token the stemmer will touch.
	minStemLen = 5
)

// nonWordPattern matches everything that is not a letter, digit or whitespace.
// German umlauts and eszett are kept so bilingual postings tokenize cleanly.
var nonWordPattern = regexp.MustCompile(`[^a-z0-9äöüß\s]+`)

// stemSuffixes are stripped from the end of tokens longer than minStemLen-1,
// longest first, at most once per token. "-er" is deliberately absent: stripping
// it would collapse "developer" into "develop".
var stemSuffixes = []string{"tion", "ung", "ing", "en"}

// Tokenize normalizes text into a deduplicated set of tokens.
// Empty or degenerate input yields an empty set, never an error.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range splitNormalized(text) {
		tokens[tok] = true
	}
	return tokens
}

// TokenizeOrdered normalizes text into a deduplicated token slice that
// preserves first-occurrence order. The matcher needs ordering to test a
// requirement's full token sequence verbatim.
func TokenizeOrdered(text string) []string {
	seen := make(map[string]bool)
	var ordered []string
	for _, tok := range splitNormalized(text) {
		if !seen[tok] {
			seen[tok] = true
			ordered = append(ordered, tok)
		}
	}
	return ordered
}

// NormalizePhrase lowercases and strips punctuation from a phrase while keeping
// its internal spacing as single spaces. Used for comma-separated skill entries
// so multi-word skills like "data pipeline" survive as one unit.
func NormalizePhrase(phrase string) string {
	lower := strings.ToLower(strings.TrimSpace(phrase))
	cleaned := nonWordPattern.ReplaceAllString(lower, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Truncate caps text at max bytes, backing up to the nearest rune boundary so
// multi-byte characters (umlauts) are never split. It reports whether
// truncation occurred so the caller can emit a performance warning.
func Truncate(text string, max int) (string, bool) {
	if len(text) <= max {
		return text, false
	}
	if max < 0 {
		max = 0
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut], true
}

// Stem strips one recognized suffix from a token. Tokens shorter than
// minStemLen are returned unchanged; so is any token whose stem would
// degenerate below minTokenLen.
func Stem(token string) string {
	if len(token) < minStemLen {
		return token
	}
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(token, suffix) {
			stem := token[:len(token)-len(suffix)]
			if len(stem) >= minTokenLen {
				return stem
			}
			return token
		}
	}
	return token
}

// splitNormalized does the shared lowercase/strip/split/filter/stem pass.
func splitNormalized(text string) []string {
	lower := strings.ToLower(text)
	cleaned := nonWordPattern.ReplaceAllString(lower, " ")

	var out []string
	for _, field := range strings.Fields(cleaned) {
		if len(field) < minTokenLen || IsStopword(field) {
			continue
		}
		out = append(out, Stem(field))
	}
	return out
}
