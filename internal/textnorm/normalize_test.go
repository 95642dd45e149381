package textnorm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Senior Go-Developer (m/w/d) mit Kubernetes!")

	assert.True(t, tokens["senior"])
	assert.True(t, tokens["developer"])
	assert.True(t, tokens["kubernetes"])
	for tok := range tokens {
		assert.Equal(t, strings.ToLower(tok), tok)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	text := "Built ETL pipelines with Python and Apache Airflow, improving throughput"

	first := Tokenize(text)
	second := Tokenize(text)

	assert.Equal(t, first, second)
}

func TestTokenize_DropsStopwordsAndShortTokens(t *testing.T) {
	tokens := Tokenize("we are looking for a developer und wir suchen die besten")

	assert.False(t, tokens["are"])
	assert.False(t, tokens["for"])
	assert.False(t, tokens["und"])
	assert.False(t, tokens["die"])
	assert.False(t, tokens["we"], "two-letter tokens must be dropped")
	assert.True(t, tokens["developer"])
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
	assert.Empty(t, Tokenize("!!! ... ???"))
}

func TestStem_StripsRecognizedSuffixes(t *testing.T) {
	assert.Equal(t, "test", Stem("testing"))
	assert.Equal(t, "automa", Stem("automation"))
	assert.Equal(t, "führ", Stem("führung"))
	assert.Equal(t, "entwickl", Stem("entwicklen"))
}

func TestStem_NeverStripsEr(t *testing.T) {
	// "developer" must not collapse into "develop".
	assert.Equal(t, "developer", Stem("developer"))
}

func TestStem_LeavesShortTokensAlone(t *testing.T) {
	assert.Equal(t, "ring", Stem("ring"))
	assert.Equal(t, "ung", Stem("ung"))
}

func TestTokenizeOrdered_PreservesFirstOccurrenceOrder(t *testing.T) {
	ordered := TokenizeOrdered("Kubernetes Docker Kubernetes Terraform")

	assert.Equal(t, []string{"kubernetes", "docker", "terraform"}, ordered)
}

func TestNormalizePhrase(t *testing.T) {
	assert.Equal(t, "data pipeline", NormalizePhrase("  Data   Pipeline "))
	assert.Equal(t, "node js", NormalizePhrase("Node.js"))
	assert.Equal(t, "", NormalizePhrase("***"))
}

func TestTruncate(t *testing.T) {
	text, truncated := Truncate("abcdef", 4)
	assert.Equal(t, "abcd", text)
	assert.True(t, truncated)

	text, truncated = Truncate("abc", 4)
	assert.Equal(t, "abc", text)
	assert.False(t, truncated)
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	// "ä" is two bytes; a cap landing inside it must back up.
	text, truncated := Truncate("zäune", 2)
	assert.Equal(t, "z", text)
	assert.True(t, truncated)

	text, truncated = Truncate("ääää", 5)
	assert.Equal(t, "ää", text)
	assert.True(t, truncated)
	assert.True(t, utf8.ValidString(text))
}
