// Package synonyms provides a static bidirectional term-equivalence index.
// The index is built once, holds no mutable state afterwards, and answers
// Expand in O(1) amortized via a precompiled reverse map.
package synonyms

import (
	"sort"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/textnorm"
)

// Index is an immutable synonym lookup structure. Construct with New and
// inject wherever synonym expansion is needed; there is no package-level
// instance.
type Index struct {
	expansions map[string][]string
}

// New builds the index from the static table. Every key and value is
// canonicalized the same way matcher tokens are, then each member of an
// equivalence group is mapped to the full group so lookups work in both
// directions, including indirectly (value -> key -> other values).
func New() *Index {
	groups := make(map[string]map[string]bool)

	for key, values := range table {
		members := make([]string, 0, len(values)+1)
		members = append(members, canonical(key))
		for _, v := range values {
			members = append(members, canonical(v))
		}
		for _, m := range members {
			if groups[m] == nil {
				groups[m] = make(map[string]bool)
			}
			for _, other := range members {
				if other != m {
					groups[m][other] = true
				}
			}
		}
	}

	expansions := make(map[string][]string, len(groups))
	for term, set := range groups {
		list := make([]string, 0, len(set))
		for other := range set {
			list = append(list, other)
		}
		// Sorted so expansion order (and any evidence built from it) is
		// identical across runs.
		sort.Strings(list)
		expansions[term] = list
	}

	return &Index{expansions: expansions}
}

// Expand returns the term plus every direct and indirect equivalent.
// Unknown terms expand to just themselves.
func (idx *Index) Expand(term string) []string {
	c := canonical(term)
	equivalents := idx.expansions[c]
	out := make([]string, 0, len(equivalents)+1)
	out = append(out, c)
	out = append(out, equivalents...)
	return out
}

// Has reports whether the term participates in any equivalence group.
func (idx *Index) Has(term string) bool {
	_, ok := idx.expansions[canonical(term)]
	return ok
}

// canonical normalizes a term to the form tokens take after normalization:
// phrases keep single spaces, single words are stemmed.
func canonical(term string) string {
	phrase := textnorm.NormalizePhrase(term)
	if strings.Contains(phrase, " ") {
		return phrase
	}
	return textnorm.Stem(phrase)
}
