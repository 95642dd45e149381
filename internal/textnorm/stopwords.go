package textnorm

// stopwords is the bilingual (EN/DE) stopword set dropped during tokenization.
// Tokens of length <=2 are filtered before this lookup, so two-letter words
// are not listed.
var stopwords = map[string]bool{
	// English
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"your": true, "our": true, "are": true, "have": true, "has": true,
	"this": true, "that": true, "will": true, "from": true, "not": true,
	"all": true, "can": true, "been": true, "was": true, "were": true,
	"they": true, "their": true, "them": true, "its": true, "into": true,
	"also": true, "who": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "about": true, "after": true, "before": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"than": true, "then": true, "these": true, "those": true, "through": true,
	"over": true, "under": true, "between": true, "both": true, "each": true,
	"per": true, "etc": true, "very": true, "well": true, "able": true,
	"years": true, "year": true, "plus": true, "strong": true, "good": true,
	"work": true, "working": true, "experience": true, "knowledge": true,

	// German
	"und": true, "der": true, "die": true, "das": true, "den": true,
	"dem": true, "des": true, "ein": true, "eine": true, "einen": true,
	"einem": true, "einer": true, "eines": true, "mit": true, "von": true,
	"für": true, "auf": true, "aus": true, "bei": true, "nach": true,
	"über": true, "unter": true, "durch": true, "gegen": true, "ohne": true,
	"als": true, "auch": true, "oder": true, "aber": true, "wir": true,
	"sie": true, "ihr": true, "ihre": true, "dein": true, "deine": true,
	"unser": true, "unsere": true, "sind": true, "ist": true, "hat": true,
	"haben": true, "wird": true, "werden": true, "kann": true, "können": true,
	"sollte": true, "sowie": true, "bzw": true, "dass": true, "sich": true,
	"zum": true, "zur": true, "vom": true, "beim": true, "ins": true,
	"jahr": true, "jahre": true, "jahren": true, "kenntnisse": true,
	"erfahrung": true, "gute": true, "guten": true, "sehr": true,
}

// IsStopword reports whether a lowercased token is in the bilingual stopword set.
func IsStopword(token string) bool {
	return stopwords[token]
}
