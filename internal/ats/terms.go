package ats

import "regexp"

// commonTechTerms is the heuristic vocabulary used for coverage and placement
// when no must-have list is available. Roughly twenty widespread terms; five
// hits scale to a full score.
var commonTechTerms = []string{
	"python", "java", "javascript", "typescript", "react", "angular",
	"vue", "node", "sql", "aws", "azure", "docker", "kubernetes",
	"git", "linux", "agile", "scrum", "api", "cloud", "devops",
}

// actionVerbs is the bilingual vocabulary of recognized action verbs for the
// context sub-score. Stored in stemmed-neutral form and matched with word
// prefixes so tense variants count.
var actionVerbs = []string{
	"developed", "develop", "led", "lead", "built", "build",
	"implemented", "implement", "designed", "design", "managed",
	"created", "create", "launched", "launch", "optimized", "optimize",
	"improved", "improve", "delivered", "deliver", "automated", "automate",
	"migrated", "migrate", "reduced", "increased", "architected",
	"entwickelte", "entwickelt", "leitete", "verantwortete", "konzipierte",
	"implementierte", "optimierte", "automatisierte", "migrierte",
	"verbesserte", "reduzierte", "steigerte", "baute",
}

// Quantifiable-outcome detection: a number, a percentage, or an
// improvement-indicator word.
var (
	numberPattern      = regexp.MustCompile(`\d`)
	percentPattern     = regexp.MustCompile(`\d+\s*%|percent|prozent`)
	improvementPattern = regexp.MustCompile(`(?i)\b(increased?|reduced?|improved?|saved?|grew|doubled|halved|gesteigert|reduziert|verbessert|gesenkt|verdoppelt|halbiert)\b`)
)

// bulletFormatPattern recognizes bullet-formatted experience descriptions.
var bulletFormatPattern = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])\s+`)
