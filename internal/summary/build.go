// Package summary derives the executive summary and the prioritized
// next-steps checklist from the converged pipeline outputs.
package summary

import (
	"fmt"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Label thresholds. Product policy constants.
const (
	stretchMetRatio    = 0.3
	goodFitMetRatio    = 0.7
	stretchATSScore    = 40
	goodFitATSScore    = 60
	notableLowATS      = 60
	notableHighATS     = 80
	stretchMissingGaps = 3
	goodFitMaxMissing  = 2

	maxGapBulletNames = 3
	minBullets        = 2
	maxBullets        = 3
)

// genericBullet pads the summary when fewer than two specific bullets were
// generated.
const genericBullet = "Review the detailed skill fit and gap list below for specifics."

// Build assembles the executive summary from the must-have matches, ATS
// analysis, role-focus risk and gap cards.
func Build(mustHave []types.RequirementMatch, ats types.ATSAnalysis, risk types.RoleFocusRisk, gapCards []types.GapActionCard) types.ExecutiveSummary {
	metRatio := metRatio(mustHave)
	missingHigh := highRelevanceMissing(gapCards)

	label := matchLabel(metRatio, len(mustHave), ats.Score, risk.Risk, missingHigh, countMissing(gapCards))

	bullets := []string{ratioBullet(label, mustHave, metRatio)}

	if notable, ok := notableBullet(ats.Score, risk.Risk); ok {
		bullets = append(bullets, notable)
	}

	if third, ok := thirdBullet(gapCards, risk, ats); ok && len(bullets) < maxBullets {
		bullets = append(bullets, third)
	}

	for len(bullets) < minBullets {
		bullets = append(bullets, genericBullet)
	}

	return types.ExecutiveSummary{MatchLabel: label, Bullets: bullets}
}

// NextSteps merges role-focus recommendations, ATS todos and gap cards into a
// single checklist with fixed priority ordering: focus first, then formatting,
// then gaps from high to low relevance.
func NextSteps(risk types.RoleFocusRisk, ats types.ATSAnalysis, gapCards []types.GapActionCard) []string {
	steps := []string{}
	steps = append(steps, risk.Recommendations...)
	steps = append(steps, ats.Todos...)

	for _, relevance := range []types.Relevance{types.RelevanceHigh, types.RelevanceMedium, types.RelevanceLow} {
		for _, card := range gapCards {
			if card.Relevance == relevance {
				steps = append(steps, gapStep(card))
			}
		}
	}
	return steps
}

// matchLabel applies the fixed verdict thresholds.
func matchLabel(metRatio float64, mustHaveCount, atsScore int, risk types.RiskLevel, missingHigh, missing int) types.MatchLabel {
	if mustHaveCount > 0 && metRatio < stretchMetRatio ||
		atsScore < stretchATSScore ||
		risk == types.RiskHigh ||
		missingHigh >= stretchMissingGaps {
		return types.LabelStretchRole
	}
	if metRatio >= goodFitMetRatio &&
		atsScore >= goodFitATSScore &&
		risk != types.RiskHigh &&
		missing <= goodFitMaxMissing {
		return types.LabelGoodFit
	}
	return types.LabelPartialFit
}

// ratioBullet is always the first bullet, phrased per label.
func ratioBullet(label types.MatchLabel, mustHave []types.RequirementMatch, metRatio float64) string {
	met := 0
	for _, m := range mustHave {
		if m.Status == types.StatusMet {
			met++
		}
	}
	if len(mustHave) == 0 {
		return "No must-have requirements could be extracted from the posting."
	}
	switch label {
	case types.LabelGoodFit:
		return fmt.Sprintf("You meet %d of %d must-have requirements — a solid base for this application.", met, len(mustHave))
	case types.LabelStretchRole:
		return fmt.Sprintf("You currently meet %d of %d must-have requirements; expect to close several gaps first.", met, len(mustHave))
	default:
		return fmt.Sprintf("You meet %d of %d must-have requirements (%.0f%%).", met, len(mustHave), metRatio*100)
	}
}

// notableBullet reports the ATS score or risk when either is out of the
// ordinary: score <60 or >=80, or high risk.
func notableBullet(atsScore int, risk types.RiskLevel) (string, bool) {
	switch {
	case risk == types.RiskHigh:
		return "Your profile focus diverges strongly from this posting; see the focus recommendations.", true
	case atsScore < notableLowATS:
		return fmt.Sprintf("ATS readiness is low (%d/100); formatting fixes will raise visibility.", atsScore), true
	case atsScore >= notableHighATS:
		return fmt.Sprintf("ATS readiness is strong (%d/100).", atsScore), true
	default:
		return "", false
	}
}

// thirdBullet names the top missing high-relevance gaps, else the top focus
// recommendation, else the top ATS todo.
func thirdBullet(gapCards []types.GapActionCard, risk types.RoleFocusRisk, ats types.ATSAnalysis) (string, bool) {
	var names []string
	for _, c := range gapCards {
		if c.Status == types.StatusMissing && c.Relevance == types.RelevanceHigh {
			names = append(names, c.Requirement)
			if len(names) == maxGapBulletNames {
				break
			}
		}
	}
	if len(names) > 0 {
		return "Biggest gaps: " + strings.Join(names, ", ") + ".", true
	}
	if len(risk.Recommendations) > 0 {
		return risk.Recommendations[0], true
	}
	if len(ats.Todos) > 0 {
		return ats.Todos[0], true
	}
	return "", false
}

func gapStep(card types.GapActionCard) string {
	switch card.RecommendedAction {
	case types.ActionRephrase:
		return fmt.Sprintf("Rephrase your profile to surface \"%s\" explicitly.", card.Requirement)
	case types.ActionEvidence:
		return fmt.Sprintf("Add concrete evidence for \"%s\" — you appear to have it under another name.", card.Requirement)
	default:
		return fmt.Sprintf("Learn or build first experience with \"%s\".", card.Requirement)
	}
}

func metRatio(matches []types.RequirementMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	met := 0
	for _, m := range matches {
		if m.Status == types.StatusMet {
			met++
		}
	}
	return float64(met) / float64(len(matches))
}

func highRelevanceMissing(cards []types.GapActionCard) int {
	count := 0
	for _, c := range cards {
		if c.Status == types.StatusMissing && c.Relevance == types.RelevanceHigh {
			count++
		}
	}
	return count
}

func countMissing(cards []types.GapActionCard) int {
	count := 0
	for _, c := range cards {
		if c.Status == types.StatusMissing {
			count++
		}
	}
	return count
}
