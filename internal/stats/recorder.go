// Package stats records anonymous usage counters for finished analyses.
// Events carry only coarse, non-identifying buckets: a role cluster, an
// industry cluster and an ATS score bucket. Recording is always
// fire-and-forget; failures must never reach the analysis caller.
package stats

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Recorder receives one event per finished (uncached) analysis run.
type Recorder interface {
	Record(ctx context.Context, result *types.AnalysisResult, jobText string) error
}

// Event is the coarse, non-identifying record of one analysis.
type Event struct {
	RoleCluster     string `json:"role_cluster"`
	IndustryCluster string `json:"industry_cluster"`
	ATSBucket       string `json:"ats_bucket"`
	MatchLabel      string `json:"match_label"`
}

// BuildEvent derives the bucketed event from a result and the raw job text.
func BuildEvent(result *types.AnalysisResult, jobText string) Event {
	return Event{
		RoleCluster:     roleCluster(jobText),
		IndustryCluster: industryCluster(jobText),
		ATSBucket:       atsBucket(result.ATS.Score),
		MatchLabel:      string(result.Summary.MatchLabel),
	}
}

// roleClusters maps a cluster name to the posting vocabulary that selects it.
// Evaluated in fixed order; first hit wins.
var roleClusters = []struct {
	name  string
	terms []string
}{
	{"engineering", []string{"developer", "engineer", "entwickler", "programmier", "software", "devops"}},
	{"data", []string{"data", "analyst", "analytics", "scientist", "daten"}},
	{"product", []string{"product manager", "product owner", "produktmanager"}},
	{"design", []string{"designer", "ux", "ui design"}},
	{"management", []string{"teamlead", "team lead", "leitung", "führungskraft", "head of"}},
}

var industryClusters = []struct {
	name  string
	terms []string
}{
	{"finance", []string{"bank", "fintech", "insurance", "versicherung", "finanz"}},
	{"health", []string{"health", "medical", "pharma", "klinik", "gesundheit"}},
	{"commerce", []string{"e-commerce", "ecommerce", "retail", "handel", "shop"}},
	{"public", []string{"government", "behörde", "öffentlich", "verwaltung"}},
	{"industry", []string{"automotive", "manufacturing", "logistik", "logistics", "produktion"}},
}

func roleCluster(jobText string) string {
	return firstCluster(jobText, roleClusters)
}

func industryCluster(jobText string) string {
	return firstCluster(jobText, industryClusters)
}

func firstCluster(jobText string, clusters []struct {
	name  string
	terms []string
}) string {
	lower := strings.ToLower(jobText)
	for _, c := range clusters {
		for _, term := range c.terms {
			if strings.Contains(lower, term) {
				return c.name
			}
		}
	}
	return "other"
}

// atsBucket coarsens the exact score into four ranges.
func atsBucket(score int) string {
	switch {
	case score >= 80:
		return "80-100"
	case score >= 60:
		return "60-79"
	case score >= 40:
		return "40-59"
	default:
		return "0-39"
	}
}

// Nop is a Recorder that discards every event.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, *types.AnalysisResult, string) error { return nil }

// LogRecorder writes events to the structured log. Useful in local and
// single-process deployments where no statistics store is configured.
type LogRecorder struct {
	Log *zap.Logger
}

// Record implements Recorder.
func (r *LogRecorder) Record(_ context.Context, result *types.AnalysisResult, jobText string) error {
	event := BuildEvent(result, jobText)
	r.Log.Info("usage event",
		zap.String("role_cluster", event.RoleCluster),
		zap.String("industry_cluster", event.IndustryCluster),
		zap.String("ats_bucket", event.ATSBucket),
		zap.String("match_label", event.MatchLabel),
	)
	return nil
}
