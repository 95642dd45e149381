// Package engine orchestrates the full matching-and-scoring pipeline behind
// a content-hash result cache.
package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sebastian-gasior/jobfit/internal/ats"
	"github.com/sebastian-gasior/jobfit/internal/gaps"
	"github.com/sebastian-gasior/jobfit/internal/matching"
	"github.com/sebastian-gasior/jobfit/internal/parsing"
	"github.com/sebastian-gasior/jobfit/internal/rolefocus"
	"github.com/sebastian-gasior/jobfit/internal/signals"
	"github.com/sebastian-gasior/jobfit/internal/stats"
	"github.com/sebastian-gasior/jobfit/internal/summary"
	"github.com/sebastian-gasior/jobfit/internal/synonyms"
	"github.com/sebastian-gasior/jobfit/internal/textnorm"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// Engine runs analyses. It owns the one synonym index and the one result
// cache of the process; construct it once with New and pass it by reference.
type Engine struct {
	syn   *synonyms.Index
	cache *resultCache
	log   *zap.Logger
	stats stats.Recorder
	group singleflight.Group
}

// Options configures an Engine. Zero values select sane defaults: a cache of
// DefaultCacheSize entries, a no-op logger and a no-op statistics recorder.
type Options struct {
	CacheSize int
	Logger    *zap.Logger
	Stats     stats.Recorder
}

// New constructs an Engine with its immutable synonym index and bounded
// result cache.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	recorder := opts.Stats
	if recorder == nil {
		recorder = stats.Nop{}
	}
	return &Engine{
		syn:   synonyms.New(),
		cache: newResultCache(opts.CacheSize),
		log:   log,
		stats: recorder,
	}
}

// RunAnalysis matches a candidate profile against a job posting and returns
// the structured fit assessment. Identical inputs hit the cache; concurrent
// identical misses compute once. The only failure mode is invalid input —
// every other degenerate case resolves to an empty or zero-valued result.
func (e *Engine) RunAnalysis(ctx context.Context, profile *types.CandidateProfile, jobText string) (*types.AnalysisResult, error) {
	if profile == nil || profile.IsEmpty() {
		return nil, &InvalidInputError{Field: "profile", Message: "profile data is missing"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InvalidInputError{Field: "job_text", Message: "job posting text is empty"}
	}

	key := contentHash(profile, jobText)
	if cached, ok := e.cache.get(key); ok {
		return cached, nil
	}

	result, err, _ := e.group.Do(key, func() (any, error) {
		if cached, ok := e.cache.get(key); ok {
			return cached, nil
		}
		computed := e.analyze(profile, jobText)
		e.cache.put(key, computed)
		e.recordUsage(computed, jobText)
		return computed, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.AnalysisResult), nil
}

// analyze runs the pipeline stages in dependency order: the two extractors,
// the matcher, then ATS / role focus / gaps, converging in the summary.
func (e *Engine) analyze(profile *types.CandidateProfile, jobText string) *types.AnalysisResult {
	capped, truncated := textnorm.Truncate(jobText, textnorm.MaxJobChars)
	if truncated {
		e.log.Warn("job text truncated",
			zap.Int("limit", textnorm.MaxJobChars),
			zap.Int("original_len", len(jobText)))
	}

	requirements := parsing.ParseJobRequirements(capped)

	candidateSignals, sigWarnings := signals.Extract(profile)
	e.logWarnings(sigWarnings)

	mustHaveMatches, warnings := matching.MatchRequirements(requirements.MustHave, candidateSignals, e.syn)
	e.logWarnings(warnings)
	niceToHaveMatches, warnings := matching.MatchRequirements(requirements.NiceToHave, candidateSignals, e.syn)
	e.logWarnings(warnings)

	atsAnalysis, atsWarnings := ats.Score(profile, requirements.MustHave)
	e.logWarnings(atsWarnings)

	risk := rolefocus.Assess(candidateSignals, requirements)

	allMatches := make([]types.RequirementMatch, 0, len(mustHaveMatches)+len(niceToHaveMatches))
	allMatches = append(allMatches, mustHaveMatches...)
	allMatches = append(allMatches, niceToHaveMatches...)
	gapCards := gaps.Identify(allMatches, candidateSignals, e.syn)

	execSummary := summary.Build(mustHaveMatches, atsAnalysis, risk, gapCards)
	nextSteps := summary.NextSteps(risk, atsAnalysis, gapCards)

	return &types.AnalysisResult{
		Summary: execSummary,
		SkillFit: types.SkillFit{
			MustHave:   mustHaveMatches,
			NiceToHave: niceToHaveMatches,
		},
		Gaps:      gapCards,
		ATS:       atsAnalysis,
		RoleFocus: risk,
		NextSteps: nextSteps,
	}
}

// recordUsage invokes the statistics recorder fire-and-forget. A failing or
// panicking recorder is logged and never surfaces to the analysis caller.
func (e *Engine) recordUsage(result *types.AnalysisResult, jobText string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.log.Warn("usage recorder panicked", zap.Any("panic", r))
			}
		}()
		if err := e.stats.Record(context.Background(), result, jobText); err != nil {
			e.log.Warn("usage recording failed", zap.Error(err))
		}
	}()
}

func (e *Engine) logWarnings(warnings []string) {
	for _, w := range warnings {
		e.log.Warn("performance warning", zap.String("detail", w))
	}
}

// CacheLen reports the number of cached results. Exposed for tests and
// operational introspection.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}
