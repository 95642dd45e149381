package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

func TestResultCache_FIFOEviction(t *testing.T) {
	c := newResultCache(2)
	a := &types.AnalysisResult{}
	b := &types.AnalysisResult{}
	d := &types.AnalysisResult{}

	c.put("a", a)
	c.put("b", b)
	c.put("c", d)

	_, ok := c.get("a")
	assert.False(t, ok, "oldest entry must be evicted first")
	_, ok = c.get("b")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestResultCache_OverwriteDoesNotGrow(t *testing.T) {
	c := newResultCache(2)

	c.put("a", &types.AnalysisResult{})
	updated := &types.AnalysisResult{NextSteps: []string{"step"}}
	c.put("a", updated)

	assert.Equal(t, 1, c.len())
	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Same(t, updated, got)
}

func TestNewResultCache_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultCacheSize, newResultCache(0).max)
	assert.Equal(t, DefaultCacheSize, newResultCache(-5).max)
	assert.Equal(t, 7, newResultCache(7).max)
}

func TestResultCache_GetMissing(t *testing.T) {
	c := newResultCache(2)

	result, ok := c.get("missing")
	assert.False(t, ok)
	assert.Nil(t, result)
}
