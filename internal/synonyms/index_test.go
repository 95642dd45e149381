package synonyms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand_Symmetric(t *testing.T) {
	idx := New()

	assert.Contains(t, idx.Expand("etl"), "data pipeline")
	assert.Contains(t, idx.Expand("data pipeline"), "etl")
}

func TestExpand_IncludesTermItself(t *testing.T) {
	idx := New()

	expanded := idx.Expand("sql")
	assert.Equal(t, "sql", expanded[0])
	assert.Contains(t, expanded, "database")
	assert.Contains(t, expanded, "datenbank")
}

func TestExpand_IndirectEquivalents(t *testing.T) {
	idx := New()

	// "database" and "datenbank" are both values of "sql"; they must reach
	// each other through the shared group.
	assert.Contains(t, idx.Expand("database"), "datenbank")
}

func TestExpand_UnknownTerm(t *testing.T) {
	idx := New()

	assert.Equal(t, []string{"cobol"}, idx.Expand("cobol"))
	assert.False(t, idx.Has("cobol"))
}

func TestExpand_DeterministicOrder(t *testing.T) {
	first := New().Expand("cicd")
	second := New().Expand("cicd")

	assert.Equal(t, first, second)
}

func TestHas_CaseAndFormInsensitive(t *testing.T) {
	idx := New()

	assert.True(t, idx.Has("ETL"))
	assert.True(t, idx.Has("etl"))
}
