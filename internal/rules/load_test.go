package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleSetParses(t *testing.T) {
	rs := Default()

	assert.Len(t, rs.Levels, 5)
	assert.Len(t, rs.Branches, 5)
	assert.Len(t, rs.Components, 4)
	assert.Equal(t, 8.0, rs.Excellence.MinGrade)
	assert.Equal(t, 125.0, rs.Excellence.MaxAmount)
}

func TestParseRejectsEmptyLevels(t *testing.T) {
	_, err := Parse([]byte("branches:\n  ciencias: 65\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyBranches(t *testing.T) {
	_, err := Parse([]byte("levels:\n  universitario: {min_enrollment: 30, unit: creditos}\n"))
	assert.Error(t, err)
}

func TestParseRejectsPercentOutOfRange(t *testing.T) {
	data := []byte(`
levels:
  universitario: {min_enrollment: 30, unit: creditos}
branches:
  ciencias: 165
`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("{{not yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	rs, err := Load("defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, 90.0, rs.Branches["ciencias_sociales_juridicas"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("no_such_file.yaml")
	assert.Error(t, err)
}
