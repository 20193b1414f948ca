package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToPad(t *testing.T) {
	o, err := Parse([]string{}, DefaultFile())
	require.NoError(t, err)
	assert.Equal(t, CommandPad, o.Command)
	assert.Equal(t, "text", o.Format)
	assert.Equal(t, "auto", o.Color)
}

func TestParseRating(t *testing.T) {
	o, err := Parse([]string{"--format", "json", "rating", "-l", "14+", "-H", "90", "-t", "5", "-f", "5", "-n"}, DefaultFile())
	require.NoError(t, err)
	assert.Equal(t, CommandRating, o.Command)
	assert.Equal(t, "json", o.Format)
	assert.Equal(t, "14+", o.Level)
	assert.Equal(t, 90, o.Harmony)
	assert.Equal(t, 5, o.Tune)
	assert.Equal(t, 5, o.Fail)
	assert.Equal(t, FullCombo, o.MaxCombo)
	assert.True(t, o.NewRecord)
}

func TestParseScoreCounts(t *testing.T) {
	o, err := Parse([]string{"score", "--level=13", "--counts=100/2/1", "--combo=80"}, DefaultFile())
	require.NoError(t, err)
	assert.Equal(t, CommandScore, o.Command)
	assert.Equal(t, "100/2/1", o.Counts)
	assert.Equal(t, 80, o.MaxCombo)
}

func TestParseTolerance(t *testing.T) {
	o, err := Parse([]string{"tolerance", "-l", "10", "-N", "1000", "-T", "990,000"}, DefaultFile())
	require.NoError(t, err)
	assert.Equal(t, CommandTolerance, o.Command)
	assert.Equal(t, 1000, o.Notes)
	assert.Equal(t, "990,000", o.Target)
}

func TestParseToleranceNeedsNotes(t *testing.T) {
	_, err := Parse([]string{"tolerance", "-l", "10"}, DefaultFile())
	assert.Error(t, err)
}

func TestParseNeedsLevel(t *testing.T) {
	_, err := Parse([]string{"rating", "-H", "10"}, DefaultFile())
	assert.Error(t, err)
}

func TestParseFileLevel(t *testing.T) {
	file := DefaultFile()
	file.Level = "15+"
	file.Format = "yaml"

	o, err := Parse([]string{"rating", "-H", "10"}, file)
	require.NoError(t, err)
	assert.Equal(t, "15+", o.Level)
	assert.Equal(t, "yaml", o.Format)

	o, err = Parse([]string{"--format", "text", "rating", "-l", "12", "-H", "10"}, file)
	require.NoError(t, err)
	assert.Equal(t, "12", o.Level)
	assert.Equal(t, "text", o.Format)
}

func TestParseRejectsBadFormat(t *testing.T) {
	_, err := Parse([]string{"--format", "xml", "rating", "-l", "12"}, DefaultFile())
	assert.Error(t, err)
}

func TestParseRejectsNegativeCounts(t *testing.T) {
	_, err := Parse([]string{"rating", "-l", "12", "--tune=-3"}, DefaultFile())
	assert.Error(t, err)
}
