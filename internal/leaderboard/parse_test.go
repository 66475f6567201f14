package leaderboard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsOrderAndCount(t *testing.T) {
	rows, err := ParseString(sampleCSV)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"alice", "Bob", "carol", "alfred"}, handles(rows))
	assert.Equal(t, "1500", rows[0].Get(KeyCodeforcesRating))
	assert.Equal(t, "", rows[2].Get(KeyGFGContestScore))
	assert.Equal(t, "60.0", rows[2].Get(KeyPercentile))

	for _, key := range DefaultSchema().Keys() {
		_, ok := rows[0][key]
		assert.True(t, ok, "missing key %s", key)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	first, err := ParseString(sampleCSV)
	require.NoError(t, err)
	second, err := ParseString(sampleCSV)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-parse differs (-first +second):\n%s", diff)
	}
}

func TestParseQuotedFields(t *testing.T) {
	doc := "Rank,Handle,Percentile\n1,\"smith, j\",\"9\"\"1\"\n"
	rows, err := ParseString(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "smith, j", rows[0].Get(KeyHandle))
	assert.Equal(t, `9"1`, rows[0].Get(KeyPercentile))
}

func TestParseRaggedRecords(t *testing.T) {
	doc := "Rank,Handle,Percentile\n1,ann\n2,ben,50,extra\n\n3,cy,10\n"
	rows, err := ParseString(doc)
	require.NoError(t, err)

	want := []Row{
		{KeyRank: "1", KeyHandle: "ann", KeyPercentile: ""},
		{KeyRank: "2", KeyHandle: "ben", KeyPercentile: "50"},
		{KeyRank: "3", KeyHandle: "cy", KeyPercentile: "10"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStripsBOM(t *testing.T) {
	rows, err := ParseString("\ufeffRank,Handle\n1,ann\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Get(KeyRank))
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := ParseString(sampleHeader + "\n")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, errors.Is(err, ErrNoHeader))

	_, err = ParseString("Rank,Handle\n1,\"open\n")
	require.ErrorAs(t, err, &pe)
	assert.Positive(t, pe.Line)
	assert.Contains(t, err.Error(), "parse csv line")
}
