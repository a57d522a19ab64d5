// internal/importer/mapper_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDifficulty(t *testing.T) {
	tests := []struct {
		label  string
		want   string
		wantOK bool
	}{
		{"기본", "basic", true},
		{"심화", "advanced", true},
		{" 기본 ", "basic", true},
		{"중급", "", false},
		{"basic", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := mapDifficulty(tc.label)
		assert.Equal(t, tc.wantOK, ok, "label %q", tc.label)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestAliasesGet(t *testing.T) {
	row := Row{Line: 2, Cells: map[string]string{
		"과목명": " 해부학 ",
		"Day": "3",
		"순서":  "",
	}}

	name, ok := progressSubjectAliases.get(row)
	assert.True(t, ok)
	assert.Equal(t, "해부학", name, "values are trimmed")

	// case-insensitive header match
	day, ok := progressDayAliases.get(row)
	assert.True(t, ok)
	assert.Equal(t, "3", day)

	// blank cell counts as absent
	_, ok = progressSequenceAliases.get(row)
	assert.False(t, ok)

	_, ok = progressDifficultyAliases.get(row)
	assert.False(t, ok)
}

func TestAliasesGet_EarliestAliasWins(t *testing.T) {
	// a sheet carrying several alias columns for one field must resolve the
	// same way every time, earliest alias first
	row := Row{Line: 2, Cells: map[string]string{
		"진도":       "from-jindo",
		"progress": "from-progress",
		"name":     "from-name",
	}}
	for i := 0; i < 200; i++ {
		got, ok := progressNameAliases.get(row)
		require.True(t, ok)
		require.Equal(t, "from-jindo", got)
	}

	// a blank cell under the preferred alias falls through to the next one
	row = Row{Line: 2, Cells: map[string]string{
		"진도":   " ",
		"name": "fallback",
	}}
	got, ok := progressNameAliases.get(row)
	require.True(t, ok)
	assert.Equal(t, "fallback", got)
}

func TestAliasesIntOf(t *testing.T) {
	tests := []struct {
		name   string
		cells  map[string]string
		want   int
		wantOK bool
	}{
		{"plain number", map[string]string{"day": "7"}, 7, true},
		{"trimmed number", map[string]string{"day": " 12 "}, 12, true},
		{"garbage reads as absent", map[string]string{"day": "3일차"}, 0, false},
		{"decimal reads as absent", map[string]string{"day": "3.5"}, 0, false},
		{"missing column", map[string]string{"name": "x"}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := progressDayAliases.intOf(Row{Line: 2, Cells: tc.cells})
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChoiceAliases(t *testing.T) {
	row := Row{Line: 4, Cells: map[string]string{
		"보기1":     "왼심방",
		"Choice2": "우심방",
	}}

	first, ok := choiceAliases(1).get(row)
	assert.True(t, ok)
	assert.Equal(t, "왼심방", first)

	second, ok := choiceAliases(2).get(row)
	assert.True(t, ok)
	assert.Equal(t, "우심방", second)

	_, ok = choiceAliases(3).get(row)
	assert.False(t, ok)
}
