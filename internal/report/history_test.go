// internal/report/history_test.go
package report

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/importer"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistory(filepath.Join(t.TempDir(), "history", "imports.db"),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })
	return history
}

func TestHistory_RecordAndRecent(t *testing.T) {
	history := openTestHistory(t)

	result := &importer.Result{
		Total:     5,
		Created:   3,
		ChildRows: 7,
		Skipped: []importer.SkipReason{
			{Line: 3, Reason: "missing or non-numeric day"},
			{Line: 5, Reason: `unknown subject "약리학"`},
		},
	}
	run, err := history.Record("problems", "problems.xlsx", result)
	require.NoError(t, err)
	assert.NotZero(t, run.ID)

	_, err = history.Record("progresses", "progress.csv", &importer.Result{Total: 2, Created: 2})
	require.NoError(t, err)

	runs, err := history.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	var problems *ImportRun
	for i := range runs {
		if runs[i].Kind == "problems" {
			problems = &runs[i]
		}
	}
	require.NotNil(t, problems)
	assert.Equal(t, "problems.xlsx", problems.FileName)
	assert.Equal(t, 3, problems.Created)
	assert.Equal(t, 7, problems.ChildRows)
	require.Len(t, problems.Skips, 2)
	assert.Equal(t, 3, problems.Skips[0].Line)
	assert.Contains(t, problems.Skips[1].Reason, "약리학")
}

func TestHistory_RecentDefaultLimit(t *testing.T) {
	history := openTestHistory(t)

	runs, err := history.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
