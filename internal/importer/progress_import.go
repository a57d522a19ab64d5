// internal/importer/progress_import.go
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/model"
	"medadmin/internal/service"
)

// ProgressImporter loads problem progresses ("진도") from a spreadsheet.
// Valid rows are POSTed one by one in file order; invalid rows are skipped
// without aborting the run.
type ProgressImporter struct {
	subjects   service.SubjectService
	progresses service.ProgressService
	logger     *slog.Logger
}

func NewProgressImporter(subjects service.SubjectService, progresses service.ProgressService, logger *slog.Logger) *ProgressImporter {
	return &ProgressImporter{subjects: subjects, progresses: progresses, logger: logger}
}

func (im *ProgressImporter) Run(ctx context.Context, filePath string) (*Result, error) {
	rows, err := ReadSheet(filePath)
	if err != nil {
		return nil, err
	}

	subjectPage, err := im.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	subjectIdx := subjectIndex(subjectPage)

	result := &Result{Total: len(rows)}
	for _, row := range rows {
		req, ok := im.mapRow(row, subjectIdx, result)
		if !ok {
			continue
		}
		if _, err := im.progresses.Create(ctx, req); err != nil {
			// A submission failure aborts the remainder of the run; rows
			// already created stay created (no rollback endpoint exists).
			return result, fmt.Errorf("row %d: %w", row.Line, err)
		}
		result.Created++
	}

	im.logger.Info("progress import finished",
		slog.Int("total", result.Total),
		slog.Int("created", result.Created),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (im *ProgressImporter) mapRow(row Row, subjects refIndex, result *Result) (*model.CreateProgressRequest, bool) {
	name, ok := progressNameAliases.get(row)
	if !ok {
		result.skip(row.Line, "missing progress name")
		return nil, false
	}
	day, ok := progressDayAliases.intOf(row)
	if !ok {
		result.skip(row.Line, "missing or non-numeric day")
		return nil, false
	}

	req := &model.CreateProgressRequest{Name: name, Day: day}

	if label, ok := progressDifficultyAliases.get(row); ok {
		if mapped, known := mapDifficulty(label); known {
			req.Difficulty = mapped
		}
		// unrecognized difficulty labels are dropped, the field stays unset
	}

	if subjectName, ok := progressSubjectAliases.get(row); ok {
		id, found := subjects.resolve(subjectName)
		if !found {
			result.skip(row.Line, fmt.Sprintf("unknown subject %q", subjectName))
			return nil, false
		}
		req.SubjectID = &id
	}

	if seq, ok := progressSequenceAliases.intOf(row); ok {
		req.Sequence = &seq
	}
	return req, true
}
