// internal/importer/problem_import.go
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/model"
	"medadmin/internal/service"
)

// maxChoices is the number of choice columns a problem sheet may carry.
const maxChoices = 5

// minChoices is the fewest choices a multiple-choice row needs. Rows with no
// choice columns at all are kept as essay-type problems.
const minChoices = 2

// ProblemImporter loads problems and their choice rows from a spreadsheet.
// Problems are bulk-created first, then the choices are bulk-created in a
// second call carrying the problem IDs the first call returned, correlated
// by array position.
type ProblemImporter struct {
	subjects   service.SubjectService
	progresses service.ProgressService
	problems   service.ProblemService
	logger     *slog.Logger
}

func NewProblemImporter(subjects service.SubjectService, progresses service.ProgressService, problems service.ProblemService, logger *slog.Logger) *ProblemImporter {
	return &ProblemImporter{subjects: subjects, progresses: progresses, problems: problems, logger: logger}
}

// problemEntry is one valid row waiting for submission, its choices kept
// alongside until the created problem ID is known.
type problemEntry struct {
	req     model.CreateProblemRequest
	choices []string
}

func (im *ProblemImporter) Run(ctx context.Context, filePath string) (*Result, error) {
	rows, err := ReadSheet(filePath)
	if err != nil {
		return nil, err
	}

	subjectIdx, progressIdx, err := fetchSubjectAndProgressRefs(ctx, im.subjects, im.progresses)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(rows)}
	entries := make([]problemEntry, 0, len(rows))
	for _, row := range rows {
		entry, ok := im.mapRow(row, subjectIdx, progressIdx, result)
		if ok {
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		im.logger.Info("problem import finished, nothing to submit",
			slog.Int("total", result.Total), slog.Int("skipped", len(result.Skipped)))
		return result, nil
	}

	reqs := make([]model.CreateProblemRequest, len(entries))
	for i, entry := range entries {
		reqs[i] = entry.req
	}
	created, err := im.problems.BulkCreate(ctx, reqs)
	if err != nil {
		return result, err
	}
	result.Created = len(created)

	choiceReqs := make([]model.CreateProblemSelectRequest, 0, len(entries)*maxChoices)
	for i, entry := range entries {
		for j, content := range entry.choices {
			choiceReqs = append(choiceReqs, model.CreateProblemSelectRequest{
				ProblemID: created[i].ID,
				Sequence:  j + 1,
				Content:   content,
			})
		}
	}
	if len(choiceReqs) > 0 {
		selects, err := im.problems.BulkCreateSelects(ctx, choiceReqs)
		if err != nil {
			return result, err
		}
		result.ChildRows = len(selects)
	}

	im.logger.Info("problem import finished",
		slog.Int("total", result.Total),
		slog.Int("created", result.Created),
		slog.Int("choices", result.ChildRows),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (im *ProblemImporter) mapRow(row Row, subjects, progresses refIndex, result *Result) (problemEntry, bool) {
	subjectName, ok := problemSubjectAliases.get(row)
	if !ok {
		result.skip(row.Line, "missing subject")
		return problemEntry{}, false
	}
	if _, found := subjects.resolve(subjectName); !found {
		result.skip(row.Line, fmt.Sprintf("unknown subject %q", subjectName))
		return problemEntry{}, false
	}

	progressName, ok := problemProgressAliases.get(row)
	if !ok {
		result.skip(row.Line, "missing progress")
		return problemEntry{}, false
	}
	progressID, found := progresses.resolve(progressName)
	if !found {
		result.skip(row.Line, fmt.Sprintf("unknown progress %q", progressName))
		return problemEntry{}, false
	}

	content, ok := problemContentAliases.get(row)
	if !ok {
		result.skip(row.Line, "missing problem content")
		return problemEntry{}, false
	}
	answer, ok := problemAnswerAliases.intOf(row)
	if !ok {
		result.skip(row.Line, "missing or non-numeric answer")
		return problemEntry{}, false
	}

	var choices []string
	for n := 1; n <= maxChoices; n++ {
		if choice, ok := choiceAliases(n).get(row); ok {
			choices = append(choices, choice)
		}
	}
	if len(choices) > 0 && len(choices) < minChoices {
		result.skip(row.Line, fmt.Sprintf("needs at least %d choices, found %d", minChoices, len(choices)))
		return problemEntry{}, false
	}

	entry := problemEntry{
		req: model.CreateProblemRequest{
			ProgressID: progressID,
			Content:    content,
			Answer:     answer,
		},
		choices: choices,
	}
	if year, ok := problemExamYearAliases.intOf(row); ok {
		entry.req.ExamYear = &year
	}
	if seq, ok := problemSequenceAliases.intOf(row); ok {
		entry.req.Sequence = &seq
	}
	return entry, true
}
