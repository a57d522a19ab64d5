// internal/importer/memo_import.go
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/model"
	"medadmin/internal/service"
)

// MemoImporter loads memorization cards from a spreadsheet into existing
// decks. All valid cards go up in one bulk call.
type MemoImporter struct {
	memos  service.MemoService
	logger *slog.Logger
}

func NewMemoImporter(memos service.MemoService, logger *slog.Logger) *MemoImporter {
	return &MemoImporter{memos: memos, logger: logger}
}

func (im *MemoImporter) Run(ctx context.Context, filePath string) (*Result, error) {
	rows, err := ReadSheet(filePath)
	if err != nil {
		return nil, err
	}

	deckPage, err := im.memos.ListProgresses(ctx)
	if err != nil {
		return nil, err
	}
	decks := memoProgressIndex(deckPage)

	result := &Result{Total: len(rows)}
	reqs := make([]model.CreateMemoProblemRequest, 0, len(rows))
	for _, row := range rows {
		deckName, ok := memoDeckAliases.get(row)
		if !ok {
			result.skip(row.Line, "missing deck name")
			continue
		}
		deckID, found := decks.resolve(deckName)
		if !found {
			result.skip(row.Line, fmt.Sprintf("unknown deck %q", deckName))
			continue
		}
		front, ok := memoFrontAliases.get(row)
		if !ok {
			result.skip(row.Line, "missing front side")
			continue
		}
		back, ok := memoBackAliases.get(row)
		if !ok {
			result.skip(row.Line, "missing back side")
			continue
		}

		req := model.CreateMemoProblemRequest{MemoProgressID: deckID, Front: front, Back: back}
		if seq, ok := memoSeqAliases.intOf(row); ok {
			req.Sequence = &seq
		}
		reqs = append(reqs, req)
	}

	if len(reqs) > 0 {
		created, err := im.memos.BulkCreateCards(ctx, reqs)
		if err != nil {
			return result, err
		}
		result.Created = len(created)
	}

	im.logger.Info("memo import finished",
		slog.Int("total", result.Total),
		slog.Int("created", result.Created),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}
