// internal/service/memos.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type MemoService interface {
	ListProgresses(ctx context.Context) (model.ListPage[model.MemoProgress], error)
	GetProgress(ctx context.Context, id int64) (*model.MemoProgress, error)
	CreateProgress(ctx context.Context, req *model.CreateMemoProgressRequest) (*model.MemoProgress, error)
	DeleteProgress(ctx context.Context, id int64) error
	ListCards(ctx context.Context, memoProgressID int64) (model.ListPage[model.MemoProblemData], error)
	BulkCreateCards(ctx context.Context, reqs []model.CreateMemoProblemRequest) ([]model.MemoProblemData, error)
	DeleteCard(ctx context.Context, id int64) error
}

type memoService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewMemoService(api *client.Client, logger *slog.Logger) MemoService {
	return &memoService{api: api, logger: logger}
}

func (s *memoService) ListProgresses(ctx context.Context) (model.ListPage[model.MemoProgress], error) {
	return list[model.MemoProgress](ctx, s.api, "/admin/memo-progresses/", s.logger)
}

func (s *memoService) GetProgress(ctx context.Context, id int64) (*model.MemoProgress, error) {
	var progress model.MemoProgress
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/memo-progresses/%d/", id), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *memoService) CreateProgress(ctx context.Context, req *model.CreateMemoProgressRequest) (*model.MemoProgress, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.MemoProgress
	if err := s.api.Post(ctx, "/admin/memo-progresses/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *memoService) DeleteProgress(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/memo-progresses/%d/", id))
}

func (s *memoService) ListCards(ctx context.Context, memoProgressID int64) (model.ListPage[model.MemoProblemData], error) {
	path := fmt.Sprintf("/admin/memo-problems/?memo_progress=%d", memoProgressID)
	return list[model.MemoProblemData](ctx, s.api, path, s.logger)
}

func (s *memoService) BulkCreateCards(ctx context.Context, reqs []model.CreateMemoProblemRequest) ([]model.MemoProblemData, error) {
	var created []model.MemoProblemData
	if err := s.api.Post(ctx, "/admin/memo-problems/bulk_create/", reqs, &created); err != nil {
		return nil, err
	}
	if len(created) != len(reqs) {
		return nil, fmt.Errorf("%w: sent %d cards, got %d back", ErrBulkMismatch, len(reqs), len(created))
	}
	return created, nil
}

func (s *memoService) DeleteCard(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/memo-problems/%d/", id))
}
