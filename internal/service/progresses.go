// internal/service/progresses.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type ProgressService interface {
	List(ctx context.Context) (model.ListPage[model.ProblemProgress], error)
	Get(ctx context.Context, id int64) (*model.ProblemProgress, error)
	Create(ctx context.Context, req *model.CreateProgressRequest) (*model.ProblemProgress, error)
	Update(ctx context.Context, id int64, req *model.UpdateProgressRequest) (*model.ProblemProgress, error)
	Delete(ctx context.Context, id int64) error
}

type progressService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewProgressService(api *client.Client, logger *slog.Logger) ProgressService {
	return &progressService{api: api, logger: logger}
}

func (s *progressService) List(ctx context.Context) (model.ListPage[model.ProblemProgress], error) {
	return list[model.ProblemProgress](ctx, s.api, "/admin/progresses/", s.logger)
}

func (s *progressService) Get(ctx context.Context, id int64) (*model.ProblemProgress, error) {
	var progress model.ProblemProgress
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/progresses/%d/", id), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *progressService) Create(ctx context.Context, req *model.CreateProgressRequest) (*model.ProblemProgress, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.ProblemProgress
	if err := s.api.Post(ctx, "/admin/progresses/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *progressService) Update(ctx context.Context, id int64, req *model.UpdateProgressRequest) (*model.ProblemProgress, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.ProblemProgress
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/progresses/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *progressService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/progresses/%d/", id))
}
