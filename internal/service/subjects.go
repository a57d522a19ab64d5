// internal/service/subjects.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type SubjectService interface {
	List(ctx context.Context) (model.ListPage[model.Subject], error)
	Get(ctx context.Context, id int64) (*model.Subject, error)
	Create(ctx context.Context, req *model.CreateSubjectRequest) (*model.Subject, error)
	Update(ctx context.Context, id int64, req *model.UpdateSubjectRequest) (*model.Subject, error)
	Delete(ctx context.Context, id int64) error
	ListPrepareMajors(ctx context.Context) (model.ListPage[model.PrepareMajor], error)
}

type subjectService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewSubjectService(api *client.Client, logger *slog.Logger) SubjectService {
	return &subjectService{api: api, logger: logger}
}

func (s *subjectService) List(ctx context.Context) (model.ListPage[model.Subject], error) {
	return list[model.Subject](ctx, s.api, "/admin/subjects/", s.logger)
}

func (s *subjectService) Get(ctx context.Context, id int64) (*model.Subject, error) {
	var subject model.Subject
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/subjects/%d/", id), &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *subjectService) Create(ctx context.Context, req *model.CreateSubjectRequest) (*model.Subject, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.Subject
	if err := s.api.Post(ctx, "/admin/subjects/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *subjectService) Update(ctx context.Context, id int64, req *model.UpdateSubjectRequest) (*model.Subject, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.Subject
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/subjects/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *subjectService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/subjects/%d/", id))
}

func (s *subjectService) ListPrepareMajors(ctx context.Context) (model.ListPage[model.PrepareMajor], error) {
	return list[model.PrepareMajor](ctx, s.api, "/admin/prepare-majors/", s.logger)
}
